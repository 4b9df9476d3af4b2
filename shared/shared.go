package shared

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"larkspur/shared/cache"
	"larkspur/shared/constant"
	"larkspur/shared/dto"
	"larkspur/shared/timezone"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and key parts with the cache separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, constant.CacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a cache key from the query parameters and
// filter so distinct listings cache under distinct keys.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams
		Filter dto.FilterGroup
	}{params, filter})
	if err != nil {
		return prefix
	}

	return BuildCacheKey(prefix, strconv.FormatUint(uint64(fnv32(raw)), 16))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func fnv32(data []byte) uint32 {
	const (
		offset = 2166136261
		prime  = 16777619
	)

	hash := uint32(offset)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= prime
	}

	return hash
}
