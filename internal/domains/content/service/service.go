package service

import (
	"context"
	"encoding/json"
	"fmt"
	"larkspur/config"
	"larkspur/infras/otel"
	"larkspur/internal/domains/content/model"
	"larkspur/internal/domains/content/model/dto"
	"larkspur/internal/domains/content/repository"
	"larkspur/shared"
	"larkspur/shared/cache"
	"larkspur/shared/constant"
	"larkspur/shared/failure"
	gModel "larkspur/shared/model"
	"larkspur/shared/timezone"

	"github.com/jmoiron/sqlx/types"
	"github.com/rs/zerolog/log"
)

const cacheGetDocument = "content:get"

// Content serves the singleton site documents. Reads fall back to built-in
// defaults when a document has never been saved.
type Content interface {
	GetHero(ctx context.Context) (dto.HeroContent, error)
	SetHero(ctx context.Context, req dto.HeroContent) error
	GetHome(ctx context.Context) (dto.HomeContent, error)
	SetHome(ctx context.Context, req dto.HomeContent) error
	GetSiteConfig(ctx context.Context) (dto.SiteConfig, error)
	SetSiteConfig(ctx context.Context, req dto.SiteConfig) error
	DeleteSiteConfig(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.SiteDocument
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.SiteDocument, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetHero(ctx context.Context) (res dto.HeroContent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHero")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.DefaultHero()
	err = s.load(ctx, model.KeyHero, &res)

	return res, err
}

func (s *serviceImpl) SetHero(ctx context.Context, req dto.HeroContent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetHero")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.save(ctx, model.KeyHero, req)
}

func (s *serviceImpl) GetHome(ctx context.Context) (res dto.HomeContent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHome")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.DefaultHome()
	err = s.load(ctx, model.KeyHome, &res)

	return res, err
}

func (s *serviceImpl) SetHome(ctx context.Context, req dto.HomeContent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetHome")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.save(ctx, model.KeyHome, req)
}

func (s *serviceImpl) GetSiteConfig(ctx context.Context) (res dto.SiteConfig, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSiteConfig")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.DefaultSiteConfig()
	err = s.load(ctx, model.KeySiteConfig, &res)

	return res, err
}

func (s *serviceImpl) SetSiteConfig(ctx context.Context, req dto.SiteConfig) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetSiteConfig")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.HasActiveHome() {
		return failure.BadRequestFromString("navigation must retain an active home item") // nolint:wrapcheck
	}

	return s.save(ctx, model.KeySiteConfig, req)
}

// DeleteSiteConfig drops the stored document; reads fall back to defaults.
func (s *serviceImpl) DeleteSiteConfig(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSiteConfig")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(model.KeySiteConfig, model.FieldKey, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if site config exists")

		return fmt.Errorf("failed to check if site config exists: %w", err)
	}

	if !exist {
		return failure.NotFound("site config not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete site config")

		return fmt.Errorf("failed to delete site config: %w", err)
	}

	s.invalidate(ctx, model.KeySiteConfig)

	return nil
}

// load fills out from the stored document, leaving it untouched when the
// document does not exist.
func (s *serviceImpl) load(ctx context.Context, key string, out any) error {
	cacheKey := shared.BuildCacheKey(cacheGetDocument, key)

	if err := s.cache.Get(ctx, cacheKey, out); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for site document")

		return nil
	}

	doc, err := s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get site document")

		return fmt.Errorf("failed to get site document: %w", err)
	}

	if doc.Key == constant.Empty {
		return nil
	}

	if err = json.Unmarshal(doc.Payload, out); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode site document")

		return fmt.Errorf("failed to decode site document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, out, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site document to cache")
		}
	}()

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode site document")

		return fmt.Errorf("failed to encode site document: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(key, model.FieldKey, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to check if site document exists")

		return fmt.Errorf("failed to check if site document exists: %w", err)
	}

	if exist {
		err = s.repo.Update(ctx, map[string]any{
			model.FieldPayload:       types.JSONText(raw),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filter)
	} else {
		err = s.repo.Insert(ctx, model.SiteDocument{
			Key:     key,
			Payload: types.JSONText(raw),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save site document")

		return fmt.Errorf("failed to save site document: %w", err)
	}

	s.invalidate(ctx, key)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, key string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDocument, key)); err != nil {
			log.Error().Err(err).Msg("failed to delete site document from cache")
		}
	}()
}
