package service

import (
	"context"
	"fmt"
	"larkspur/config"
	"larkspur/infras/otel"
	"larkspur/infras/s3"
	"larkspur/internal/domains/media/model"
	"larkspur/internal/domains/media/model/dto"
	"larkspur/internal/domains/media/repository"
	"larkspur/shared"
	"larkspur/shared/cache"
	"larkspur/shared/constant"
	gDto "larkspur/shared/dto"
	"larkspur/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetMedia    = "media:get"
	cacheGetAllMedia = "media:get_all"
	cacheCountMedia  = "media:count"
)

type Media interface {
	Upload(ctx context.Context, req dto.UploadMediaRequest) (dto.MediaResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMediaResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MediaResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Media
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Media, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Upload stores the file in S3 first and records the metadata row after; an
// insert failure leaves an orphaned object rather than a dangling row.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadMediaRequest) (res dto.MediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, s.cfg.External.S3.MediaDirectory, req.FileReader, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	media := req.ToModel(url, user)
	if err = s.repo.Insert(ctx, media); err != nil {
		log.Error().Err(err).Msg("failed to record media metadata")

		return res, fmt.Errorf("failed to record media metadata: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)
	}()

	res.FromModel(media)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media")

		return res, fmt.Errorf("failed to count media: %w", err)
	}

	assets, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return res, fmt.Errorf("failed to get media: %w", err)
	}

	res.FromModels(assets, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media")

		return total, fmt.Errorf("failed to count media: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMedia, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media")

		return res, nil
	}

	media, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return res, fmt.Errorf("failed to get media: %w", err)
	}

	if media.ID == constant.Empty {
		return res, failure.NotFound("media not found") // nolint:wrapcheck
	}

	res.FromModel(media)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media to cache")
		}
	}()

	return res, nil
}

// Delete removes the metadata row and best-effort deletes the backing S3
// object afterwards.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	media, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media for deletion")

		return fmt.Errorf("failed to get media: %w", err)
	}

	if media.ID == constant.Empty {
		return failure.NotFound("media not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete media")

		return fmt.Errorf("failed to delete media: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMedia, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete media cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, media.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", media.URL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, s.cfg.External.S3.MediaDirectory, objectName); err != nil {
			log.Error().Err(err).Msg("failed to delete media object from S3")
		}
	}()

	return nil
}
