package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"larkspur/config"
	"larkspur/infras/otel/mocks"
	s3Mocks "larkspur/infras/s3/mocks"
	mediaMocks "larkspur/internal/domains/media/mocks"
	"larkspur/internal/domains/media/model"
	"larkspur/internal/domains/media/model/dto"
	"larkspur/internal/domains/media/service"
	cacheMocks "larkspur/shared/cache/mocks"
	"larkspur/shared/constant"
	gDto "larkspur/shared/dto"
)

func newService(t *testing.T) (service.Media, *mediaMocks.MockMedia, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "larkspur-media"
	cfg.External.S3.MediaDirectory = "media"

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3), mockRepo, mockCache, mockS3
}

func uploadRequest() dto.UploadMediaRequest {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/png")

	return dto.UploadMediaRequest{
		File: &multipart.FileHeader{
			Filename: "pool.png",
			Header:   header,
			Size:     2048,
		},
	}
}

func TestMediaService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful upload",
			setupMock: func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "larkspur-media", "media", gomock.Any(), gomock.Any(), "pool.png").
					Return("https://cdn.example.com/media/pool.png", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "s3 failure",
			setupMock: func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket unavailable"))
			},
			wantErr: true,
		},
		{
			name: "metadata insert failure",
			setupMock: func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/media/pool.png", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Upload(ctx, uploadRequest())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "pool.png", res.FileName)
				assert.Equal(t, "https://cdn.example.com/media/pool.png", res.URL)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestMediaService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Media{{ID: "test-id", FileName: "pool.png"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Media, 1)
}

func TestMediaService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Media{ID: "test-id", URL: "https://cdn.example.com/media/pool.png"}, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

				s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("pool.png").
					AnyTimes()

				s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(repo *mediaMocks.MockMedia, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Media{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			err := svc.Delete(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
