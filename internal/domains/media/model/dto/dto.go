package dto

import (
	"mime/multipart"
	"larkspur/internal/domains/media/model"
	"larkspur/shared"
	gDto "larkspur/shared/dto"
	gModel "larkspur/shared/model"
	"larkspur/shared/timezone"

	"github.com/google/uuid"
)

type UploadMediaRequest struct {
	File       *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10485760"`
	FileReader multipart.File        `json:"-"`
}

func (u *UploadMediaRequest) ToModel(url, user string) model.Media {
	return model.Media{
		ID:          uuid.NewString(),
		FileName:    u.File.Filename,
		URL:         url,
		ContentType: u.File.Header.Get("Content-Type"),
		Size:        u.File.Size,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MediaResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	gDto.Metadata
}

func (r *MediaResponse) FromModel(model model.Media) {
	r.ID = model.ID
	r.FileName = model.FileName
	r.URL = model.URL
	r.ContentType = model.ContentType
	r.Size = model.Size
	r.Metadata.FromModel(model.Metadata)
}

type GetMediaResponse struct {
	Media     []MediaResponse `json:"media"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMediaResponse) FromModels(models []model.Media, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Media = make([]MediaResponse, len(models))
	for i, m := range models {
		r.Media[i].FromModel(m)
	}
}
