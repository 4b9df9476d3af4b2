package model

import "larkspur/shared/model"

const (
	TableName  = "media_assets"
	EntityName = "media"

	FieldID          = "id"
	FieldFileName    = "file_name"
	FieldURL         = "url"
	FieldContentType = "content_type"
	FieldSize        = "size"
)

type Media struct {
	ID          string `db:"id"`
	FileName    string `db:"file_name"`
	URL         string `db:"url"`
	ContentType string `db:"content_type"`
	Size        int64  `db:"size"`
	model.Metadata
}
