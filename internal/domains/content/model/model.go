package model

import (
	"larkspur/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "site_documents"
	EntityName = "site_document"

	FieldKey     = "key"
	FieldPayload = "payload"

	// Document keys. One row per key.
	KeyHero       = "hero"
	KeyHome       = "home"
	KeySiteConfig = "site-config"
)

// SiteDocument is a singleton JSON document addressed by key. The payload
// schema is owned by the matching dto type.
type SiteDocument struct {
	Key     string         `db:"key"`
	Payload types.JSONText `db:"payload"`
	model.Metadata
}
