package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"larkspur/infras/otel"
	"larkspur/infras/postgres"
	"larkspur/internal/domains/content/model"
	gDto "larkspur/shared/dto"
	gRepo "larkspur/shared/repository"
)

type SiteDocument interface {
	Insert(ctx context.Context, model model.SiteDocument) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SiteDocument, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SiteDocument]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SiteDocument {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SiteDocument](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}
