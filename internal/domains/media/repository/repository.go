package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"larkspur/infras/otel"
	"larkspur/infras/postgres"
	"larkspur/internal/domains/media/model"
	gDto "larkspur/shared/dto"
	gRepo "larkspur/shared/repository"
)

type Media interface {
	Insert(ctx context.Context, model model.Media) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Media, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Media, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Media]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Media {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Media](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
