package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Listing=MockListingRepository

import (
	"context"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/listing/model"
	gDto "stayfinder/shared/dto"
	gRepo "stayfinder/shared/repository"
	"stayfinder/shared/store"
)

type Listing interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Listing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Distinct(ctx context.Context, field string, filter gDto.FilterGroup) ([]any, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Listing]
}

func New(db store.Store, cfg *config.Config, otel otel.Otel) Listing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Listing](model.EntityName, cfg.DB.Mongo.ListingCollection, db, otel),
	}
}
