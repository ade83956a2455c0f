package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Booking=MockBookingRepository

import (
	"context"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/booking/model"
	gDto "stayfinder/shared/dto"
	gRepo "stayfinder/shared/repository"
	"stayfinder/shared/store"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (string, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db store.Store, cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, cfg.DB.Mongo.BookingCollection, db, otel),
	}
}
