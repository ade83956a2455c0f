//go:build wireinject
// +build wireinject

package di

import (
	"stayfinder/config"
	"stayfinder/infras/kafka"
	"stayfinder/infras/mongo"
	"stayfinder/infras/otel"
	"stayfinder/infras/redis"
	"stayfinder/shared/cache"
	"stayfinder/shared/store"
	"stayfinder/transport/http"
	"stayfinder/transport/http/middleware"
	"stayfinder/transport/http/router"
	"stayfinder/transport/worker"

	bookingEvent "stayfinder/internal/domains/booking/event"
	bookingRepository "stayfinder/internal/domains/booking/repository"
	bookingService "stayfinder/internal/domains/booking/service"
	bookingHandler "stayfinder/internal/handlers/booking"

	listingRepository "stayfinder/internal/domains/listing/repository"
	listingService "stayfinder/internal/domains/listing/service"
	listingHandler "stayfinder/internal/handlers/listing"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	wire.Bind(new(store.Store), new(*mongo.Connection)),
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var listingDomain = wire.NewSet(
	listingRepository.New,
	listingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	listingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	listingHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		bookingEvent.NewSubscriber,
		worker.New,
	)

	return &worker.Worker{}
}
