// Package worker runs the background consumers. The booking consumer loads every newly
// created booking once so the read path finds it in the cache.
package worker

import (
	"context"
	"os"
	"os/signal"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/booking/event"
	bookingService "stayfinder/internal/domains/booking/service"
	"stayfinder/shared/store"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type Worker struct {
	Config     *config.Config
	Subscriber event.Subscriber
	Booking    bookingService.Booking
	Otel       otel.Otel
	Store      store.Store
}

func New(cfg *config.Config, subscriber event.Subscriber, booking bookingService.Booking, otl otel.Otel, db store.Store) *Worker {
	return &Worker{
		Config:     cfg,
		Subscriber: subscriber,
		Booking:    booking,
		Otel:       otl,
		Store:      db,
	}
}

// Run consumes until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	log.Info().
		Str("topic", w.Config.Kafka.Topic.BookingCreated).
		Str("group", w.Config.Kafka.ConsumerGroup).
		Msg("Booking worker started")

	w.Subscriber.OnBookingCreated(ctx, w.WarmBooking)

	log.Info().Msg("Booking worker stopped")
}

func (w *Worker) WarmBooking(ctx context.Context, created event.BookingCreated) error {
	_, err := w.Booking.Get(ctx, created.BookingID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Debug().Str("bookingId", created.BookingID).Msg("Booking cache warmed")

	return nil
}

// Serve runs the worker until SIGINT or SIGTERM, then disconnects and flushes traces.
func (w *Worker) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(w.Config.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	w.Close(shutdownCtx)
}

func (w *Worker) Close(ctx context.Context) {
	if err := w.Store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from the database")
	}

	if err := w.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown otel")
	}
}
