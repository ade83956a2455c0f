package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayfinder/config"
	"stayfinder/infras/kafka"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/booking/model"
	"stayfinder/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// BookingCreated is published once per stored booking, keyed by booking id.
type BookingCreated struct {
	BookingID    string    `json:"bookingId"`
	ListingID    string    `json:"listingId"`
	StartDate    time.Time `json:"startDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBookingCreated(booking model.Booking) BookingCreated {
	return BookingCreated{
		BookingID:    booking.ID.Hex(),
		ListingID:    booking.ListingID,
		StartDate:    booking.StartDate,
		CheckOutDate: booking.CheckOutDate,
		CreatedAt:    booking.CreatedAt,
	}
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
}

type Subscriber interface {
	// OnBookingCreated blocks until ctx is done.
	OnBookingCreated(ctx context.Context, handle func(ctx context.Context, event BookingCreated) error)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic.BookingCreated,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload := NewBookingCreated(booking)
	scope.SetAttribute("booking.id", payload.BookingID)

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: payload.BookingID, Value: payload})
	if err != nil {
		return fmt.Errorf("failed to publish booking created event: %w", err)
	}

	return nil
}

type subscriberImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewSubscriber(client kafka.Client, cfg *config.Config, otel otel.Otel) Subscriber {
	return &subscriberImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *subscriberImpl) OnBookingCreated(ctx context.Context, handle func(ctx context.Context, event BookingCreated) error) {
	topic := s.cfg.Kafka.Topic.BookingCreated

	s.client.Consume(ctx, s.cfg.Kafka.ConsumerGroup, topic, func(message kafkaGo.Message) {
		c, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".OnBookingCreated")
		defer scope.End()

		payload, err := kafka.DecodeMessage[BookingCreated](message)
		if err != nil {
			scope.TraceError(err)

			return
		}

		if err := handle(c, payload); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("bookingId", payload.BookingID).Str("topic", topic).Msg("failed to handle booking created event")
		}
	})
}
