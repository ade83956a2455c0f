package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"math"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/booking/event"
	"stayfinder/internal/domains/booking/model"
	"stayfinder/internal/domains/booking/model/dto"
	"stayfinder/internal/domains/booking/repository"
	"stayfinder/internal/domains/booking/rules"
	listingDto "stayfinder/internal/domains/listing/model/dto"
	listingService "stayfinder/internal/domains/listing/service"
	"stayfinder/shared"
	"stayfinder/shared/cache"
	"stayfinder/shared/constant"
	"stayfinder/shared/failure"
	"stayfinder/shared/timezone"
	"stayfinder/shared/validator"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cacheGetBooking = "booking:get"

	msgAllFieldsRequired = "All fields are required"
	msgBookingNotFound   = "Booking not found"
	msgListingNotExist   = "Listing does not exist"
	msgErrCreateBooking  = "Error creating booking"
	msgErrFetchBooking   = "Error fetching booking"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirmation(ctx context.Context, id string) (dto.ConfirmationResponse, error)
	ComputeSummary(booking dto.BookingResponse, listing listingDto.ListingResponse) *dto.Summary
}

type serviceImpl struct {
	repo      repository.Booking
	listing   listingService.Listing
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	listing listingService.Listing,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		listing:   listing,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create checks the booking rules, then the raw required fields, and stores the booking.
// The booking.created event is published in the background and never fails the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = rules.Validate(req.Rules()); err != nil {
		return constant.Empty, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return constant.Empty, failure.MissingField(msgAllFieldsRequired) //nolint:wrapcheck
	}

	if s.cfg.App.Booking.VerifyListing {
		if err = s.verifyListing(ctx, req.ListingID); err != nil {
			return constant.Empty, err
		}
	}

	booking := req.ToModel(timezone.Now())

	id, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("listingId", req.ListingID).Msg("failed to create booking")

		return constant.Empty, failure.Downstream(msgErrCreateBooking) //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCreated(c, booking); err != nil {
			log.Warn().Err(err).Str("bookingId", id).Msg("failed to publish booking created event")
		}
	}()

	return id, nil
}

func (s *serviceImpl) verifyListing(ctx context.Context, listingID string) error {
	exists, err := s.listing.Exists(ctx, listingID)
	if err != nil {
		log.Error().Err(err).Str("listingId", listingID).Msg("failed to verify listing")

		return failure.Downstream(msgErrCreateBooking) //nolint:wrapcheck
	}

	if !exists {
		return failure.Validation(msgListingNotExist) //nolint:wrapcheck
	}

	return nil
}

// Get returns a not-found failure for ids that are not valid ObjectIDs.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return res, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(objectID, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, failure.Downstream(msgErrFetchBooking) //nolint:wrapcheck
	}

	if booking.ID.IsZero() {
		return res, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Confirmation loads the booking and its listing. A listing that no longer exists leaves
// the summary empty instead of failing.
func (s *serviceImpl) Confirmation(ctx context.Context, id string) (res dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Confirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Booking, err = s.Get(ctx, id)
	if err != nil {
		return res, err
	}

	listing, err := s.listing.Get(ctx, res.Booking.ListingID)
	if failure.IsKind(err, failure.KindNotFound) {
		log.Warn().Str("bookingId", id).Str("listingId", res.Booking.ListingID).Msg("booking references a missing listing")

		return res, nil
	}

	if err != nil {
		return res, err
	}

	res.ListingName = listing.Name
	res.NightlyRate = listing.Price
	res.Summary = s.ComputeSummary(res.Booking, listing)

	return res, nil
}

// ComputeSummary bills whole days inclusive of both ends: a same-day stay is one day.
// It returns nil when either date or the listing price is missing.
func (s *serviceImpl) ComputeSummary(booking dto.BookingResponse, listing listingDto.ListingResponse) *dto.Summary {
	if booking.StartDate == nil || booking.CheckOutDate == nil || listing.Price == nil {
		return nil
	}

	diff := booking.CheckOutDate.Sub(*booking.StartDate)
	if diff < 0 {
		diff = -diff
	}

	duration := int(math.Ceil(diff.Hours()/constant.HoursPerDay)) + 1

	return &dto.Summary{
		DurationDays: duration,
		TotalPrice:   *listing.Price * float64(duration),
	}
}
