package booking

import (
	"net/http"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/booking/model/dto"
	"stayfinder/internal/domains/booking/service"
	"stayfinder/shared/constant"
	"stayfinder/shared/validator"
	"stayfinder/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgBookingCreated = "Booking created successfully"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/booking", handler.CreateBooking)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/confirmation", handler.GetConfirmation)
	})
}

// CreateBooking stores a booking for a listing.
// @Summary Create a booking
// @Description Checks the booking rules, then stores the booking and returns its id.
// @Tags Booking
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Decode(r, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + id)

	response.WithJSON(w, http.StatusCreated, dto.CreateBookingResponse{
		Message:   msgBookingCreated,
		BookingID: id,
	})
}

// GetBookingByID returns the stored booking.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetConfirmation returns the booking with its listing name and price summary.
// @Summary Get a booking confirmation
// @Description The summary is omitted when the listing or its price is no longer available.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.ConfirmationResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id}/confirmation [get]
func (handler *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfirmation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	confirmation, err := handler.service.Confirmation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking confirmation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, confirmation)
}
