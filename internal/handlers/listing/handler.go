package listing

import (
	"net/http"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/listing/model/dto"
	"stayfinder/internal/domains/listing/service"
	"stayfinder/shared/constant"
	gDto "stayfinder/shared/dto"
	"stayfinder/shared/validator"
	"stayfinder/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetListings)
		routerGroup.Post("/filter", handler.FilterListings)
		routerGroup.Get("/{id}", handler.GetListingByID)
	})

	router.Route("/listing", func(routerGroup chi.Router) {
		routerGroup.Get("/property-types", handler.GetPropertyTypes)
		routerGroup.Get("/bedrooms", handler.GetBedrooms)
	})
}

// GetListings returns the catalog.
// @Summary Get all listings
// @Description Retrieve listings with their nightly price and rating. Paging and sorting are optional.
// @Tags Listing
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort field"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {array} dto.ListingResponse
// @Failure 500 {object} response.Error
// @Router /api/listings [get]
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	listings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, listings)
}

// FilterListings searches the catalog by market.
// @Summary Filter listings
// @Description Case-insensitive substring match on the market, with optional property type and bedroom count.
// @Tags Listing
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.FilterRequest true "Filter Request"
// @Success 200 {array} dto.ListingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/listings/filter [post]
func (handler *Handler) FilterListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FilterListings")
	defer scope.End()

	req := dto.FilterRequest{}

	if err := validator.Validate(r, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate filter request")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	listings, err := handler.service.Filter(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listings filtered")

	response.WithJSON(w, http.StatusOK, listings)
}

// GetListingByID returns one listing.
// @Summary Get a listing by ID
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/listings/{id} [get]
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	listing, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get listing by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, listing)
}

// GetPropertyTypes returns the distinct property types.
// @Summary Get property types
// @Tags Listing
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.Error
// @Router /api/listing/property-types [get]
func (handler *Handler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyTypes")
	defer scope.End()

	propertyTypes, err := handler.service.PropertyTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, propertyTypes)
}

// GetBedrooms returns the distinct bedroom counts in ascending order.
// @Summary Get bedroom counts
// @Tags Listing
// @Produce json
// @Success 200 {array} number
// @Failure 500 {object} response.Error
// @Router /api/listing/bedrooms [get]
func (handler *Handler) GetBedrooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBedrooms")
	defer scope.End()

	bedrooms, err := handler.service.Bedrooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bedrooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bedrooms)
}
