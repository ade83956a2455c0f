package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Listing=MockListingService

import (
	"context"
	"slices"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/internal/domains/listing/model"
	"stayfinder/internal/domains/listing/model/dto"
	"stayfinder/internal/domains/listing/repository"
	"stayfinder/shared"
	"stayfinder/shared/cache"
	"stayfinder/shared/constant"
	gDto "stayfinder/shared/dto"
	"stayfinder/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cacheGetListing       = "listing:get"
	cacheGetAllListing    = "listing:get_all"
	cacheFilterListing    = "listing:filter"
	cachePropertyTypes    = "listing:property_types"
	cacheBedrooms         = "listing:bedrooms"
	msgListingNotFound    = "Listing not found"
	msgErrListing         = "Error fetching listing"
	msgErrListings        = "Error fetching listings"
	msgErrFilterListings  = "Error fetching filtered listings"
	msgErrPropertyTypes   = "Error fetching property types"
	msgErrBedrooms        = "Error fetching bedrooms"
	msgErrInvalidBedrooms = "Bedrooms must be a number"
)

type Listing interface {
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.ListingResponse, error)
	Filter(ctx context.Context, req dto.FilterRequest, params gDto.QueryParams) ([]dto.ListingResponse, error)
	Get(ctx context.Context, id string) (dto.ListingResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	PropertyTypes(ctx context.Context) ([]string, error)
	Bedrooms(ctx context.Context) ([]float64, error)
}

type serviceImpl struct {
	repo  repository.Listing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Listing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Listing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, cacheGetAllListing, msgErrListings, params, gDto.FilterGroup{})
}

func (s *serviceImpl) Filter(ctx context.Context, req dto.FilterRequest, params gDto.QueryParams) (res []dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.Filter")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Location == constant.Empty {
		return nil, failure.BadRequestFromString("Location is required") //nolint:wrapcheck
	}

	filter, err := req.ToFilter()
	if err != nil {
		log.Warn().Err(err).Msg("invalid listing filter")

		return nil, failure.BadRequestFromString(msgErrInvalidBedrooms) //nolint:wrapcheck
	}

	return s.list(ctx, cacheFilterListing, msgErrFilterListings, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, prefix, errMsg string, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ListingResponse, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, filter)

	var res []dto.ListingResponse

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listings")

		return res, nil
	}

	listings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get listings")

		return nil, failure.Downstream(errMsg) //nolint:wrapcheck
	}

	res = dto.FromModels(listings)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetListing, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listing")

		return res, nil
	}

	listing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get listing")

		return res, failure.Downstream(msgErrListing) //nolint:wrapcheck
	}

	if listing.ID == constant.Empty {
		return res, failure.NotFound(msgListingNotFound) //nolint:wrapcheck
	}

	res.FromModel(listing)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// Exists asks the store directly so a listing removed after it was cached is reported missing.
func (s *serviceImpl) Exists(ctx context.Context, id string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return false, nil
	}

	exists, err = s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check listing exists")

		return false, failure.Downstream(msgErrListing) //nolint:wrapcheck
	}

	return exists, nil
}

func (s *serviceImpl) PropertyTypes(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.PropertyTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cachePropertyTypes, &res); err == nil {
		return res, nil
	}

	values, err := s.repo.Distinct(ctx, model.FieldPropertyType, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get distinct property types")

		return nil, failure.Downstream(msgErrPropertyTypes) //nolint:wrapcheck
	}

	res = make([]string, 0, len(values))

	for _, value := range values {
		if propertyType, ok := value.(string); ok && propertyType != constant.Empty {
			res = append(res, propertyType)
		}
	}

	slices.Sort(res)

	s.saveCache(ctx, cachePropertyTypes, res)

	return res, nil
}

func (s *serviceImpl) Bedrooms(ctx context.Context) (res []float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing.Bedrooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheBedrooms, &res); err == nil {
		return res, nil
	}

	values, err := s.repo.Distinct(ctx, model.FieldBedrooms, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get distinct bedrooms")

		return nil, failure.Downstream(msgErrBedrooms) //nolint:wrapcheck
	}

	res = make([]float64, 0, len(values))

	for _, value := range values {
		if count, ok := toFloat(value); ok {
			res = append(res, count)
		}
	}

	slices.Sort(res)
	res = slices.Compact(res)

	s.saveCache(ctx, cacheBedrooms, res)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save listing data to cache")
		}
	}()
}

// toFloat normalises the numeric encodings distinct can return. Nulls are skipped.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(v.String(), 64)

		return f, err == nil
	default:
		return 0, false
	}
}
