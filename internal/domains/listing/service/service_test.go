package service_test

import (
	"context"
	"errors"
	"net/http"
	"stayfinder/config"
	"stayfinder/infras/otel/mocks"
	listingMocks "stayfinder/internal/domains/listing/mocks"
	"stayfinder/internal/domains/listing/model"
	"stayfinder/internal/domains/listing/model/dto"
	"stayfinder/internal/domains/listing/service"
	"stayfinder/shared"
	cacheMocks "stayfinder/shared/cache/mocks"
	gDto "stayfinder/shared/dto"
	"stayfinder/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (*listingMocks.MockListingRepository, *cacheMocks.MockRedisCache, service.Listing) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := listingMocks.NewMockListingRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestListingService_GetAll(t *testing.T) {
	rating := 97.0

	tests := []struct {
		name      string
		setupMock func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache)
		want      []dto.ListingResponse
		wantCode  int
	}{
		{
			name: "cache miss loads from store and coerces price",
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).Return([]model.Listing{
					{ID: "1", Name: "Loft", Price: model.NewPrice(80), ReviewScores: model.ReviewScores{Rating: &rating}},
					{ID: "2", Name: "Shack"},
				}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()
			},
			want: []dto.ListingResponse{
				{ID: "1", Name: "Loft", Price: ptr(80.0), Rating: &rating},
				{ID: "2", Name: "Shack"},
			},
		},
		{
			name: "cache hit",
			setupMock: func(_ *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*[]dto.ListingResponse)
						*res = []dto.ListingResponse{{ID: "cached"}}

						return nil
					})
			},
			want: []dto.ListingResponse{{ID: "cached"}},
		},
		{
			name: "store error",
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("server selection timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, svc := newService(t)
			tt.setupMock(repo, cache)

			got, err := svc.GetAll(context.Background(), gDto.QueryParams{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, "Error fetching listings", err.Error())
				assert.NotContains(t, err.Error(), "timeout")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingService_Filter(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.FilterRequest
		setupMock func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache)
		wantLen   int
		wantCode  int
		wantMsg   string
	}{
		{
			name:     "missing location",
			req:      dto.FilterRequest{PropertyType: "House"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Location is required",
		},
		{
			name:     "invalid bedrooms",
			req:      dto.FilterRequest{Location: "Sydney", Bedrooms: "lots"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Bedrooms must be a number",
		},
		{
			name: "location filter",
			req:  dto.FilterRequest{Location: "sydney", PropertyType: "Apartment"},
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error) {
						query := filter.GetQuery()
						assert.Contains(t, query, "$and")

						return []model.Listing{{ID: "1"}, {ID: "2"}}, nil
					})
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantLen: 2,
		},
		{
			name: "store error",
			req:  dto.FilterRequest{Location: "Porto"},
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error fetching filtered listings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, svc := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, cache)
			}

			got, err := svc.Filter(context.Background(), tt.req, gDto.QueryParams{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, err.Error())

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestListingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "found",
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "listing:get:10006546", gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "10006546", Price: model.NewPrice(80)}, nil)
				cache.EXPECT().Save(gomock.Any(), "listing:get:10006546", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Listing not found",
		},
		{
			name: "store error",
			setupMock: func(repo *listingMocks.MockListingRepository, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error fetching listing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, svc := newService(t)
			tt.setupMock(repo, cache)

			got, err := svc.Get(context.Background(), "10006546")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "10006546", got.ID)
			require.NotNil(t, got.Price)
			assert.InDelta(t, 80.0, *got.Price, 1e-9)
		})
	}
}

func TestListingService_Exists(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *listingMocks.MockListingRepository)
		want      bool
		wantCode  int
	}{
		{
			name: "listing exists",
			id:   "10006546",
			setupMock: func(repo *listingMocks.MockListingRepository) {
				repo.EXPECT().Exist(gomock.Any(), shared.FilterByID("10006546", model.FieldID)).Return(true, nil)
			},
			want: true,
		},
		{
			name: "listing missing",
			id:   "404",
			setupMock: func(repo *listingMocks.MockListingRepository) {
				repo.EXPECT().Exist(gomock.Any(), shared.FilterByID("404", model.FieldID)).Return(false, nil)
			},
		},
		{
			name: "empty id skips the store",
			id:   "",
		},
		{
			name: "store error",
			id:   "10006546",
			setupMock: func(repo *listingMocks.MockListingRepository) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newService(t)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Exists(context.Background(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, "Error fetching listing", err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingService_PropertyTypes(t *testing.T) {
	repo, cache, svc := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().Distinct(gomock.Any(), model.FieldPropertyType, gomock.Any()).
		Return([]any{"House", "Apartment", nil, "Condominium"}, nil)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	got, err := svc.PropertyTypes(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []string{"Apartment", "Condominium", "House"}, got)
}

func TestListingService_Bedrooms(t *testing.T) {
	dec, err := primitive.ParseDecimal128("4")
	require.NoError(t, err)

	t.Run("sorted numbers", func(t *testing.T) {
		repo, cache, svc := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Distinct(gomock.Any(), model.FieldBedrooms, gomock.Any()).
			Return([]any{int32(3), int32(0), nil, int64(1), 2.0, dec, int32(3)}, nil)
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := svc.Bedrooms(context.Background())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)
	})

	t.Run("store error", func(t *testing.T) {
		repo, cache, svc := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Distinct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.Bedrooms(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Error fetching bedrooms", err.Error())
	})
}

func ptr[T any](v T) *T {
	return &v
}
