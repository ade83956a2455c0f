package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"stayfinder/client"
	"stayfinder/internal/domains/booking/model/dto"
	"stayfinder/internal/domains/booking/rules"
	listingDto "stayfinder/internal/domains/listing/model/dto"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ListingID:    "10006546",
		StartDate:    "2025-01-01",
		CheckOutDate: "2025-01-03",
		Name:         "Ana",
		Email:        "ana@example.com",
		MobileNo:     "0412345678",
		Postal:       "1 A St",
		Residential:  "2 B St",
	}
}

func TestClient_CreateBooking(t *testing.T) {
	t.Run("submits a valid booking", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/booking", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body dto.CreateBookingRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, validBooking(), body)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"Booking created successfully","bookingId":"65a000000000000000000001"}`))
		}))
		defer server.Close()

		created, err := client.New(server.URL+"/", server.Client()).CreateBooking(context.Background(), validBooking())

		require.NoError(t, err)
		assert.Equal(t, "65a000000000000000000001", created.BookingID)
		assert.Equal(t, "Booking created successfully", created.Message)
	})

	tests := []struct {
		name    string
		mutate  func(req *dto.CreateBookingRequest)
		wantErr error
	}{
		{name: "missing dates", mutate: func(req *dto.CreateBookingRequest) { req.StartDate = "" }, wantErr: rules.ErrMissingDates},
		{name: "check-out before check-in", mutate: func(req *dto.CreateBookingRequest) { req.CheckOutDate = "2024-12-31" }, wantErr: rules.ErrCheckOutBeforeCheckIn},
		{name: "same address", mutate: func(req *dto.CreateBookingRequest) { req.Residential = "1 a st" }, wantErr: rules.ErrSameAddress},
		{name: "invalid email", mutate: func(req *dto.CreateBookingRequest) { req.Email = "ana@" }, wantErr: rules.ErrInvalidEmail},
		{name: "invalid phone", mutate: func(req *dto.CreateBookingRequest) { req.MobileNo = "04123" }, wantErr: rules.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run("rejects locally: "+tt.name, func(t *testing.T) {
			var calls atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			req := validBooking()
			tt.mutate(&req)

			_, err := client.New(server.URL, server.Client()).CreateBooking(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, calls.Load())
		})
	}

	t.Run("server rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"All fields are required"}`))
		}))
		defer server.Close()

		req := validBooking()
		req.ListingID = ""

		_, err := client.New(server.URL, server.Client()).CreateBooking(context.Background(), req)

		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "All fields are required", apiErr.Message)
	})
}

func TestClient_Reads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/listings", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","name":"Loft","summary":"Nice","price":80,"rating":95}]`))
	})
	mux.HandleFunc("POST /api/listings/filter", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body["location"] != "Porto" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Location is required"}`))

			return
		}

		_, _ = w.Write([]byte(`[{"id":"2","name":"Flat","summary":"","price":null}]`))
	})
	mux.HandleFunc("GET /api/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Listing not found"}`))

			return
		}

		_, _ = w.Write([]byte(`{"id":"1","name":"Loft","summary":"Nice","price":80}`))
	})
	mux.HandleFunc("GET /api/listing/property-types", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["Apartment","House"]`))
	})
	mux.HandleFunc("GET /api/listing/bedrooms", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[0,1,2.5]`))
	})
	mux.HandleFunc("GET /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"` + r.PathValue("id") + `","listingId":"1","startDate":"2025-01-01T00:00:00Z","checkOutDate":"2025-01-03T00:00:00Z","client":{"name":"Ana"}}`))
	})
	mux.HandleFunc("GET /api/bookings/{id}/confirmation", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"booking":{"_id":"b1"},"listingName":"Loft","summary":{"durationDays":3,"totalPrice":240}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	api := client.New(server.URL, server.Client())
	ctx := context.Background()

	listings, err := api.Listings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.InDelta(t, 80.0, *listings[0].Price, 0.0001)

	filtered, err := api.FilterListings(ctx, listingDto.FilterRequest{Location: "Porto"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Nil(t, filtered[0].Price)

	_, err = api.FilterListings(ctx, listingDto.FilterRequest{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Location is required", apiErr.Message)

	listing, err := api.Listing(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Loft", listing.Name)

	_, err = api.Listing(ctx, "404")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	_, err = api.Listing(ctx, "")
	assert.ErrorIs(t, err, client.ErrEmptyID)

	propertyTypes, err := api.PropertyTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apartment", "House"}, propertyTypes)

	bedrooms, err := api.Bedrooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2.5}, bedrooms)

	booking, err := api.Booking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	require.NotNil(t, booking.StartDate)
	assert.Equal(t, 2025, booking.StartDate.Year())

	confirmation, err := api.Confirmation(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Loft", confirmation.ListingName)
	require.NotNil(t, confirmation.Summary)
	assert.Equal(t, 3, confirmation.Summary.DurationDays)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "404: Listing not found", (&client.APIError{StatusCode: 404, Message: "Listing not found"}).Error())
	assert.Equal(t, "400: Bad input (decode)", (&client.APIError{StatusCode: 400, Message: "Bad input", Detail: "decode"}).Error())
}
