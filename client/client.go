// Package client calls the stayfinder API. CreateBooking runs the booking rules locally
// before anything is sent, the server checks them again.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"stayfinder/internal/domains/booking/model/dto"
	"stayfinder/internal/domains/booking/rules"
	listingDto "stayfinder/internal/domains/listing/model/dto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

var ErrEmptyID = errors.New("id is required")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Detail     string `json:"error,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}

	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

type Client interface {
	Listings(ctx context.Context) ([]listingDto.ListingResponse, error)
	FilterListings(ctx context.Context, req listingDto.FilterRequest) ([]listingDto.ListingResponse, error)
	Listing(ctx context.Context, id string) (listingDto.ListingResponse, error)
	PropertyTypes(ctx context.Context) ([]string, error)
	Bedrooms(ctx context.Context) ([]float64, error)
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Booking(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirmation(ctx context.Context, id string) (dto.ConfirmationResponse, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API at baseURL. A nil httpClient gets a default one with a timeout.
func New(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *clientImpl) Listings(ctx context.Context) ([]listingDto.ListingResponse, error) {
	var listings []listingDto.ListingResponse

	err := c.do(ctx, http.MethodGet, "/api/listings", nil, &listings)

	return listings, err
}

func (c *clientImpl) FilterListings(ctx context.Context, req listingDto.FilterRequest) ([]listingDto.ListingResponse, error) {
	var listings []listingDto.ListingResponse

	err := c.do(ctx, http.MethodPost, "/api/listings/filter", req, &listings)

	return listings, err
}

func (c *clientImpl) Listing(ctx context.Context, id string) (listingDto.ListingResponse, error) {
	var listing listingDto.ListingResponse

	if id == "" {
		return listing, ErrEmptyID
	}

	err := c.do(ctx, http.MethodGet, "/api/listings/"+url.PathEscape(id), nil, &listing)

	return listing, err
}

func (c *clientImpl) PropertyTypes(ctx context.Context) ([]string, error) {
	var propertyTypes []string

	err := c.do(ctx, http.MethodGet, "/api/listing/property-types", nil, &propertyTypes)

	return propertyTypes, err
}

func (c *clientImpl) Bedrooms(ctx context.Context) ([]float64, error) {
	var bedrooms []float64

	err := c.do(ctx, http.MethodGet, "/api/listing/bedrooms", nil, &bedrooms)

	return bedrooms, err
}

// CreateBooking returns the rules error unchanged when the request is rejected locally,
// so callers can match it with errors.Is.
func (c *clientImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
	var created dto.CreateBookingResponse

	if err := rules.Validate(req.Rules()); err != nil {
		log.Debug().Err(err).Str("listingId", req.ListingID).Msg("booking rejected before submit")

		return created, err //nolint:wrapcheck
	}

	err := c.do(ctx, http.MethodPost, "/api/booking", req, &created)

	return created, err
}

func (c *clientImpl) Booking(ctx context.Context, id string) (dto.BookingResponse, error) {
	var booking dto.BookingResponse

	if id == "" {
		return booking, ErrEmptyID
	}

	err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, &booking)

	return booking, err
}

func (c *clientImpl) Confirmation(ctx context.Context, id string) (dto.ConfirmationResponse, error) {
	var confirmation dto.ConfirmationResponse

	if id == "" {
		return confirmation, ErrEmptyID
	}

	err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id)+"/confirmation", nil, &confirmation)

	return confirmation, err
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}
