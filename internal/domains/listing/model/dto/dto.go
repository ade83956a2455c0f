package dto

import (
	"errors"
	"fmt"
	"stayfinder/internal/domains/listing/model"
	gDto "stayfinder/shared/dto"
	"strconv"
	"strings"
)

var ErrInvalidBedrooms = errors.New("bedrooms must be a number")

type ListingResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Price   *float64 `json:"price"`
	Rating  *float64 `json:"rating,omitempty"`
}

func (r *ListingResponse) FromModel(m model.Listing) {
	r.ID = m.ID
	r.Name = m.Name
	r.Summary = m.Summary
	r.Price = m.Price.Float()
	r.Rating = m.ReviewScores.Rating
}

func FromModels(models []model.Listing) []ListingResponse {
	res := make([]ListingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// FilterRequest is the search form. Bedrooms arrives as a number from JSON bodies and as a
// string from form bodies, so it is kept untyped until ToFilter.
type FilterRequest struct {
	Location     string `json:"location"     validate:"required"`
	PropertyType string `json:"propertyType"`
	Bedrooms     any    `json:"bedrooms"`
}

// BedroomCount returns the requested bedroom count, with ok false when none was given.
func (f *FilterRequest) BedroomCount() (count float64, ok bool, err error) {
	switch v := f.Bedrooms.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, v != 0, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, false, nil
		}

		count, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidBedrooms, v)
		}

		return count, count != 0, nil
	default:
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidBedrooms, v)
	}
}

// ToFilter builds the catalog query: case-insensitive substring on the market, plus the optional
// exact property type and bedroom count.
func (f *FilterRequest) ToFilter() (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldMarket, Value: f.Location, Operator: gDto.FilterOperatorLike},
		},
	}

	if f.PropertyType != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldPropertyType,
			Value:    f.PropertyType,
			Operator: gDto.FilterOperatorEq,
		})
	}

	bedrooms, ok, err := f.BedroomCount()
	if err != nil {
		return group, err
	}

	if ok {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldBedrooms,
			Value:    bedrooms,
			Operator: gDto.FilterOperatorEq,
		})
	}

	return group, nil
}
