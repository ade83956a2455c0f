package dto_test

import (
	"stayfinder/internal/domains/listing/model"
	"stayfinder/internal/domains/listing/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListingResponse_FromModel(t *testing.T) {
	rating := 93.0

	var res dto.ListingResponse
	res.FromModel(model.Listing{
		ID:           "10006546",
		Name:         "Ribeira Charming Duplex",
		Summary:      "Fantastic duplex apartment",
		Price:        model.NewPrice(80),
		ReviewScores: model.ReviewScores{Rating: &rating},
	})

	require.NotNil(t, res.Price)
	assert.InDelta(t, 80.0, *res.Price, 1e-9)
	assert.Equal(t, &rating, res.Rating)
	assert.Equal(t, "10006546", res.ID)

	var empty dto.ListingResponse
	empty.FromModel(model.Listing{ID: "1"})
	assert.Nil(t, empty.Price)
	assert.Nil(t, empty.Rating)
}

func TestFilterRequest_ToFilter(t *testing.T) {
	market := bson.M{model.FieldMarket: primitive.Regex{Pattern: "Sydney", Options: "i"}}

	tests := []struct {
		name    string
		req     dto.FilterRequest
		want    bson.M
		wantErr bool
	}{
		{
			name: "location only",
			req:  dto.FilterRequest{Location: "Sydney"},
			want: market,
		},
		{
			name: "location is escaped",
			req:  dto.FilterRequest{Location: "St. Kilda"},
			want: bson.M{model.FieldMarket: primitive.Regex{Pattern: `St\. Kilda`, Options: "i"}},
		},
		{
			name: "property type and numeric bedrooms",
			req:  dto.FilterRequest{Location: "Sydney", PropertyType: "Apartment", Bedrooms: float64(2)},
			want: bson.M{"$and": []bson.M{
				market,
				{model.FieldPropertyType: "Apartment"},
				{model.FieldBedrooms: float64(2)},
			}},
		},
		{
			name: "bedrooms from form string",
			req:  dto.FilterRequest{Location: "Sydney", Bedrooms: "3"},
			want: bson.M{"$and": []bson.M{market, {model.FieldBedrooms: float64(3)}}},
		},
		{
			name: "zero and blank bedrooms are ignored",
			req:  dto.FilterRequest{Location: "Sydney", Bedrooms: ""},
			want: market,
		},
		{
			name:    "non numeric bedrooms",
			req:     dto.FilterRequest{Location: "Sydney", Bedrooms: "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := tt.req.ToFilter()
			if tt.wantErr {
				assert.ErrorIs(t, err, dto.ErrInvalidBedrooms)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, group.GetQuery())
		})
	}
}

func TestFilterRequest_LocationCaseInsensitive(t *testing.T) {
	upper := dto.FilterRequest{Location: "Sydney"}
	lower := dto.FilterRequest{Location: "sydney"}

	upperGroup, err := upper.ToFilter()
	require.NoError(t, err)

	lowerGroup, err := lower.ToFilter()
	require.NoError(t, err)

	upperRegex, _ := upperGroup.GetQuery()[model.FieldMarket].(primitive.Regex)
	lowerRegex, _ := lowerGroup.GetQuery()[model.FieldMarket].(primitive.Regex)

	assert.Equal(t, "i", upperRegex.Options)
	assert.Equal(t, "i", lowerRegex.Options)
}
