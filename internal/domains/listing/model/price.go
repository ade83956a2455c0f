package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnsupportedPriceType = errors.New("unsupported price type")

// Price is a nightly price stored as Decimal128 and exposed as float64.
// Precision beyond float64 is lost and no rounding is applied.
type Price struct {
	Value float64
	Valid bool
}

func NewPrice(value float64) Price {
	return Price{Value: value, Valid: true}
}

// Float returns nil when the price is absent.
func (p Price) Float() *float64 {
	if !p.Valid {
		return nil
	}

	value := p.Value

	return &value
}

// UnmarshalBSONValue accepts Decimal128 as well as the plain numeric and string encodings.
func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var (
		value float64
		err   error
	)

	switch t {
	case bsontype.Null, bsontype.Undefined:
		*p = Price{}

		return nil
	case bsontype.Decimal128:
		dec, ok := raw.Decimal128OK()
		if !ok {
			return fmt.Errorf("invalid decimal128 price")
		}

		value, err = strconv.ParseFloat(dec.String(), 64)
	case bsontype.Double:
		value = raw.Double()
	case bsontype.Int32:
		value = float64(raw.Int32())
	case bsontype.Int64:
		value = float64(raw.Int64())
	case bsontype.String:
		value, err = strconv.ParseFloat(raw.StringValue(), 64)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPriceType, t)
	}

	if err != nil {
		return fmt.Errorf("failed to parse price: %w", err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		*p = Price{}

		return nil
	}

	*p = NewPrice(value)

	return nil
}

// MarshalBSONValue writes the price back as Decimal128, or null when absent.
func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !p.Valid {
		return bsontype.Null, nil, nil
	}

	dec, err := primitive.ParseDecimal128(strconv.FormatFloat(p.Value, 'f', -1, 64))
	if err != nil {
		return bsontype.Null, nil, fmt.Errorf("failed to convert price to decimal128: %w", err)
	}

	return bson.MarshalValue(dec)
}
