package rules_test

import (
	"stayfinder/internal/domains/booking/rules"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func valid() rules.Booking {
	return rules.Booking{
		CheckIn:     "2025-01-01",
		CheckOut:    "2025-01-03",
		Name:        "Bob Smith",
		Email:       "bob@example.com",
		MobileNo:    "0412345678",
		Postal:      "1 Harbour St",
		Residential: "2 Beach Rd",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(b *rules.Booking)
		want   error
	}{
		{name: "valid", modify: func(_ *rules.Booking) {}},
		{name: "valid without addresses", modify: func(b *rules.Booking) { b.Postal, b.Residential = "", "" }},
		{name: "same day stay", modify: func(b *rules.Booking) { b.CheckOut = b.CheckIn }},
		{name: "missing check-in", modify: func(b *rules.Booking) { b.CheckIn = "" }, want: rules.ErrMissingDates},
		{name: "missing check-out", modify: func(b *rules.Booking) { b.CheckOut = "" }, want: rules.ErrMissingDates},
		{name: "missing both dates", modify: func(b *rules.Booking) { b.CheckIn, b.CheckOut = "", "" }, want: rules.ErrMissingDates},
		{name: "unparseable date", modify: func(b *rules.Booking) { b.CheckIn = "next tuesday" }, want: rules.ErrMissingDates},
		{name: "check-out before check-in", modify: func(b *rules.Booking) { b.CheckOut = "2024-12-31" }, want: rules.ErrCheckOutBeforeCheckIn},
		{name: "same postcode", modify: func(b *rules.Booking) { b.Postal, b.Residential = "10001", "10001" }, want: rules.ErrSameAddress},
		{name: "same address any casing", modify: func(b *rules.Booking) { b.Postal, b.Residential = "A", "a" }, want: rules.ErrSameAddress},
		{name: "missing name", modify: func(b *rules.Booking) { b.Name = "" }, want: rules.ErrMissingRequiredFields},
		{name: "blank email", modify: func(b *rules.Booking) { b.Email = "   " }, want: rules.ErrMissingRequiredFields},
		{name: "missing mobile", modify: func(b *rules.Booking) { b.MobileNo = "" }, want: rules.ErrMissingRequiredFields},
		{name: "email without domain", modify: func(b *rules.Booking) { b.Email = "bob@" }, want: rules.ErrInvalidEmail},
		{name: "email without at", modify: func(b *rules.Booking) { b.Email = "bob.example.com" }, want: rules.ErrInvalidEmail},
		{name: "email with space", modify: func(b *rules.Booking) { b.Email = "bob smith@example.com" }, want: rules.ErrInvalidEmail},
		{name: "nine digit phone", modify: func(b *rules.Booking) { b.MobileNo = "041234567" }, want: rules.ErrInvalidPhone},
		{name: "eleven digit phone", modify: func(b *rules.Booking) { b.MobileNo = "04123456789" }, want: rules.ErrInvalidPhone},
		{name: "phone with letters", modify: func(b *rules.Booking) { b.MobileNo = "04123x5678" }, want: rules.ErrInvalidPhone},
		{name: "non ascii digits", modify: func(b *rules.Booking) { b.MobileNo = "０４１２３４５６７８" }, want: rules.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.modify(&b)

			err := rules.Validate(b)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Error(), err.Error())
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	b := rules.Booking{
		CheckIn:     "2025-01-05",
		CheckOut:    "2025-01-01",
		Postal:      "same",
		Residential: "SAME",
		Email:       "bad",
		MobileNo:    "1",
	}

	assert.ErrorIs(t, rules.Validate(b), rules.ErrCheckOutBeforeCheckIn)

	b.CheckOut = "2025-01-06"
	assert.ErrorIs(t, rules.Validate(b), rules.ErrSameAddress)

	b.Residential = "other"
	assert.ErrorIs(t, rules.Validate(b), rules.ErrMissingRequiredFields)

	b.Name = "Bob"
	assert.ErrorIs(t, rules.Validate(b), rules.ErrInvalidEmail)

	b.Email = "bob@example.com"
	assert.ErrorIs(t, rules.Validate(b), rules.ErrInvalidPhone)

	b.MobileNo = "0412345678"
	assert.NoError(t, rules.Validate(b))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   time.Time
		wantOK bool
	}{
		{name: "date only", value: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "rfc3339 utc", value: "2025-01-01T10:30:00Z", want: time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC), wantOK: true},
		{name: "rfc3339 offset", value: "2025-01-01T10:00:00+10:00", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "rfc3339 millis", value: "2025-01-01T00:00:00.000Z", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "padded", value: " 2025-01-01 ", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "blank", value: ""},
		{name: "garbage", value: "01/01/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rules.ParseDate(tt.value)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.True(t, tt.want.Equal(got))
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}
