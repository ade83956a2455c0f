// Package rules holds the booking form checks shared by the API and the Go client.
// Validate has no side effects and reports the first failing rule only.
package rules

import (
	"errors"
	"regexp"
	"stayfinder/shared/constant"
	"strings"
	"time"
)

var (
	ErrMissingDates          = errors.New("missing dates")
	ErrCheckOutBeforeCheckIn = errors.New("check-out before check-in")
	ErrSameAddress           = errors.New("postal and residential cannot be the same")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

var dateLayouts = []string{constant.DateOnlyFormat, constant.DateFormat, time.RFC3339Nano}

// Booking is the subset of the booking form the rules look at.
type Booking struct {
	CheckIn     string
	CheckOut    string
	Name        string
	Email       string
	MobileNo    string
	Postal      string
	Residential string
}

func Validate(b Booking) error {
	checkIn, okIn := ParseDate(b.CheckIn)
	checkOut, okOut := ParseDate(b.CheckOut)

	if !okIn || !okOut {
		return ErrMissingDates
	}

	if checkOut.Before(checkIn) {
		return ErrCheckOutBeforeCheckIn
	}

	if b.Postal != "" && b.Residential != "" && strings.EqualFold(b.Postal, b.Residential) {
		return ErrSameAddress
	}

	if isBlank(b.Name) || isBlank(b.Email) || isBlank(b.MobileNo) {
		return ErrMissingRequiredFields
	}

	if !emailPattern.MatchString(b.Email) {
		return ErrInvalidEmail
	}

	if !phonePattern.MatchString(b.MobileNo) {
		return ErrInvalidPhone
	}

	return nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the instant in UTC.
// A blank or unparseable value reports false.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
