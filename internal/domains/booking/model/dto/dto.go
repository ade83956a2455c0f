package dto

import (
	"stayfinder/internal/domains/booking/model"
	"stayfinder/internal/domains/booking/rules"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookingRequest is the booking form. The required tags guard the raw payload;
// the booking rules are checked separately through Rules.
type CreateBookingRequest struct {
	ListingID    string `json:"listingId"    validate:"required"`
	StartDate    string `json:"startDate"    validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	Name         string `json:"name"         validate:"required"`
	Email        string `json:"email"        validate:"required"`
	MobileNo     string `json:"mobileNo"     validate:"required"`
	Postal       string `json:"postal"`
	Residential  string `json:"residential"`
}

func (c *CreateBookingRequest) Rules() rules.Booking {
	return rules.Booking{
		CheckIn:     c.StartDate,
		CheckOut:    c.CheckOutDate,
		Name:        c.Name,
		Email:       c.Email,
		MobileNo:    c.MobileNo,
		Postal:      c.Postal,
		Residential: c.Residential,
	}
}

// ToModel assumes the request already passed the booking rules.
func (c *CreateBookingRequest) ToModel(now time.Time) model.Booking {
	startDate, _ := rules.ParseDate(c.StartDate)
	checkOutDate, _ := rules.ParseDate(c.CheckOutDate)

	return model.Booking{
		ID:           primitive.NewObjectID(),
		ListingID:    c.ListingID,
		StartDate:    startDate,
		CheckOutDate: checkOutDate,
		Client: model.Client{
			Name:        c.Name,
			Email:       c.Email,
			MobileNo:    c.MobileNo,
			Postal:      c.Postal,
			Residential: c.Residential,
		},
		CreatedAt: now.UTC(),
	}
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type ClientResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MobileNo    string `json:"mobileNo"`
	Postal      string `json:"postal"`
	Residential string `json:"residential"`
}

type BookingResponse struct {
	ID           string         `json:"_id"`
	ListingID    string         `json:"listingId"`
	StartDate    *time.Time     `json:"startDate"`
	CheckOutDate *time.Time     `json:"checkOutDate"`
	Client       ClientResponse `json:"client"`
	CreatedAt    *time.Time     `json:"createdAt,omitempty"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID.Hex()
	r.ListingID = m.ListingID
	r.StartDate = timePtr(m.StartDate)
	r.CheckOutDate = timePtr(m.CheckOutDate)
	r.CreatedAt = timePtr(m.CreatedAt)
	r.Client = ClientResponse{
		Name:        m.Client.Name,
		Email:       m.Client.Email,
		MobileNo:    m.Client.MobileNo,
		Postal:      m.Client.Postal,
		Residential: m.Client.Residential,
	}
}

// Summary is derived on read and never stored.
type Summary struct {
	DurationDays int     `json:"durationDays"`
	TotalPrice   float64 `json:"totalPrice"`
}

type ConfirmationResponse struct {
	Booking     BookingResponse `json:"booking"`
	ListingName string          `json:"listingName,omitempty"`
	NightlyRate *float64        `json:"nightlyRate,omitempty"`
	Summary     *Summary        `json:"summary"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	t = t.UTC()

	return &t
}
