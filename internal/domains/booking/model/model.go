package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EntityName = "booking"

	FieldID = "_id"
)

// Booking is written once and never updated.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id"`
	ListingID    string             `bson:"listingId"`
	StartDate    time.Time          `bson:"startDate"`
	CheckOutDate time.Time          `bson:"checkOutDate"`
	Client       Client             `bson:"client"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
}

type Client struct {
	Name        string `bson:"name"`
	Email       string `bson:"email"`
	MobileNo    string `bson:"mobileNo"`
	Postal      string `bson:"postal"`
	Residential string `bson:"residential"`
}
