package model

const (
	EntityName = "listing"

	FieldID           = "_id"
	FieldMarket       = "address.market"
	FieldPropertyType = "property_type"
	FieldBedrooms     = "bedrooms"
)

// Listing is the read projection of a document in the listings collection.
type Listing struct {
	ID           string       `bson:"_id"`
	Name         string       `bson:"name"`
	Summary      string       `bson:"summary"`
	Price        Price        `bson:"price"`
	ReviewScores ReviewScores `bson:"review_scores" projection:"review_scores.review_scores_rating"`
}

type ReviewScores struct {
	Rating *float64 `bson:"review_scores_rating,omitempty"`
}
