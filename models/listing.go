package models

import "time"

// Market identifies which inventory a listing came from.
type Market string

const (
	MarketUS    Market = "us"    // scrape-driven market
	MarketLocal Market = "local" // curated local inventory
)

// Listing is a rental unit the assistant can discuss and tour.
type Listing struct {
	ID        string    `bson:"id" json:"id"`
	Market    Market    `bson:"market" json:"market"`
	Title     string    `bson:"title" json:"title"`
	Address   string    `bson:"address" json:"address"`
	City      string    `bson:"city" json:"city"`
	Price     float64   `bson:"price" json:"price"`
	Bedrooms  int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int       `bson:"bathrooms" json:"bathrooms"`
	URL       string    `bson:"url,omitempty" json:"url,omitempty"`
	AgentCal  string    `bson:"agentCalendarId,omitempty" json:"agentCalendarId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ListingQuery filters curated inventory searches.
type ListingQuery struct {
	City        string  `json:"city,omitempty"`
	MaxPrice    float64 `json:"maxPrice,omitempty"`
	MinBedrooms int     `json:"minBedrooms,omitempty"`
	Limit       int     `json:"limit,omitempty"`
}
