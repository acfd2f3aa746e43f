package models

import (
	"time"

	"github.com/google/uuid"
)

// RideOption is one priced offer for a vehicle class on a route
type RideOption struct {
	VehicleClassID string  `json:"vehicle_class_id" db:"vehicle_class_id"`
	DisplayName    string  `json:"display_name" db:"display_name"`
	Price          float64 `json:"price" db:"price"`
	DisplayPrice   string  `json:"display_price" db:"display_price"`
	WaitingTimeSec float64 `json:"waiting_time_sec,omitempty" db:"waiting_time_sec"`
}

// DedupKey is the identity used when merging options across class queries.
// Two options with the same class id and display price string are treated as
// the same offer. This is a deliberately coarse identity: it collapses
// duplicate responses from overlapping class queries, at the cost of merging
// distinct options that coincidentally share a price.
func (o RideOption) DedupKey() string {
	return o.VehicleClassID + "|" + o.DisplayPrice
}

// ClassQuote is the outcome of one successful per-class pricing query
type ClassQuote struct {
	Currency string       `json:"currency"`
	Options  []RideOption `json:"options"`
}

// AggregatedRideQuote is the merged, deduplicated, price-sorted set of ride
// options across all vehicle classes for one origin/destination pair
type AggregatedRideQuote struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Origin      Coordinate   `json:"origin"`
	Destination Coordinate   `json:"destination"`
	Currency    string       `json:"currency" db:"currency"`
	Options     []RideOption `json:"options"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

// QuotePhase enumerates the aggregator state machine phases
type QuotePhase string

const (
	QuotePhaseIdle    QuotePhase = "idle"
	QuotePhaseLoading QuotePhase = "loading"
	QuotePhaseSuccess QuotePhase = "success"
	QuotePhaseEmpty   QuotePhase = "empty"
)

// QuoteState is the published aggregator state. Loading and the terminal
// phase are never true at the same time; a new fetch resets the state to
// loading before any terminal value is visible.
type QuoteState struct {
	Phase   QuotePhase           `json:"phase"`
	Loading bool                 `json:"loading"`
	Quote   *AggregatedRideQuote `json:"quote,omitempty"`
	Message string               `json:"message,omitempty"`
}

// QuoteRequest is the payload for the quote aggregation endpoint
type QuoteRequest struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
}

// QuoteAggregatedEvent is published after a successful aggregation
type QuoteAggregatedEvent struct {
	QuoteID     uuid.UUID  `json:"quote_id"`
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Currency    string     `json:"currency"`
	OptionCount int        `json:"option_count"`
	CheapestID  string     `json:"cheapest_class_id,omitempty"`
	DistanceKm  float64    `json:"distance_km"`
	CreatedAt   time.Time  `json:"created_at"`
}
