package quotes

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/kemana-app/kemana/services/quotes PricingGW,EventsGW

import (
	"context"

	"github.com/kemana-app/kemana/internal/pkg/models"
)

// PricingGW defines the interface for per-class pricing backend queries
type PricingGW interface {
	// QueryClass issues one pricing request for one vehicle class on one
	// route. An HTTP error status, a transport failure, and an empty body
	// all surface as errors; they are routine and the caller drops them
	// without aborting sibling queries.
	QueryClass(ctx context.Context, origin, destination models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error)
}

// EventsGW defines the interface for publishing aggregation events
type EventsGW interface {
	PublishQuoteAggregated(ctx context.Context, event models.QuoteAggregatedEvent) error
}
