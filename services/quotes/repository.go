package quotes

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kemana-app/kemana/services/quotes QuoteRepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/models"
)

// QuoteRepo defines the interface for quote persistence and caching
type QuoteRepo interface {
	// SaveQuote persists an aggregated quote and its options.
	SaveQuote(ctx context.Context, quote *models.AggregatedRideQuote) error

	// GetQuote loads a persisted quote with its options.
	GetQuote(ctx context.Context, id uuid.UUID) (*models.AggregatedRideQuote, error)

	// CacheRouteQuote stores the latest quote for a route in the cache.
	CacheRouteQuote(ctx context.Context, quote *models.AggregatedRideQuote) error

	// GetCachedRouteQuote returns the cached quote for a route, or an error
	// on cache miss.
	GetCachedRouteQuote(ctx context.Context, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error)
}
