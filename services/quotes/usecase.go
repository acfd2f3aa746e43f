package quotes

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kemana-app/kemana/services/quotes QuoteUC

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/models"
)

// Errors
var (
	// ErrNoOptions is the business outcome when every vehicle class failed
	// or returned no availability. It is not a system fault.
	ErrNoOptions = errors.New("no ride options found for this route")

	// ErrQuoteNotFound is returned when a persisted quote does not exist
	ErrQuoteNotFound = errors.New("quote not found")
)

// QuoteUC defines the interface for ride option aggregation
type QuoteUC interface {
	// FetchQuote fans out one pricing query per supported vehicle class,
	// waits for every class to settle, and returns the merged, deduplicated,
	// price-sorted quote. ErrNoOptions signals the empty business outcome.
	// State and supersession are scoped to callerID: a new fetch cancels
	// and supersedes only that caller's prior fetch, never another user's.
	FetchQuote(ctx context.Context, callerID string, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error)

	// LastState returns the caller's most recently published aggregator
	// state. The state always reflects that caller's most recently
	// initiated fetch, never an older one completing late.
	LastState(callerID string) models.QuoteState

	// LatestRouteQuote returns the cached quote for a route, if any.
	LatestRouteQuote(ctx context.Context, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error)

	// GetQuote loads a persisted quote by id.
	GetQuote(ctx context.Context, id uuid.UUID) (*models.AggregatedRideQuote, error)
}
