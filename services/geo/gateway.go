package geo

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kemana-app/kemana/services/geo RedirectGW,GeoEventsGW

import (
	"context"

	"github.com/kemana-app/kemana/internal/pkg/models"
)

// RedirectGW defines the interface for resolving shortened URLs to their
// terminal address
type RedirectGW interface {
	// ResolveRedirects follows at most maxHops HTTP redirects starting at
	// rawURL and returns the final location. A non-redirect response of any
	// status terminates the chain successfully.
	ResolveRedirects(ctx context.Context, rawURL string, maxHops int) (string, error)
}

// GeoEventsGW defines the interface for publishing location lifecycle events
type GeoEventsGW interface {
	// PublishLocationResolved announces a successful resolution. Best
	// effort; resolution outcomes never depend on it.
	PublishLocationResolved(ctx context.Context, event models.LocationResolvedEvent) error
}
