package geo

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kemana-app/kemana/services/geo GeoUC

import (
	"context"

	"github.com/kemana-app/kemana/internal/pkg/models"
)

// GeoUC defines the interface for location reference resolution
type GeoUC interface {
	// Resolve converts free-form pasted text (bare coordinates, map links,
	// shortened URLs) into a coordinate. The boolean result reports whether
	// anything parseable was found; resolution never fails with an error.
	Resolve(ctx context.Context, rawText string) (models.ResolvedLocation, bool)
}
