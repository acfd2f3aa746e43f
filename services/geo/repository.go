package geo

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kemana-app/kemana/services/geo GeoRepo

import (
	"context"
)

// GeoRepo defines the interface for the short-link resolution cache
type GeoRepo interface {
	// GetResolvedShortLink returns the cached terminal URL for a short link,
	// or an error on cache miss.
	GetResolvedShortLink(ctx context.Context, shortURL string) (string, error)

	// SaveResolvedShortLink caches the terminal URL for a short link.
	SaveResolvedShortLink(ctx context.Context, shortURL, finalURL string) error
}
