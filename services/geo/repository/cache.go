package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/database"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/geo"
)

type geoRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewGeoRepository creates a new short-link cache repository
func NewGeoRepository(redisClient *database.RedisClient, cfg *models.Config) geo.GeoRepo {
	ttl := time.Duration(cfg.Geo.ResolveCacheTTL) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &geoRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetResolvedShortLink returns the cached terminal URL for a short link
func (r *geoRepo) GetResolvedShortLink(ctx context.Context, shortURL string) (string, error) {
	key := fmt.Sprintf(constants.KeyShortLinkResolved, shortURL)

	finalURL, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("short link not cached: %w", err)
	}

	return finalURL, nil
}

// SaveResolvedShortLink caches the terminal URL for a short link so repeat
// pastes skip the redirect chain
func (r *geoRepo) SaveResolvedShortLink(ctx context.Context, shortURL, finalURL string) error {
	key := fmt.Sprintf(constants.KeyShortLinkResolved, shortURL)

	if err := r.redisClient.Set(ctx, key, finalURL, r.ttl); err != nil {
		return fmt.Errorf("failed to cache resolved short link: %w", err)
	}

	return nil
}
