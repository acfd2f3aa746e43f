package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/database"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/kemana-app/kemana/services/quotes"
)

// routeQuoteTTL is how long the latest quote for a route stays cached.
// Prices drift with traffic, so keep this short.
const routeQuoteTTL = 2 * time.Minute

type quoteRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewQuoteRepository creates a new quote persistence repository
func NewQuoteRepository(postgresClient *database.PostgresClient, redisClient *database.RedisClient) quotes.QuoteRepo {
	return &quoteRepo{
		db:          postgresClient.GetDB(),
		redisClient: redisClient,
	}
}

// quoteRow maps the quotes table
type quoteRow struct {
	ID             uuid.UUID `db:"id"`
	OriginLat      float64   `db:"origin_lat"`
	OriginLng      float64   `db:"origin_lng"`
	DestinationLat float64   `db:"destination_lat"`
	DestinationLng float64   `db:"destination_lng"`
	Currency       string    `db:"currency"`
	CreatedAt      time.Time `db:"created_at"`
}

// SaveQuote persists an aggregated quote and its options in one transaction
func (r *quoteRepo) SaveQuote(ctx context.Context, quote *models.AggregatedRideQuote) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	quoteQuery := `
		INSERT INTO quotes (id, origin_lat, origin_lng, destination_lat, destination_lng, currency, created_at)
		VALUES (:id, :origin_lat, :origin_lng, :destination_lat, :destination_lng, :currency, :created_at)`

	row := quoteRow{
		ID:             quote.ID,
		OriginLat:      quote.Origin.Latitude,
		OriginLng:      quote.Origin.Longitude,
		DestinationLat: quote.Destination.Latitude,
		DestinationLng: quote.Destination.Longitude,
		Currency:       quote.Currency,
		CreatedAt:      quote.CreatedAt,
	}
	if _, err := tx.NamedExecContext(ctx, quoteQuery, row); err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	optionQuery := `
		INSERT INTO quote_options (quote_id, position, vehicle_class_id, display_name, price, display_price, waiting_time_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i, option := range quote.Options {
		if _, err := tx.ExecContext(ctx, optionQuery,
			quote.ID, i,
			option.VehicleClassID, option.DisplayName,
			option.Price, option.DisplayPrice, option.WaitingTimeSec,
		); err != nil {
			return fmt.Errorf("failed to insert quote option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quote transaction: %w", err)
	}

	return nil
}

// GetQuote loads a persisted quote with its options, ordered by price rank
func (r *quoteRepo) GetQuote(ctx context.Context, id uuid.UUID) (*models.AggregatedRideQuote, error) {
	var row quoteRow
	quoteQuery := `
		SELECT id, origin_lat, origin_lng, destination_lat, destination_lng, currency, created_at
		FROM quotes
		WHERE id = $1`

	if err := r.db.GetContext(ctx, &row, quoteQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, quotes.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	var options []models.RideOption
	optionsQuery := `
		SELECT vehicle_class_id, display_name, price, display_price, waiting_time_sec
		FROM quote_options
		WHERE quote_id = $1
		ORDER BY position ASC`

	if err := r.db.SelectContext(ctx, &options, optionsQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get quote options: %w", err)
	}

	return &models.AggregatedRideQuote{
		ID:          row.ID,
		Origin:      models.Coordinate{Latitude: row.OriginLat, Longitude: row.OriginLng},
		Destination: models.Coordinate{Latitude: row.DestinationLat, Longitude: row.DestinationLng},
		Currency:    row.Currency,
		Options:     options,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// CacheRouteQuote stores the latest quote for a route. The key is built
// from geohashed endpoints so nearby pickup points share the entry.
func (r *quoteRepo) CacheRouteQuote(ctx context.Context, quote *models.AggregatedRideQuote) error {
	originHash, destHash := utils.RouteKey(quote.Origin, quote.Destination)
	key := fmt.Sprintf(constants.KeyRouteQuote, originHash, destHash)

	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal route quote: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, payload, routeQuoteTTL); err != nil {
		return fmt.Errorf("failed to cache route quote: %w", err)
	}

	return nil
}

// GetCachedRouteQuote returns the cached quote for a route, if any
func (r *quoteRepo) GetCachedRouteQuote(ctx context.Context, origin, destination models.Coordinate) (*models.AggregatedRideQuote, error) {
	originHash, destHash := utils.RouteKey(origin, destination)
	key := fmt.Sprintf(constants.KeyRouteQuote, originHash, destHash)

	payload, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("route quote not cached: %w", err)
	}

	var quote models.AggregatedRideQuote
	if err := json.Unmarshal([]byte(payload), &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached route quote: %w", err)
	}

	return &quote, nil
}
