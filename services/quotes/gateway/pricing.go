package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kemana-app/kemana/internal/pkg/circuitbreaker"
	httpclient "github.com/kemana-app/kemana/internal/pkg/http"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/pkg/retry"
	"github.com/kemana-app/kemana/services/quotes"
)

// ErrNoAvailability indicates the backend has no offers for the class on
// this route. It is a routine per-class outcome, not a transport failure.
var ErrNoAvailability = errors.New("no availability for vehicle class")

// taxiInfoResponse is the pricing backend response envelope
type taxiInfoResponse struct {
	Currency string           `json:"currency"`
	Options  []taxiInfoOption `json:"options"`
}

type taxiInfoOption struct {
	ClassName   string  `json:"class_name"`
	ClassText   string  `json:"class_text"`
	Price       float64 `json:"price"`
	PriceText   string  `json:"price_text"`
	WaitingTime float64 `json:"waiting_time"`
}

// pricingGW queries the taxi pricing backend, one vehicle class per call
type pricingGW struct {
	cfg        *models.Config
	client     *httpclient.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	breakerCfg circuitbreaker.Config
}

// NewPricingGW creates a pricing gateway backed by the taxi info API
func NewPricingGW(cfg *models.Config, zapLogger *logger.ZapLogger) (quotes.PricingGW, error) {
	if cfg.Pricing.BaseURL == "" {
		return nil, errors.New("pricing base URL is not configured")
	}

	timeout := time.Duration(cfg.Pricing.TimeoutSeconds) * time.Second

	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = isRetryablePricingError

	breakerConfig := circuitbreaker.DefaultConfig("pricing")
	breakerConfig.IsFailure = isPricingFault

	return &pricingGW{
		cfg:        cfg,
		client:     httpclient.NewClient(cfg.Pricing.BaseURL, timeout),
		retrier:    retry.New(retryConfig, zapLogger),
		breakers:   circuitbreaker.NewManager(zapLogger),
		breakerCfg: breakerConfig,
	}, nil
}

// QueryClass fetches pricing for one vehicle class on the given route.
// Transient transport failures are retried; the circuit breaker is keyed
// per class so one unserviceable class never blocks the others.
func (g *pricingGW) QueryClass(ctx context.Context, origin, destination models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
	var classQuote *models.ClassQuote

	breaker := g.breakers.GetOrCreate("pricing:"+class.ID, g.breakerCfg)
	err := breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			result, err := g.fetchClass(ctx, origin, destination, class)
			if err != nil {
				return err
			}
			classQuote = result
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return classQuote, nil
}

// fetchClass performs a single taxi_info request
func (g *pricingGW) fetchClass(ctx context.Context, origin, destination models.Coordinate, class models.VehicleClass) (*models.ClassQuote, error) {
	reqURL, err := g.buildURL(origin, destination, class)
	if err != nil {
		return nil, fmt.Errorf("failed to build pricing URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("pricing backend returned status %d for class %s", resp.StatusCode, class.ID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing response: %w", err)
	}

	// An empty body means the class is not serviceable on this route
	if len(body) == 0 {
		return nil, ErrNoAvailability
	}

	var parsed taxiInfoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode pricing response: %w", err)
	}

	if len(parsed.Options) == 0 {
		return nil, ErrNoAvailability
	}

	classQuote := &models.ClassQuote{
		Currency: parsed.Currency,
		Options:  make([]models.RideOption, 0, len(parsed.Options)),
	}
	for _, option := range parsed.Options {
		rideOption := models.RideOption{
			VehicleClassID: option.ClassName,
			DisplayName:    option.ClassText,
			Price:          option.Price,
			DisplayPrice:   option.PriceText,
			WaitingTimeSec: option.WaitingTime,
		}
		// Backfill identity from the requested class when the backend
		// omits it, so the option still carries a usable dedup key.
		if rideOption.VehicleClassID == "" {
			rideOption.VehicleClassID = class.ID
		}
		if rideOption.DisplayName == "" {
			rideOption.DisplayName = class.DisplayName
		}
		classQuote.Options = append(classQuote.Options, rideOption)
	}

	return classQuote, nil
}

// buildURL assembles the taxi_info request URL. The rll parameter carries
// both route endpoints, longitude first, joined by a tilde.
func (g *pricingGW) buildURL(origin, destination models.Coordinate, class models.VehicleClass) (string, error) {
	base, err := url.Parse(g.client.BaseURL)
	if err != nil {
		return "", err
	}
	base.Path = base.Path + "/taxi_info"

	params := url.Values{}
	params.Set("clid", g.cfg.Pricing.ClientID)
	params.Set("apikey", g.cfg.Pricing.APIKey)
	params.Set("rll", formatRoutePoint(origin)+"~"+formatRoutePoint(destination))
	params.Set("lang", g.cfg.Pricing.Language)
	params.Set("currency", g.cfg.Pricing.Currency)
	params.Set("class", class.ID)
	base.RawQuery = params.Encode()

	return base.String(), nil
}

// formatRoutePoint renders a coordinate as "lon,lat" for the rll parameter
func formatRoutePoint(c models.Coordinate) string {
	return strconv.FormatFloat(c.Longitude, 'f', 6, 64) + "," +
		strconv.FormatFloat(c.Latitude, 'f', 6, 64)
}

// isPricingFault decides what counts against the per-class circuit breaker.
// An empty offer list is a routine business outcome and a cancelled caller
// is not the backend's fault; neither may open the breaker and lock a class
// out across routes.
func isPricingFault(err error) bool {
	if err == nil || errors.Is(err, ErrNoAvailability) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// isRetryablePricingError keeps retries to transport-level problems.
// Business outcomes like an empty offer list never warrant a retry.
func isRetryablePricingError(err error) bool {
	if errors.Is(err, ErrNoAvailability) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
