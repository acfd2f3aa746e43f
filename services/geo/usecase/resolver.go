package usecase

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/geo"
)

// schemePattern detects whether the input already carries a URL scheme
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// geoUC implements the geo.GeoUC interface
type geoUC struct {
	cfg        *models.Config
	redirectGW geo.RedirectGW
	eventsGW   geo.GeoEventsGW
	repo       geo.GeoRepo
	shortHosts []string
}

// NewGeoUC creates a new location resolution use case
func NewGeoUC(cfg *models.Config, redirectGW geo.RedirectGW, eventsGW geo.GeoEventsGW, repo geo.GeoRepo) (geo.GeoUC, error) {
	var hosts []string
	for _, h := range strings.Split(cfg.Geo.ShortLinkHosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, strings.ToLower(h))
		}
	}

	return &geoUC{
		cfg:        cfg,
		redirectGW: redirectGW,
		eventsGW:   eventsGW,
		repo:       repo,
		shortHosts: hosts,
	}, nil
}

// Resolve converts raw pasted text into a coordinate via an ordered fallback
// chain, short-circuiting on the first heuristic that succeeds. It shares no
// mutable state, so concurrent resolutions are independent.
func (uc *geoUC) Resolve(ctx context.Context, rawText string) (models.ResolvedLocation, bool) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return models.ResolvedLocation{}, false
	}

	// 1. Users pasting bare coordinates.
	if coord, ok := ParseCoordinateText(text); ok {
		return uc.resolved(ctx, models.ResolvedLocation{Coordinate: coord, Source: models.HeuristicPlainText})
	}

	// 2. Normalize to a URL and percent-decode. A failed decode keeps the
	// scheme-normalized string rather than aborting.
	normalized := text
	if !schemePattern.MatchString(normalized) {
		normalized = "https://" + normalized
	}
	decoded := normalized
	if d, err := url.QueryUnescape(normalized); err == nil {
		decoded = d
	}

	// 3. Short links must be expanded before extraction.
	if uc.isShortLink(normalized) {
		if finalURL, err := uc.expandShortLink(ctx, normalized); err == nil {
			finalDecoded := finalURL
			if d, derr := url.QueryUnescape(finalURL); derr == nil {
				finalDecoded = d
			}
			if coord, source, ok := ExtractFromURL(finalDecoded); ok {
				return uc.resolved(ctx, models.ResolvedLocation{Coordinate: coord, Source: source})
			}
		} else {
			logger.Warn("Short link expansion failed",
				logger.String("url", normalized),
				logger.Err(err))
		}
	}

	// 4. Structural extraction over the normalized string.
	if coord, source, ok := ExtractFromURL(decoded); ok {
		return uc.resolved(ctx, models.ResolvedLocation{Coordinate: coord, Source: source})
	}

	// 5. Scheme-prepending or decoding may have mangled digits; scan the
	// original input once more.
	if coord, ok := ParseCoordinateText(rawText); ok {
		return uc.resolved(ctx, models.ResolvedLocation{Coordinate: coord, Source: models.HeuristicRawFallback})
	}

	return models.ResolvedLocation{}, false
}

// resolved announces the outcome, best effort, and hands it back. A failed
// publish never turns a successful resolution into a miss.
func (uc *geoUC) resolved(ctx context.Context, loc models.ResolvedLocation) (models.ResolvedLocation, bool) {
	event := models.LocationResolvedEvent{
		Coordinate: loc.Coordinate,
		Source:     loc.Source,
		ResolvedAt: models.Now(),
	}
	if err := uc.eventsGW.PublishLocationResolved(ctx, event); err != nil {
		logger.Debug("Failed to publish location resolved event", logger.Err(err))
	}
	return loc, true
}

// isShortLink reports whether the URL host matches a configured shortener
// domain
func (uc *geoUC) isShortLink(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	for _, shortHost := range uc.shortHosts {
		if host == shortHost || strings.HasSuffix(host, "."+shortHost) {
			return true
		}
	}
	return false
}

// expandShortLink resolves a short link to its terminal URL, consulting the
// cache first. Cache failures are logged and ignored; the redirect chain is
// the source of truth.
func (uc *geoUC) expandShortLink(ctx context.Context, shortURL string) (string, error) {
	if cached, err := uc.repo.GetResolvedShortLink(ctx, shortURL); err == nil && cached != "" {
		return cached, nil
	}

	finalURL, err := uc.redirectGW.ResolveRedirects(ctx, shortURL, uc.cfg.Geo.MaxRedirectHops)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SaveResolvedShortLink(ctx, shortURL, finalURL); err != nil {
		logger.Debug("Failed to cache resolved short link",
			logger.String("url", shortURL),
			logger.Err(err))
	}

	return finalURL, nil
}
