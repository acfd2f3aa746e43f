package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	httpclient "github.com/kemana-app/kemana/internal/pkg/http"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/services/geo"
)

// Errors
var (
	ErrRedirectLimit   = errors.New("redirect hop limit reached")
	ErrMissingLocation = errors.New("redirect response missing Location header")
)

// redirectResolver implements the geo.RedirectGW interface by following
// redirects one hop at a time with automatic following disabled
type redirectResolver struct {
	client *nethttp.Client
}

// NewRedirectResolver creates a new redirect resolver gateway. The timeout
// bounds each individual hop; this sits on an interactive flow and must not
// hang the caller.
func NewRedirectResolver(timeout time.Duration) geo.RedirectGW {
	return &redirectResolver{
		client: httpclient.NewNoRedirectClient(timeout),
	}
}

// ResolveRedirects follows the redirect chain starting at rawURL and returns
// the terminal address. Any non-redirect response ends the chain
// successfully regardless of its status code; reachability of the final URL
// is not this gateway's concern.
func (r *redirectResolver) ResolveRedirects(ctx context.Context, rawURL string, maxHops int) (string, error) {
	current, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	hops := 0
	for {
		location, redirected, err := r.fetchHop(ctx, current.String())
		if err != nil {
			return "", err
		}
		if !redirected {
			return current.String(), nil
		}

		hops++
		if hops > maxHops {
			return "", fmt.Errorf("%w after %d hops", ErrRedirectLimit, maxHops)
		}

		// Location may be relative to the current URL.
		next, err := url.Parse(location)
		if err != nil {
			return "", fmt.Errorf("malformed Location header %q: %w", location, err)
		}
		current = current.ResolveReference(next)

		logger.Debug("Following redirect",
			logger.Int("hop", hops),
			logger.String("next", current.String()))
	}
}

// fetchHop performs a single request and reports whether the response was a
// redirect, along with its Location header
func (r *redirectResolver) fetchHop(ctx context.Context, currentURL string) (string, bool, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, currentURL, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}

	// Some shortener services reject non-browser agents.
	req.Header.Set("User-Agent", httpclient.BrowserUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("redirect hop failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", false, nil
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", false, ErrMissingLocation
	}

	return location, true, nil
}
