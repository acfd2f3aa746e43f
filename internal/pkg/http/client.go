package http

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second

	// BrowserUserAgent is sent on redirect-following requests. Some link
	// shortener services reject non-browser agents outright.
	BrowserUserAgent = "Mozilla/5.0 (Linux; Android 13) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
)

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewNoRedirectClient creates an HTTP client that does not follow redirects
// automatically, so each hop can be inspected by the caller. Timeouts are
// kept short since this runs on an interactive flow.
func NewNoRedirectClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
