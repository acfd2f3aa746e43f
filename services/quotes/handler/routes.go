package handler

import (
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/quotes"
	httpHandler "github.com/kemana-app/kemana/services/quotes/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the quotes service
type Handler struct {
	quoteHTTP *httpHandler.QuoteHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(quoteUC quotes.QuoteUC, cfg *models.Config) *Handler {
	return &Handler{
		quoteHTTP: httpHandler.NewQuoteHandler(quoteUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The rate limiter runs after
// auth so authenticated callers are counted by user id; internal routes
// stay unlimited.
func (h *Handler) RegisterRoutes(e *echo.Echo, passengerAuth, serviceAuth, rateLimit echo.MiddlewareFunc) {
	v1 := e.Group("/v1", passengerAuth, rateLimit)

	quotesGroup := v1.Group("/quotes")
	quotesGroup.POST("", h.quoteHTTP.FetchQuote)
	quotesGroup.POST("/latest", h.quoteHTTP.LatestRouteQuote)
	quotesGroup.GET("/state", h.quoteHTTP.State)

	internal := e.Group("/internal", serviceAuth)
	internal.GET("/quotes/:id", h.quoteHTTP.GetQuote)
}
