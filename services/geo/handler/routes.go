package handler

import (
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/geo"
	httpHandler "github.com/kemana-app/kemana/services/geo/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the geo service
type Handler struct {
	geoHTTP *httpHandler.GeoHandler
	cfg     *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(geoUC geo.GeoUC, cfg *models.Config) *Handler {
	return &Handler{
		geoHTTP: httpHandler.NewGeoHandler(geoUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The rate limiter runs after
// auth so authenticated callers are counted by user id.
func (h *Handler) RegisterRoutes(e *echo.Echo, passengerAuth, rateLimit echo.MiddlewareFunc) {
	v1 := e.Group("/v1", passengerAuth, rateLimit)

	locations := v1.Group("/locations")
	locations.POST("/resolve", h.geoHTTP.ResolveLocation)
}
