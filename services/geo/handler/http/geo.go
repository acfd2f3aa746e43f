package http

import (
	"net/http"

	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/kemana-app/kemana/services/geo"
	"github.com/labstack/echo/v4"
)

// GeoHandler handles HTTP requests for location resolution
type GeoHandler struct {
	geoUC geo.GeoUC
}

// NewGeoHandler creates a new geo HTTP handler
func NewGeoHandler(geoUC geo.GeoUC) *GeoHandler {
	return &GeoHandler{
		geoUC: geoUC,
	}
}

// ResolveLocation converts pasted free-form text into a coordinate
func (h *GeoHandler) ResolveLocation(c echo.Context) error {
	var req models.ResolveRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind resolve request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.Text == "" {
		return utils.BadRequestResponse(c, "text is required")
	}

	resolved, found := h.geoUC.Resolve(c.Request().Context(), req.Text)
	if !found {
		// Not a fault: the input simply did not contain anything parseable.
		return utils.UnprocessableResponse(c, "couldn't recognize a location in that text")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", resolved)
}
