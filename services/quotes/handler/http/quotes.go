package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/kemana-app/kemana/services/quotes"
	"github.com/labstack/echo/v4"
)

// QuoteHandler handles HTTP requests for ride quote aggregation
type QuoteHandler struct {
	quoteUC quotes.QuoteUC
}

// NewQuoteHandler creates a new quote HTTP handler
func NewQuoteHandler(quoteUC quotes.QuoteUC) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: quoteUC,
	}
}

// FetchQuote aggregates ride options across all vehicle classes for a route
func (h *QuoteHandler) FetchQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind quote request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if !validCoordinate(req.Origin) || !validCoordinate(req.Destination) {
		return utils.BadRequestResponse(c, "origin and destination coordinates are required")
	}

	quote, err := h.quoteUC.FetchQuote(c.Request().Context(), callerRef(c), req.Origin, req.Destination)
	if err != nil {
		if errors.Is(err, quotes.ErrNoOptions) {
			return utils.NotFoundResponse(c, quotes.ErrNoOptions.Error())
		}
		logger.Error("Failed to aggregate ride quote", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to fetch ride options")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride options fetched", quote)
}

// LatestRouteQuote returns the most recent cached quote for a route
func (h *QuoteHandler) LatestRouteQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if !validCoordinate(req.Origin) || !validCoordinate(req.Destination) {
		return utils.BadRequestResponse(c, "origin and destination coordinates are required")
	}

	quote, err := h.quoteUC.LatestRouteQuote(c.Request().Context(), req.Origin, req.Destination)
	if err != nil {
		return utils.NotFoundResponse(c, "no recent quote for this route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest route quote", quote)
}

// State exposes the current aggregator state for the requesting client
func (h *QuoteHandler) State(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Aggregator state", h.quoteUC.LastState(callerRef(c)))
}

// GetQuote loads a persisted quote by id, for internal consumers
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid quote id")
	}

	quote, err := h.quoteUC.GetQuote(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, quotes.ErrQuoteNotFound) {
			return utils.NotFoundResponse(c, quotes.ErrQuoteNotFound.Error())
		}
		logger.Error("Failed to load quote",
			logger.String("quote_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to load quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote found", quote)
}

// callerRef identifies the requesting user so aggregator state is scoped
// per caller, never shared across users. The JWT middleware has already set
// user_id; the remote address covers anything reaching here without one.
func callerRef(c echo.Context) string {
	if id, ok := c.Get("user_id").(uuid.UUID); ok {
		return id.String()
	}
	return c.RealIP()
}

// validCoordinate rejects the zero value and out-of-range coordinates.
// The zero value (0,0) is treated as missing input; it is open ocean.
func validCoordinate(c models.Coordinate) bool {
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
