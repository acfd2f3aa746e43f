package middleware

import (
	"crypto/subtle"

	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service endpoints
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates middleware from the configured key set
func NewAPIKeyMiddleware(config *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			constants.ConsumerBookingService: config.BookingService,
			constants.ConsumerAdminConsole:   config.AdminConsole,
		},
	}
}

// Handler returns an echo middleware that accepts requests carrying the API
// key of any of the allowed consumers
func (m *APIKeyMiddleware) Handler(allowedConsumers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			valid := false
			for _, consumer := range allowedConsumers {
				expected := m.keys[consumer]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					valid = true
					break
				}
			}

			if !valid {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
