package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and converts the panic into a 500 response
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("stack", string(debug.Stack())))

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
