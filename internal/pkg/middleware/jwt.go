package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/kemana-app/kemana/internal/pkg/jwt"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for passenger JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			if role, ok := (*claims)["role"]; ok {
				c.Set("user_role", role)
			}

			return next(c)
		}
	}
}
