package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/database"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/utils"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Limit       int           // Maximum number of requests per identifier
	Period      time.Duration // Window the limit applies to
}

// RateLimiterMiddleware limits requests per route and caller using Redis.
// Authenticated callers are counted by user id, everything else by remote
// address. A limiter outage never blocks traffic.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Client.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable, letting request through",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := config.RedisClient.Client.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.Warn("Failed to set rate limit window",
						logger.String("key", key),
						logger.Err(err))
				}
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				if ttl, err := config.RedisClient.Client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
