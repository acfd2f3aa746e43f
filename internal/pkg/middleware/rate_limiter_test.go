package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemana-app/kemana/internal/pkg/database"
)

func rateLimitTestHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newRateLimiterTest(t *testing.T, limit int) (echo.MiddlewareFunc, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: &database.RedisClient{Client: client},
		Limit:       limit,
		Period:      time.Minute,
	}), mr
}

func rateLimitRequest(limiter echo.MiddlewareFunc, userID uuid.UUID) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/quotes")
	c.Set("user_id", userID)

	_ = limiter(rateLimitTestHandler)(c)
	return rec
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	limiter, _ := newRateLimiterTest(t, 3)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		rec := rateLimitRequest(limiter, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	limiter, _ := newRateLimiterTest(t, 2)
	userID := uuid.New()

	rateLimitRequest(limiter, userID)
	rateLimitRequest(limiter, userID)
	rec := rateLimitRequest(limiter, userID)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_CountsCallersSeparately(t *testing.T) {
	limiter, _ := newRateLimiterTest(t, 1)

	first := rateLimitRequest(limiter, uuid.New())
	second := rateLimitRequest(limiter, uuid.New())

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimiter_OutageLetsRequestThrough(t *testing.T) {
	limiter, mr := newRateLimiterTest(t, 1)
	mr.Close()

	rec := rateLimitRequest(limiter, uuid.New())

	assert.Equal(t, http.StatusOK, rec.Code)
}
