package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *HealthService) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		report := svc.Check(c.Request().Context())
		if report.Status != StatusHealthy {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Check(c.Request().Context()))
	})
}
