package health

import (
	"context"
	"sync"
	"time"

	"github.com/kemana-app/kemana/internal/pkg/database"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/nsq"
)

// Status values for component health
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker verifies a single dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// ComponentHealth is the result of one dependency check
type ComponentHealth struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// Report is the aggregated health of all registered dependencies
type Report struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	CheckedAt  time.Time                  `json:"checked_at"`
}

// HealthService runs registered checkers and aggregates their results
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
	}
}

// AddChecker registers a dependency checker under a name
func (s *HealthService) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check runs all registered checkers with a bounded timeout each
func (s *HealthService) Check(ctx context.Context) Report {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, c := range s.checkers {
		checkers[name] = c
	}
	s.mu.RUnlock()

	report := Report{
		Status:     StatusHealthy,
		Components: make(map[string]ComponentHealth, len(checkers)),
		CheckedAt:  time.Now().UTC(),
	}

	for name, checker := range checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		start := time.Now()
		err := checker.Check(checkCtx)
		cancel()

		component := ComponentHealth{
			Status:    StatusHealthy,
			LatencyMS: time.Since(start).Milliseconds(),
		}
		if err != nil {
			component.Status = StatusUnhealthy
			component.Error = err.Error()
			report.Status = StatusUnhealthy

			s.logger.Warn("Health check failed",
				logger.String("component", name),
				logger.Err(err))
		}

		report.Components[name] = component
	}

	return report
}

// NewPostgresHealthChecker checks PostgreSQL connectivity
func NewPostgresHealthChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker checks Redis connectivity
func NewRedisHealthChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNSQHealthChecker checks NSQ daemon connectivity
func NewNSQHealthChecker(producer *nsq.Producer) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return producer.Ping()
	})
}
