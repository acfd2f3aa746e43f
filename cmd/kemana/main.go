package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kemana-app/kemana/internal/pkg/config"
	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/database"
	"github.com/kemana-app/kemana/internal/pkg/health"
	"github.com/kemana-app/kemana/internal/pkg/logger"
	"github.com/kemana-app/kemana/internal/pkg/middleware"
	"github.com/kemana-app/kemana/internal/pkg/nsq"
	geoGateway "github.com/kemana-app/kemana/services/geo/gateway"
	geoHandler "github.com/kemana-app/kemana/services/geo/handler"
	geoRepository "github.com/kemana-app/kemana/services/geo/repository"
	geoUsecase "github.com/kemana-app/kemana/services/geo/usecase"
	quotesGateway "github.com/kemana-app/kemana/services/quotes/gateway"
	quotesHandler "github.com/kemana-app/kemana/services/quotes/handler"
	quotesRepository "github.com/kemana-app/kemana/services/quotes/repository"
	quotesUsecase "github.com/kemana-app/kemana/services/quotes/usecase"
)

func main() {
	appName := "kemana-booking"
	configPath := "config"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	nsqProducer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Geo service: repository, gateways, usecase
	geoRepo := geoRepository.NewGeoRepository(redisClient, configs)
	redirectGW := geoGateway.NewRedirectResolver(time.Duration(configs.Geo.TimeoutSeconds) * time.Second)
	geoEventsGW := geoGateway.NewGeoEventsGW(nsqProducer)

	geoUC, err := geoUsecase.NewGeoUC(configs, redirectGW, geoEventsGW, geoRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize geo use case", logger.Err(err))
	}

	// Quotes service: repository, gateways, usecase
	quoteRepo := quotesRepository.NewQuoteRepository(postgresClient, redisClient)

	pricingGW, err := quotesGateway.NewPricingGW(configs, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize pricing gateway", logger.Err(err))
	}
	eventsGW := quotesGateway.NewEventsGW(nsqProducer)

	quoteUC, err := quotesUsecase.NewQuoteUC(configs, pricingGW, eventsGW, quoteRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize quote use case", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	passengerAuth := middleware.JWTAuthMiddleware(configs.JWT)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)
	serviceAuth := apiKeyMiddleware.Handler(constants.ConsumerBookingService, constants.ConsumerAdminConsole)
	rateLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       configs.RateLimit.Requests,
		Period:      time.Duration(configs.RateLimit.PeriodSeconds) * time.Second,
	})

	// Register service routes
	geoHandler.NewHandler(geoUC, configs).RegisterRoutes(e, passengerAuth, rateLimit)
	quotesHandler.NewHandler(quoteUC, configs).RegisterRoutes(e, passengerAuth, serviceAuth, rateLimit)

	// Health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(nsqProducer))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exited")
}
