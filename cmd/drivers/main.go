package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/config"
	"github.com/piresc/flashfood/internal/pkg/database"
	"github.com/piresc/flashfood/internal/pkg/health"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/metrics"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/server"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/drivers/handler"
	"github.com/piresc/flashfood/services/drivers/repository"
	"github.com/piresc/flashfood/services/drivers/usecase"
)

func main() {
	appName := "drivers-service"
	configPath := "config/drivers.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLoggerFromConfig(configs, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	collector, err := metrics.NewCollector(nil, appName)
	if err != nil {
		logger.Fatal("Failed to register metrics", logger.Err(err))
	}

	// Initialize repository
	driverRepo := repository.NewDriverRepository(redisClient)

	// Initialize usecase
	driverUC := usecase.NewDriverUC(configs, driverRepo, nil, collector)

	// Initialize handlers
	driverHandler := handler.NewHandler(driverUC, configs, redisClient.GetClient())

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	// Panic recovery first so it wraps everything else
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(collector.Middleware())

	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.CheckerFunc(func(ctx context.Context) error {
		return redisClient.Ping(ctx)
	}))
	health.RegisterHealthEndpoints(e, appName, healthService)
	collector.RegisterRoutes(e)

	// Register service routes
	driverHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server)
	srv.OnShutdown(func(context.Context) error {
		logger.Info("Closing Redis connection...")
		return redisClient.Close()
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exiting gracefully")
}
