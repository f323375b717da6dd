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
	"github.com/piresc/flashfood/internal/pkg/nsq"
	"github.com/piresc/flashfood/internal/pkg/server"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/orders/feed"
	"github.com/piresc/flashfood/services/orders/gateway"
	"github.com/piresc/flashfood/services/orders/handler"
	"github.com/piresc/flashfood/services/orders/repository"
	"github.com/piresc/flashfood/services/orders/usecase"
)

func main() {
	appName := "orders-service"
	configPath := "config/orders.env"
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	collector, err := metrics.NewCollector(nil, appName)
	if err != nil {
		logger.Fatal("Failed to register metrics", logger.Err(err))
	}

	hub := feed.NewHub(feed.DefaultBufferSize, collector)

	// Initialize repository
	orderRepo := repository.NewOrderRepository(postgresClient.GetDB())

	// Initialize gateway
	orderGW := gateway.NewOrderGW(producer, configs.Services.DriversServiceURL, &configs.APIKey)

	// Initialize usecase
	orderUC := usecase.NewOrderUC(configs, orderRepo, orderGW, hub, nil, collector)

	// Initialize handlers
	orderHandler := handler.NewHandler(orderUC, hub, configs)

	// Initialize NSQ consumers
	if err := orderHandler.InitNSQConsumers(); err != nil {
		logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

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
	healthService.AddChecker("postgres", health.CheckerFunc(func(ctx context.Context) error {
		return postgresClient.GetDB().PingContext(ctx)
	}))
	healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
		return producer.Ping()
	}))
	health.RegisterHealthEndpoints(e, appName, healthService)
	collector.RegisterRoutes(e)

	// Register service routes
	orderHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server)
	// Cleanups run in reverse: consumers and feeds stop before the stores close
	srv.OnShutdown(func(context.Context) error {
		logger.Info("Closing PostgreSQL connection...")
		return postgresClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		logger.Info("Stopping NSQ producer...")
		producer.Stop()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		logger.Info("Stopping NSQ consumers and live feeds...")
		orderHandler.StopNSQConsumers()
		hub.Close()
		return nil
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exiting gracefully")
}
