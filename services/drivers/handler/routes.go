package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/drivers"
	httpHandler "github.com/piresc/flashfood/services/drivers/handler/http"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *httpHandler.DriversHandler
	cfg         *models.Config
	redis       *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		driversHTTP: httpHandler.NewDriversHandler(driverUC),
		cfg:         cfg,
		redis:       redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	limit := middleware.UserRateLimiter(h.cfg.RateLimit.Requests,
		time.Duration(h.cfg.RateLimit.PeriodSeconds)*time.Second, h.redis)

	driverGroup := e.Group("/drivers", auth)
	driverGroup.GET("/nearby", h.driversHTTP.SearchNearby, limit)
	driverGroup.GET("/within", h.driversHTTP.FindWithin)
	driverGroup.GET("/:id/location", h.driversHTTP.GetLocation)
	driverGroup.PUT("/:id/location", h.driversHTTP.UpdateLocation, middleware.RequireRole(jwtpkg.RoleDriver))
	driverGroup.DELETE("/:id/location", h.driversHTTP.GoOffline, middleware.RequireRole(jwtpkg.RoleDriver))

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.OrdersService))
	internal.GET("/drivers/within", h.driversHTTP.FindWithin)
	internal.DELETE("/drivers/:id/location", h.driversHTTP.RemoveDriver)
}
