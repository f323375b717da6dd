package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
	httpHandler "github.com/piresc/flashfood/services/cart/handler/http"
)

// Handler combines all handlers for the cart service
type Handler struct {
	cartHTTP *httpHandler.CartHandler
	cfg      *models.Config
	redis    *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(cartUC cart.CartUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		cartHTTP: httpHandler.NewCartHandler(cartUC),
		cfg:      cfg,
		redis:    redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	limit := middleware.UserRateLimiter(h.cfg.RateLimit.Requests,
		time.Duration(h.cfg.RateLimit.PeriodSeconds)*time.Second, h.redis)

	cartGroup := e.Group("/cart",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRole(jwtpkg.RoleCustomer))

	cartGroup.GET("", h.cartHTTP.GetCart)
	cartGroup.GET("/grouped", h.cartHTTP.GetGroupedCart)
	cartGroup.POST("/items", h.cartHTTP.AddItem)
	cartGroup.DELETE("/items/:lineId", h.cartHTTP.RemoveItem)
	cartGroup.PATCH("/items/:lineId/variants/:variantId", h.cartHTTP.UpdateVariantQuantity)
	cartGroup.POST("/selection/toggle", h.cartHTTP.ToggleSelection)
	cartGroup.GET("/favorites", h.cartHTTP.GetFavorites)
	cartGroup.POST("/favorites/toggle", h.cartHTTP.ToggleFavorite)
	cartGroup.POST("/checkout", h.cartHTTP.Checkout, limit)
}
