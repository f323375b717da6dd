package handler

import (
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	wspkg "github.com/piresc/flashfood/internal/pkg/websocket"
	"github.com/piresc/flashfood/services/orders"
	"github.com/piresc/flashfood/services/orders/feed"
	httpHandler "github.com/piresc/flashfood/services/orders/handler/http"
	nsqHandler "github.com/piresc/flashfood/services/orders/handler/nsq"
	wsHandler "github.com/piresc/flashfood/services/orders/handler/websocket"
)

// Handler combines all handlers for the orders service
type Handler struct {
	ordersHTTP *httpHandler.OrdersHandler
	ordersNSQ  *nsqHandler.OrdersHandler
	stream     *wsHandler.StreamHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(orderUC orders.OrderUC, hub *feed.Hub, cfg *models.Config) *Handler {
	return &Handler{
		ordersHTTP: httpHandler.NewOrdersHandler(orderUC),
		ordersNSQ:  nsqHandler.NewOrdersHandler(orderUC, cfg),
		stream:     wsHandler.NewStreamHandler(hub, wspkg.NewManager(cfg.JWT)),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	restaurantOnly := middleware.RequireRole(jwtpkg.RoleRestaurant)

	orderGroup := e.Group("/orders", auth)
	orderGroup.POST("", h.ordersHTTP.PlaceOrder, middleware.RequireRole(jwtpkg.RoleCustomer))
	orderGroup.GET("/:id", h.ordersHTTP.GetOrder)
	orderGroup.PATCH("/:id/status", h.ordersHTTP.UpdateTrackingStatus, restaurantOnly)

	e.GET("/restaurants/:id/orders", h.ordersHTTP.ListRestaurantOrders, auth, restaurantOnly)
	// The stream authenticates the handshake itself (header or ?token=)
	e.GET("/restaurants/:id/orders/stream", h.stream.Stream)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.CartService))
	internal.POST("/orders", h.ordersHTTP.PlaceInternalOrder)
}

// InitNSQConsumers starts the consumers feeding the live order stream
func (h *Handler) InitNSQConsumers() error {
	return h.ordersNSQ.InitNSQConsumers()
}

// StopNSQConsumers stops the NSQ consumers
func (h *Handler) StopNSQConsumers() {
	h.ordersNSQ.Stop()
}
