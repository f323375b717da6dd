package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/constants"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	wspkg "github.com/piresc/flashfood/internal/pkg/websocket"
	"github.com/piresc/flashfood/services/orders/feed"
)

const defaultPingInterval = 30 * time.Second

// StreamHandler pushes a restaurant's incoming orders over a WebSocket
type StreamHandler struct {
	hub          *feed.Hub
	wsManager    *wspkg.Manager
	pingInterval time.Duration
}

// NewStreamHandler creates a new order stream handler
func NewStreamHandler(hub *feed.Hub, wsManager *wspkg.Manager) *StreamHandler {
	return &StreamHandler{
		hub:          hub,
		wsManager:    wsManager,
		pingInterval: defaultPingInterval,
	}
}

// Stream handles GET /restaurants/:id/orders/stream
func (h *StreamHandler) Stream(c echo.Context) error {
	restaurantID := c.Param("id")

	authorize := func(client *models.WebSocketClient) error {
		if client.Role != jwtpkg.RoleRestaurant || client.UserID != restaurantID {
			return echo.NewHTTPError(http.StatusForbidden, "Cannot stream another restaurant's orders")
		}
		return nil
	}

	return h.wsManager.HandleConnection(c, authorize, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		sub, err := h.hub.Subscribe(restaurantID)
		if err != nil {
			return h.wsManager.SendErrorMessage(conn, "subscribe_failed", err.Error())
		}
		defer sub.Close()

		logger.Info("Restaurant order stream opened",
			logger.String("restaurant_id", restaurantID))
		defer logger.Info("Restaurant order stream closed",
			logger.String("restaurant_id", restaurantID))

		return h.pump(conn, sub)
	})
}

// pump is the connection's only writer. A reader goroutine drains client
// frames so close and pong frames are processed and disconnects are seen.
func (h *StreamHandler) pump(conn *websocket.Conn, sub *feed.Subscription) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case order, ok := <-sub.Orders():
			if !ok {
				// Hub closed on shutdown
				return nil
			}
			if err := h.wsManager.SendMessage(conn, constants.EventIncomingOrder, order); err != nil {
				logger.Warn("Failed to push incoming order",
					logger.String("restaurant_id", sub.RestaurantID),
					logger.String("order_id", order.ID.String()),
					logger.Err(err))
				return nil
			}
		case <-ticker.C:
			if err := h.wsManager.SendMessage(conn, constants.EventPing, nil); err != nil {
				return nil
			}
		}
	}
}
