package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/constants"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
)

// Manager authenticates WebSocket handshakes and tracks open connections
type Manager struct {
	sync.RWMutex
	clients  map[*websocket.Conn]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the request, lets authorize reject it with a
// plain HTTP error, then upgrades and hands the connection to handleClient.
// The connection is closed and unregistered when handleClient returns.
func (m *Manager) HandleConnection(
	c echo.Context,
	authorize func(*models.WebSocketClient) error,
	handleClient func(*models.WebSocketClient, *websocket.Conn) error,
) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}
	if authorize != nil {
		if err := authorize(client); err != nil {
			return err
		}
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	m.addClient(ws, client)
	defer func() {
		m.removeClient(ws)
		ws.Close()
	}()

	return handleClient(client, ws)
}

// authenticateClient reads the bearer token from the Authorization header or,
// since browsers cannot set headers on a handshake, the token query parameter
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

func (m *Manager) addClient(conn *websocket.Conn, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[conn] = client
}

func (m *Manager) removeClient(conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, conn)
}

// ClientCount returns the number of open connections
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage writes an event envelope to conn. Callers must not write to the
// same connection concurrently.
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	msg := models.WSMessage{Event: event, SentAt: time.Now().UTC()}
	if data != nil {
		rawData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("error marshaling message data: %w", err)
		}
		msg.Data = rawData
	}

	return conn.WriteJSON(msg)
}

// SendErrorMessage sends an error event to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
