package models

import (
	"encoding/json"
	"time"
)

// WSMessage is the envelope of every frame pushed on an order stream
type WSMessage struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data,omitempty"`
	SentAt time.Time       `json:"sent_at"`
}

// WSErrorMessage is the payload of an "error" event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is the authenticated user behind a WebSocket connection
type WebSocketClient struct {
	UserID string
	Role   string
}
