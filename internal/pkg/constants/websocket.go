package constants

// WebSocket event types
const (
	EventError         = "error"
	EventPing          = "ping"
	EventIncomingOrder = "incoming_order"
)
