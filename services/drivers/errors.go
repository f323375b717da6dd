package drivers

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidRadius     = errors.New("radius must be positive")
	ErrSessionRequired   = errors.New("session id is required to capture drivers once")
	ErrDriverIDRequired  = errors.New("driver id is required")
	ErrDriverNotFound    = errors.New("driver location not found")
)
