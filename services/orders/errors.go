package orders

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrNoItems              = errors.New("order has no items")
	ErrInvalidItem          = errors.New("order item needs an id, a variant, a positive quantity and a non-negative price")
	ErrInvalidPaymentMethod = errors.New("payment method must be COD or FWALLET")
	ErrCustomerRequired     = errors.New("customer id is required")
	ErrRestaurantRequired   = errors.New("restaurant id is required")
	ErrAddressRequired      = errors.New("customer address is required")
	ErrInvalidStatus        = errors.New("unknown tracking status")
	ErrInvalidTransition    = errors.New("tracking status transition not allowed")
	ErrNotOrderOwner        = errors.New("order belongs to another restaurant")
)
