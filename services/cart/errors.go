package cart

import "errors"

var (
	ErrCustomerIDRequired   = errors.New("customer id is required")
	ErrInvalidItem          = errors.New("cart item must have an id, an item id and a restaurant")
	ErrInvalidVariant       = errors.New("variant must have an id and a positive quantity")
	ErrItemNotFound         = errors.New("cart item not found")
	ErrVariantNotFound      = errors.New("variant not found in cart item")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrMixedRestaurants     = errors.New("selection already holds items from another restaurant")
	ErrLineRestaurant       = errors.New("cart line already belongs to another restaurant")
	ErrEmptySelection       = errors.New("selection has no variants")
	ErrInvalidPaymentMethod = errors.New("payment method must be COD or FWALLET")
	ErrAddressRequired      = errors.New("customer address is required")
	ErrRestaurantRequired   = errors.New("restaurant id is required")
)
