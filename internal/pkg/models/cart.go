package models

import "time"

// VariantSelection is one purchasable variant of a menu item sitting in a cart
type VariantSelection struct {
	VariantID      string  `json:"variant_id"`
	VariantName    string  `json:"variant_name"`
	UnitPriceAtAdd float64 `json:"variant_price_at_time_of_addition"`
	Quantity       int     `json:"quantity"`
}

// RestaurantSummary is the restaurant display metadata copied into a cart line
type RestaurantSummary struct {
	ID        string `json:"id"`
	Name      string `json:"restaurant_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Address   string `json:"address,omitempty"`
}

// CartLineItem is a menu item added to the cart, scoped to exactly one restaurant
type CartLineItem struct {
	ID         string             `json:"id"`
	ItemID     string             `json:"item_id"`
	Name       string             `json:"name"`
	AvatarURL  string             `json:"avatar_url,omitempty"`
	Restaurant RestaurantSummary  `json:"restaurant"`
	Variants   []VariantSelection `json:"variants"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// RestaurantID returns the id of the owning restaurant
func (i CartLineItem) RestaurantID() string {
	return i.Restaurant.ID
}

// GroupedCart maps a restaurant id to its cart lines in insertion order
type GroupedCart map[string][]CartLineItem

// StagedVariant is a variant picked for checkout together with the line it came from
type StagedVariant struct {
	ItemID           string           `json:"item_id"`
	ItemName         string           `json:"item_name"`
	VariantSelection VariantSelection `json:"variant"`
}

// Selection is the set of variants staged for checkout; all of them belong to RestaurantID
type Selection struct {
	RestaurantID      string          `json:"restaurant_id"`
	RestaurantAddress string          `json:"restaurant_address,omitempty"`
	Variants          []StagedVariant `json:"variants"`
}

// UpdateQuantityRequest sets the quantity of a variant in a cart line
type UpdateQuantityRequest struct {
	LineID    string `json:"line_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest turns a staged selection into an order
type CheckoutRequest struct {
	Selection            Selection     `json:"selection"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	CustomerLocationID   string        `json:"customer_location"`
	CustomerNote         string        `json:"customer_note,omitempty"`
	RestaurantCoordinate *Coordinate   `json:"restaurant_coordinate,omitempty"`
}

// ToggleSelectionRequest stages or unstages one variant of a cart line
type ToggleSelectionRequest struct {
	Selection Selection `json:"selection"`
	LineID    string    `json:"line_id"`
	VariantID string    `json:"variant_id"`
}
