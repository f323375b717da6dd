package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "COD"
	PaymentMethodFWallet PaymentMethod = "FWALLET"
)

// IsValid reports whether the payment method is one we accept
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCOD || p == PaymentMethodFWallet
}

// PaymentStatus tracks payment of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// TrackingStatus is the restaurant-side progress of an order
type TrackingStatus string

const (
	TrackingOrderPlaced    TrackingStatus = "ORDER_PLACED"
	TrackingPreparing      TrackingStatus = "PREPARING"
	TrackingRejected       TrackingStatus = "REJECTED"
	TrackingOutForDelivery TrackingStatus = "OUT_FOR_DELIVERY"
	TrackingDelivered      TrackingStatus = "DELIVERED"
)

// IsValid reports whether the status is one of the known tracking states
func (s TrackingStatus) IsValid() bool {
	switch s {
	case TrackingOrderPlaced, TrackingPreparing, TrackingRejected, TrackingOutForDelivery, TrackingDelivered:
		return true
	}
	return false
}

// OrderItem is one variant line of an order, priced at the time the order was placed
type OrderItem struct {
	ItemID             string  `json:"item_id" db:"item_id"`
	VariantID          string  `json:"variant_id" db:"variant_id"`
	Name               string  `json:"name" db:"name"`
	Quantity           int     `json:"quantity" db:"quantity"`
	PriceAtTimeOfOrder float64 `json:"price_at_time_of_order" db:"price_at_time_of_order"`
}

// Subtotal returns price times quantity
func (i OrderItem) Subtotal() float64 {
	return i.PriceAtTimeOfOrder * float64(i.Quantity)
}

// Order is a placed order
type Order struct {
	ID                   uuid.UUID      `json:"id"`
	CustomerID           string         `json:"customer_id"`
	RestaurantID         string         `json:"restaurant_id"`
	CustomerLocation     string         `json:"customer_location"`
	RestaurantLocation   string         `json:"restaurant_location"`
	RestaurantCoordinate *Coordinate    `json:"restaurant_coordinate,omitempty"`
	PaymentMethod        PaymentMethod  `json:"payment_method"`
	PaymentStatus        PaymentStatus  `json:"payment_status"`
	TrackingInfo         TrackingStatus `json:"tracking_info"`
	SubtotalAmount       float64        `json:"subtotal_amount"`
	DeliveryFee          float64        `json:"delivery_fee"`
	ServiceFee           float64        `json:"service_fee"`
	TotalAmount          float64        `json:"total_amount"`
	Items                []OrderItem    `json:"order_items"`
	CustomerNote         string         `json:"customer_note,omitempty"`
	RestaurantNote       string         `json:"restaurant_note,omitempty"`
	OrderTime            time.Time      `json:"order_time"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// PlaceOrderRequest is the order draft submitted at checkout
type PlaceOrderRequest struct {
	CustomerID           string        `json:"customer_id"`
	RestaurantID         string        `json:"restaurant_id"`
	CustomerLocation     string        `json:"customer_location"`
	RestaurantLocation   string        `json:"restaurant_location"`
	RestaurantCoordinate *Coordinate   `json:"restaurant_coordinate,omitempty"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	Items                []OrderItem   `json:"order_items"`
	CustomerNote         string        `json:"customer_note,omitempty"`
}

// UpdateTrackingRequest moves an order along the restaurant flow
type UpdateTrackingRequest struct {
	Status         TrackingStatus `json:"status"`
	RestaurantNote string         `json:"restaurant_note,omitempty"`
}

// OrderDispatch is published when a restaurant accepts an order
type OrderDispatch struct {
	OrderID      uuid.UUID      `json:"order_id"`
	RestaurantID string         `json:"restaurant_id"`
	Drivers      []DriverRecord `json:"drivers"`
	CreatedAt    time.Time      `json:"created_at"`
}

// OrderDTO is the flat row shape of the orders table
type OrderDTO struct {
	ID                 uuid.UUID `db:"id"`
	CustomerID         string    `db:"customer_id"`
	RestaurantID       string    `db:"restaurant_id"`
	CustomerLocation   string    `db:"customer_location"`
	RestaurantLocation string    `db:"restaurant_location"`
	RestaurantLat      *float64  `db:"restaurant_lat"`
	RestaurantLng      *float64  `db:"restaurant_lng"`
	PaymentMethod      string    `db:"payment_method"`
	PaymentStatus      string    `db:"payment_status"`
	TrackingInfo       string    `db:"tracking_info"`
	SubtotalAmount     float64   `db:"subtotal_amount"`
	DeliveryFee        float64   `db:"delivery_fee"`
	ServiceFee         float64   `db:"service_fee"`
	TotalAmount        float64   `db:"total_amount"`
	CustomerNote       string    `db:"customer_note"`
	RestaurantNote     string    `db:"restaurant_note"`
	OrderTime          time.Time `db:"order_time"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ToDTO flattens an order into its table row
func (o *Order) ToDTO() *OrderDTO {
	dto := &OrderDTO{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		RestaurantID:       o.RestaurantID,
		CustomerLocation:   o.CustomerLocation,
		RestaurantLocation: o.RestaurantLocation,
		PaymentMethod:      string(o.PaymentMethod),
		PaymentStatus:      string(o.PaymentStatus),
		TrackingInfo:       string(o.TrackingInfo),
		SubtotalAmount:     o.SubtotalAmount,
		DeliveryFee:        o.DeliveryFee,
		ServiceFee:         o.ServiceFee,
		TotalAmount:        o.TotalAmount,
		CustomerNote:       o.CustomerNote,
		RestaurantNote:     o.RestaurantNote,
		OrderTime:          o.OrderTime,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.RestaurantCoordinate != nil {
		lat, lng := o.RestaurantCoordinate.Latitude, o.RestaurantCoordinate.Longitude
		dto.RestaurantLat = &lat
		dto.RestaurantLng = &lng
	}
	return dto
}

// ToOrder rebuilds an order from its row; items are loaded separately
func (d *OrderDTO) ToOrder() *Order {
	order := &Order{
		ID:                 d.ID,
		CustomerID:         d.CustomerID,
		RestaurantID:       d.RestaurantID,
		CustomerLocation:   d.CustomerLocation,
		RestaurantLocation: d.RestaurantLocation,
		PaymentMethod:      PaymentMethod(d.PaymentMethod),
		PaymentStatus:      PaymentStatus(d.PaymentStatus),
		TrackingInfo:       TrackingStatus(d.TrackingInfo),
		SubtotalAmount:     d.SubtotalAmount,
		DeliveryFee:        d.DeliveryFee,
		ServiceFee:         d.ServiceFee,
		TotalAmount:        d.TotalAmount,
		CustomerNote:       d.CustomerNote,
		RestaurantNote:     d.RestaurantNote,
		OrderTime:          d.OrderTime,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.RestaurantLat != nil && d.RestaurantLng != nil {
		order.RestaurantCoordinate = &Coordinate{Latitude: *d.RestaurantLat, Longitude: *d.RestaurantLng}
	}
	return order
}
