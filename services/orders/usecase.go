package orders

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/flashfood/services/orders OrderUC

// OrderUC defines the interface for order business logic
type OrderUC interface {
	// PlaceOrder prices, stores and announces a new order
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	// ListRestaurantOrders returns a restaurant's orders, newest first; an empty status lists all of them
	ListRestaurantOrders(ctx context.Context, restaurantID string, status models.TrackingStatus) ([]models.Order, error)
	// UpdateTrackingStatus moves an order of restaurantID along the tracking flow
	UpdateTrackingStatus(ctx context.Context, restaurantID, orderID string, req models.UpdateTrackingRequest) (*models.Order, error)
	// DeliverIncomingOrder pushes an announced order to the restaurant's live feed
	DeliverIncomingOrder(ctx context.Context, order *models.Order) error
}
