package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/flashfood/services/orders OrderRepo

// OrderRepo defines the interface for order persistence
type OrderRepo interface {
	// CreateOrder stores the order and its items atomically
	CreateOrder(ctx context.Context, order *models.Order) error
	// GetOrder returns ErrOrderNotFound for unknown ids
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID string, status models.TrackingStatus) ([]models.Order, error)
	// UpdateTrackingStatus only applies when the stored status still equals from
	UpdateTrackingStatus(ctx context.Context, orderID uuid.UUID, from, to models.TrackingStatus, restaurantNote string, updatedAt time.Time) error
}
