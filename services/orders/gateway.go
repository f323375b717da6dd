package orders

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/flashfood/services/orders OrderGW

// OrderGW defines the messaging and service calls of the orders service
type OrderGW interface {
	PublishIncomingOrder(ctx context.Context, order *models.Order) error
	PublishOrderDispatch(ctx context.Context, dispatch models.OrderDispatch) error
	FindDriversWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error)
}
