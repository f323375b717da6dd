package cart

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/flashfood/services/cart CartGW

// CartGW defines the calls the cart service makes to other services
type CartGW interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error)
}
