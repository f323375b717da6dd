package cart

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/flashfood/services/cart CartUC

// CartUC defines the interface for cart business logic
type CartUC interface {
	// AddItem merges the item into the customer's cart and returns the updated cart
	AddItem(ctx context.Context, customerID string, item models.CartLineItem) ([]models.CartLineItem, error)
	RemoveItem(ctx context.Context, customerID, lineID string) ([]models.CartLineItem, error)
	UpdateVariantQuantity(ctx context.Context, customerID string, req models.UpdateQuantityRequest) ([]models.CartLineItem, error)
	GetCart(ctx context.Context, customerID string) ([]models.CartLineItem, error)
	GetGroupedCart(ctx context.Context, customerID string) (models.GroupedCart, error)

	// ToggleSelection stages or unstages a variant of a cart line for checkout
	ToggleSelection(ctx context.Context, customerID string, req models.ToggleSelectionRequest) (*models.Selection, error)

	ToggleFavoriteRestaurant(ctx context.Context, customerID string, restaurant models.RestaurantSummary) ([]models.RestaurantSummary, error)
	GetFavoriteRestaurants(ctx context.Context, customerID string) ([]models.RestaurantSummary, error)

	// Checkout turns a staged selection into an order through the orders service
	Checkout(ctx context.Context, customerID string, req models.CheckoutRequest) (*models.Order, error)
}
