package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
)

// AddItem adds a line item to the cart. A line with the same id absorbs the incoming variants;
// otherwise the item is appended as a new line.
func (uc *CartUC) AddItem(ctx context.Context, customerID string, item models.CartLineItem) ([]models.CartLineItem, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	var merges int
	updated, err := uc.updateItems(ctx, customerID, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		merges = 0
		now := uc.now()
		updated := make([]models.CartLineItem, len(items), len(items)+1)
		copy(updated, items)

		idx := findLine(updated, item.ID)
		if idx < 0 {
			return append(updated, newLine(item, now)), nil
		}

		line := updated[idx]
		if line.RestaurantID() != item.RestaurantID() {
			return nil, cart.ErrLineRestaurant
		}
		for _, v := range item.Variants {
			line = MergeVariantIntoItem(line, v)
			merges++
		}
		line.UpdatedAt = now
		updated[idx] = line
		return updated, nil
	})
	if err != nil {
		return nil, err
	}
	for i := 0; i < merges; i++ {
		uc.metrics.IncCartMerge()
	}

	logger.Debug("Cart item added",
		logger.String("customer_id", customerID),
		logger.String("line_id", item.ID),
		logger.Int("lines", len(updated)))

	return updated, nil
}

// RemoveItem drops a whole line from the cart
func (uc *CartUC) RemoveItem(ctx context.Context, customerID, lineID string) ([]models.CartLineItem, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}

	return uc.updateItems(ctx, customerID, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		idx := findLine(items, lineID)
		if idx < 0 {
			return nil, cart.ErrItemNotFound
		}
		updated := make([]models.CartLineItem, 0, len(items)-1)
		updated = append(updated, items[:idx]...)
		return append(updated, items[idx+1:]...), nil
	})
}

// UpdateVariantQuantity sets the quantity of one variant of a line. Use RemoveItem to drop lines.
func (uc *CartUC) UpdateVariantQuantity(ctx context.Context, customerID string, req models.UpdateQuantityRequest) ([]models.CartLineItem, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	return uc.updateItems(ctx, customerID, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		idx := findLine(items, req.LineID)
		if idx < 0 {
			return nil, cart.ErrItemNotFound
		}
		line := items[idx]
		vIdx := findVariant(line.Variants, req.VariantID)
		if vIdx < 0 {
			return nil, cart.ErrVariantNotFound
		}

		variants := make([]models.VariantSelection, len(line.Variants))
		copy(variants, line.Variants)
		variants[vIdx].Quantity = req.Quantity
		line.Variants = variants
		line.UpdatedAt = uc.now()

		updated := make([]models.CartLineItem, len(items))
		copy(updated, items)
		updated[idx] = line
		return updated, nil
	})
}

// updateItems applies update to the stored cart atomically. Errors returned by update come
// back as they are; storage failures are wrapped.
func (uc *CartUC) updateItems(ctx context.Context, customerID string, update cart.ItemsUpdate) ([]models.CartLineItem, error) {
	var updateErr error
	items, err := uc.cartRepo.UpdateItems(ctx, customerID, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		var updated []models.CartLineItem
		updated, updateErr = update(items)
		return updated, updateErr
	})
	if updateErr != nil {
		return nil, updateErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return items, nil
}

// GetCart returns the cart lines in insertion order
func (uc *CartUC) GetCart(ctx context.Context, customerID string) ([]models.CartLineItem, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	items, err := uc.cartRepo.LoadItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return items, nil
}

// GetGroupedCart returns the cart bucketed by restaurant
func (uc *CartUC) GetGroupedCart(ctx context.Context, customerID string) (models.GroupedCart, error) {
	items, err := uc.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return GroupByRestaurant(items), nil
}

// ToggleSelection stages or unstages a variant that is in the customer's cart
func (uc *CartUC) ToggleSelection(ctx context.Context, customerID string, req models.ToggleSelectionRequest) (*models.Selection, error) {
	items, err := uc.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	idx := findLine(items, req.LineID)
	if idx < 0 {
		return nil, cart.ErrItemNotFound
	}
	line := items[idx]
	vIdx := findVariant(line.Variants, req.VariantID)
	if vIdx < 0 {
		return nil, cart.ErrVariantNotFound
	}

	selection, err := ToggleVariantSelection(req.Selection, line.Restaurant, models.StagedVariant{
		ItemID:           line.ID,
		ItemName:         line.Name,
		VariantSelection: line.Variants[vIdx],
	})
	if err != nil {
		return nil, err
	}
	return &selection, nil
}

// ToggleFavoriteRestaurant adds the restaurant to the favourites or removes it when already there
func (uc *CartUC) ToggleFavoriteRestaurant(ctx context.Context, customerID string, restaurant models.RestaurantSummary) ([]models.RestaurantSummary, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	if restaurant.ID == "" {
		return nil, cart.ErrRestaurantRequired
	}

	updated, err := uc.cartRepo.UpdateFavorites(ctx, customerID, func(favorites []models.RestaurantSummary) ([]models.RestaurantSummary, error) {
		updated := make([]models.RestaurantSummary, 0, len(favorites)+1)
		found := false
		for _, f := range favorites {
			if f.ID == restaurant.ID {
				found = true
				continue
			}
			updated = append(updated, f)
		}
		if !found {
			updated = append(updated, restaurant)
		}
		return updated, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save favorite restaurants: %w", err)
	}
	return updated, nil
}

// GetFavoriteRestaurants returns the customer's favourite restaurants
func (uc *CartUC) GetFavoriteRestaurants(ctx context.Context, customerID string) ([]models.RestaurantSummary, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	favorites, err := uc.cartRepo.LoadFavorites(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite restaurants: %w", err)
	}
	return favorites, nil
}

func validateItem(item models.CartLineItem) error {
	if item.ID == "" || item.ItemID == "" || item.RestaurantID() == "" {
		return cart.ErrInvalidItem
	}
	if len(item.Variants) == 0 {
		return cart.ErrInvalidVariant
	}
	for _, v := range item.Variants {
		if v.VariantID == "" || v.Quantity <= 0 {
			return cart.ErrInvalidVariant
		}
	}
	return nil
}

// newLine builds a fresh cart line; repeated variants in the request are folded together
func newLine(item models.CartLineItem, now time.Time) models.CartLineItem {
	incoming := item.Variants
	item.Variants = nil
	for _, v := range incoming {
		item = MergeVariantIntoItem(item, v)
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return item
}
