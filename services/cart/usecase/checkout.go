package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
)

// Checkout prices the staged selection from the cart, submits it to the orders service and takes
// the ordered variants out of the cart.
func (uc *CartUC) Checkout(ctx context.Context, customerID string, req models.CheckoutRequest) (*models.Order, error) {
	if customerID == "" {
		return nil, cart.ErrCustomerIDRequired
	}
	if len(req.Selection.Variants) == 0 {
		return nil, cart.ErrEmptySelection
	}
	if req.Selection.RestaurantID == "" {
		return nil, cart.ErrRestaurantRequired
	}
	if !req.PaymentMethod.IsValid() {
		return nil, cart.ErrInvalidPaymentMethod
	}
	if req.CustomerLocationID == "" {
		return nil, cart.ErrAddressRequired
	}

	items, err := uc.cartRepo.LoadItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	orderItems, restaurantAddress, err := priceSelection(items, req.Selection)
	if err != nil {
		return nil, err
	}
	if req.Selection.RestaurantAddress != "" {
		restaurantAddress = req.Selection.RestaurantAddress
	}

	order, err := uc.cartGW.PlaceOrder(ctx, models.PlaceOrderRequest{
		CustomerID:           customerID,
		RestaurantID:         req.Selection.RestaurantID,
		CustomerLocation:     req.CustomerLocationID,
		RestaurantLocation:   restaurantAddress,
		RestaurantCoordinate: req.RestaurantCoordinate,
		PaymentMethod:        req.PaymentMethod,
		Items:                orderItems,
		CustomerNote:         req.CustomerNote,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// The order exists at this point; a stale cart is not worth failing the checkout for.
	// Pruning works on the cart as stored now so lines added during the checkout survive.
	_, err = uc.cartRepo.UpdateItems(ctx, customerID, func(current []models.CartLineItem) ([]models.CartLineItem, error) {
		return removeStaged(current, req.Selection), nil
	})
	if err != nil {
		logger.Warn("Failed to remove ordered items from cart",
			logger.String("customer_id", customerID),
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	logger.Info("Checkout completed",
		logger.String("customer_id", customerID),
		logger.String("order_id", order.ID.String()),
		logger.String("restaurant_id", order.RestaurantID),
		logger.Float64("total_amount", order.TotalAmount))

	return order, nil
}

// priceSelection turns staged variants into order items using the add-time prices held in the cart
func priceSelection(items []models.CartLineItem, selection models.Selection) ([]models.OrderItem, string, error) {
	orderItems := make([]models.OrderItem, 0, len(selection.Variants))
	var address string

	for _, staged := range selection.Variants {
		idx := findLine(items, staged.ItemID)
		if idx < 0 {
			return nil, "", cart.ErrItemNotFound
		}
		line := items[idx]
		if line.RestaurantID() != selection.RestaurantID {
			return nil, "", cart.ErrMixedRestaurants
		}
		vIdx := findVariant(line.Variants, staged.VariantSelection.VariantID)
		if vIdx < 0 {
			return nil, "", cart.ErrVariantNotFound
		}
		variant := line.Variants[vIdx]

		name := line.Name
		if variant.VariantName != "" {
			name = line.Name + " - " + variant.VariantName
		}
		orderItems = append(orderItems, models.OrderItem{
			ItemID:             line.ItemID,
			VariantID:          variant.VariantID,
			Name:               name,
			Quantity:           variant.Quantity,
			PriceAtTimeOfOrder: variant.UnitPriceAtAdd,
		})
		address = line.Restaurant.Address
	}

	return orderItems, address, nil
}

// removeStaged returns the cart without the ordered variants; lines left without variants are dropped
func removeStaged(items []models.CartLineItem, selection models.Selection) []models.CartLineItem {
	ordered := make(map[string]map[string]bool)
	for _, staged := range selection.Variants {
		if ordered[staged.ItemID] == nil {
			ordered[staged.ItemID] = make(map[string]bool)
		}
		ordered[staged.ItemID][staged.VariantSelection.VariantID] = true
	}

	remaining := make([]models.CartLineItem, 0, len(items))
	for _, line := range items {
		drop := ordered[line.ID]
		if drop == nil {
			remaining = append(remaining, line)
			continue
		}
		variants := make([]models.VariantSelection, 0, len(line.Variants))
		for _, v := range line.Variants {
			if !drop[v.VariantID] {
				variants = append(variants, v)
			}
		}
		if len(variants) > 0 {
			line.Variants = variants
			remaining = append(remaining, line)
		}
	}
	return remaining
}
