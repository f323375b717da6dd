package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagedSelection(restaurantID string, pairs ...[2]string) models.Selection {
	selection := models.Selection{RestaurantID: restaurantID}
	for _, p := range pairs {
		selection.Variants = append(selection.Variants, models.StagedVariant{
			ItemID:           p[0],
			VariantSelection: models.VariantSelection{VariantID: p[1]},
		})
	}
	return selection
}

func TestCheckout_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	ctx := context.Background()

	stored := []models.CartLineItem{
		line("1", "A", variant("v1", 2, 5), variant("v2", 1, 7)),
		line("2", "B", variant("v3", 1, 8)),
	}
	orderID := uuid.New()

	mockRepo.EXPECT().LoadItems(ctx, "c1").Return(stored, nil)
	mockGW.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.PlaceOrderRequest) (*models.Order, error) {
			assert.Equal(t, "c1", req.CustomerID)
			assert.Equal(t, "A", req.RestaurantID)
			assert.Equal(t, "A street", req.RestaurantLocation)
			assert.Equal(t, "addr-1", req.CustomerLocation)
			assert.Equal(t, models.PaymentMethodFWallet, req.PaymentMethod)
			require.Len(t, req.Items, 1)
			assert.Equal(t, models.OrderItem{
				ItemID:             "item-1",
				VariantID:          "v1",
				Name:               "Item 1 - Variant v1",
				Quantity:           2,
				PriceAtTimeOfOrder: 5,
			}, req.Items[0])
			return &models.Order{ID: orderID, RestaurantID: "A", TotalAmount: 10}, nil
		})
	// a line added while the order was being placed is kept
	current := append(stored[:2:2], line("3", "A", variant("v4", 1, 6)))
	mockRepo.EXPECT().UpdateItems(ctx, "c1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, update cart.ItemsUpdate) ([]models.CartLineItem, error) {
			items, err := update(current)
			require.NoError(t, err)
			require.Len(t, items, 3)
			require.Len(t, items[0].Variants, 1)
			assert.Equal(t, "v2", items[0].Variants[0].VariantID)
			assert.Equal(t, "3", items[2].ID)
			return items, nil
		})

	order, err := uc.Checkout(ctx, "c1", models.CheckoutRequest{
		Selection:          stagedSelection("A", [2]string{"1", "v1"}),
		PaymentMethod:      models.PaymentMethodFWallet,
		CustomerLocationID: "addr-1",
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestCheckout_LastItemsClearCart(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	ctx := context.Background()

	mockRepo.EXPECT().LoadItems(ctx, "c1").Return([]models.CartLineItem{line("1", "A", variant("v1", 1, 5))}, nil)
	mockGW.EXPECT().PlaceOrder(ctx, gomock.Any()).Return(&models.Order{ID: uuid.New()}, nil)
	mockRepo.EXPECT().UpdateItems(ctx, "c1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, update cart.ItemsUpdate) ([]models.CartLineItem, error) {
			items, err := update([]models.CartLineItem{line("1", "A", variant("v1", 1, 5))})
			require.NoError(t, err)
			assert.Empty(t, items)
			return nil, errors.New("redis down")
		})

	order, err := uc.Checkout(ctx, "c1", models.CheckoutRequest{
		Selection:          stagedSelection("A", [2]string{"1", "v1"}),
		PaymentMethod:      models.PaymentMethodCOD,
		CustomerLocationID: "addr-1",
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCheckout_Validation(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	ctx := context.Background()

	valid := models.CheckoutRequest{
		Selection:          stagedSelection("A", [2]string{"1", "v1"}),
		PaymentMethod:      models.PaymentMethodCOD,
		CustomerLocationID: "addr-1",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.CheckoutRequest)
		wantErr error
	}{
		{"empty selection", func(r *models.CheckoutRequest) { r.Selection = models.Selection{RestaurantID: "A"} }, cart.ErrEmptySelection},
		{"no restaurant", func(r *models.CheckoutRequest) { r.Selection.RestaurantID = "" }, cart.ErrRestaurantRequired},
		{"no payment method", func(r *models.CheckoutRequest) { r.PaymentMethod = "" }, cart.ErrInvalidPaymentMethod},
		{"unknown payment method", func(r *models.CheckoutRequest) { r.PaymentMethod = "CARD" }, cart.ErrInvalidPaymentMethod},
		{"no address", func(r *models.CheckoutRequest) { r.CustomerLocationID = "" }, cart.ErrAddressRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Selection.Variants = append([]models.StagedVariant(nil), valid.Selection.Variants...)
			tt.mutate(&req)

			_, err := uc.Checkout(ctx, "c1", req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("selection must match the cart", func(t *testing.T) {
		stored := []models.CartLineItem{line("1", "A", variant("v1", 1, 5)), line("2", "B", variant("v3", 1, 8))}
		mockRepo.EXPECT().LoadItems(ctx, "c1").Return(stored, nil).Times(3)

		req := valid
		req.Selection = stagedSelection("A", [2]string{"9", "v1"})
		_, err := uc.Checkout(ctx, "c1", req)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)

		req.Selection = stagedSelection("A", [2]string{"1", "v1"}, [2]string{"2", "v3"})
		_, err = uc.Checkout(ctx, "c1", req)
		assert.ErrorIs(t, err, cart.ErrMixedRestaurants)

		req.Selection = stagedSelection("A", [2]string{"1", "v9"})
		_, err = uc.Checkout(ctx, "c1", req)
		assert.ErrorIs(t, err, cart.ErrVariantNotFound)
	})
}

func TestCheckout_OrdersServiceFails(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	ctx := context.Background()

	mockRepo.EXPECT().LoadItems(ctx, "c1").Return([]models.CartLineItem{line("1", "A", variant("v1", 1, 5))}, nil)
	mockGW.EXPECT().PlaceOrder(ctx, gomock.Any()).Return(nil, errors.New("orders unavailable"))

	order, err := uc.Checkout(ctx, "c1", models.CheckoutRequest{
		Selection:          stagedSelection("A", [2]string{"1", "v1"}),
		PaymentMethod:      models.PaymentMethodCOD,
		CustomerLocationID: "addr-1",
	})

	assert.Nil(t, order)
	assert.ErrorContains(t, err, "failed to place order")
}
