package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/converter"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
)

// PlaceOrder stores a new order and announces it on the incoming_order topic.
// Total is the item subtotal plus the configured delivery and service fees.
func (uc *OrderUC) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, item := range req.Items {
		subtotal += item.Subtotal()
	}
	subtotal = roundCents(subtotal)

	now := uc.now()
	order := &models.Order{
		ID:                   uuid.New(),
		CustomerID:           req.CustomerID,
		RestaurantID:         req.RestaurantID,
		CustomerLocation:     req.CustomerLocation,
		RestaurantLocation:   req.RestaurantLocation,
		RestaurantCoordinate: req.RestaurantCoordinate,
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        models.PaymentStatusPending,
		TrackingInfo:         models.TrackingOrderPlaced,
		SubtotalAmount:       subtotal,
		DeliveryFee:          uc.cfg.Checkout.DeliveryFee,
		ServiceFee:           uc.cfg.Checkout.ServiceFee,
		TotalAmount:          roundCents(subtotal + uc.cfg.Checkout.DeliveryFee + uc.cfg.Checkout.ServiceFee),
		Items:                append([]models.OrderItem(nil), req.Items...),
		CustomerNote:         req.CustomerNote,
		OrderTime:            now,
		UpdatedAt:            now,
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	uc.metrics.IncOrderPlaced(string(order.PaymentMethod))

	// The order is stored; a failed announcement must not make the customer order twice.
	if err := uc.orderGW.PublishIncomingOrder(ctx, order); err != nil {
		logger.Error("Failed to announce incoming order",
			logger.String("order_id", order.ID.String()),
			logger.String("restaurant_id", order.RestaurantID),
			logger.Err(err))
	}

	logger.Info("Order placed",
		logger.String("order_id", order.ID.String()),
		logger.String("customer_id", order.CustomerID),
		logger.String("restaurant_id", order.RestaurantID),
		logger.String("payment_method", string(order.PaymentMethod)),
		logger.Float64("total_amount", order.TotalAmount))

	return order, nil
}

// GetOrder loads an order by id
func (uc *OrderUC) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	id := converter.StrToUUID(orderID)
	if id == uuid.Nil {
		return nil, orders.ErrInvalidOrderID
	}
	return uc.orderRepo.GetOrder(ctx, id)
}

// ListRestaurantOrders returns the restaurant's orders, newest first
func (uc *OrderUC) ListRestaurantOrders(ctx context.Context, restaurantID string, status models.TrackingStatus) ([]models.Order, error) {
	if restaurantID == "" {
		return nil, orders.ErrRestaurantRequired
	}
	if status != "" && !status.IsValid() {
		return nil, orders.ErrInvalidStatus
	}
	return uc.orderRepo.ListRestaurantOrders(ctx, restaurantID, status)
}

// DeliverIncomingOrder pushes the order to the restaurant's open feeds and raises a notification
func (uc *OrderUC) DeliverIncomingOrder(ctx context.Context, order *models.Order) error {
	if order == nil || order.RestaurantID == "" {
		return orders.ErrRestaurantRequired
	}

	delivered := uc.hub.Publish(order)
	logger.Debug("Incoming order delivered to feed",
		logger.String("order_id", order.ID.String()),
		logger.String("restaurant_id", order.RestaurantID),
		logger.Int("subscribers", delivered))

	if err := uc.notifier.Notify(ctx, order); err != nil {
		logger.Warn("Failed to notify incoming order",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}
	return nil
}

func validatePlaceOrder(req models.PlaceOrderRequest) error {
	switch {
	case req.CustomerID == "":
		return orders.ErrCustomerRequired
	case req.RestaurantID == "":
		return orders.ErrRestaurantRequired
	case req.CustomerLocation == "":
		return orders.ErrAddressRequired
	case !req.PaymentMethod.IsValid():
		return orders.ErrInvalidPaymentMethod
	case len(req.Items) == 0:
		return orders.ErrNoItems
	}

	for _, item := range req.Items {
		if item.ItemID == "" || item.VariantID == "" || item.Quantity <= 0 || item.PriceAtTimeOfOrder < 0 {
			return orders.ErrInvalidItem
		}
	}
	return nil
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
