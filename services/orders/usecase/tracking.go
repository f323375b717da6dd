package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/converter"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
)

// transitions lists the statuses a restaurant may move an order to from each status
var transitions = map[models.TrackingStatus][]models.TrackingStatus{
	models.TrackingOrderPlaced:    {models.TrackingPreparing, models.TrackingRejected},
	models.TrackingPreparing:      {models.TrackingOutForDelivery},
	models.TrackingOutForDelivery: {models.TrackingDelivered},
}

// CanTransition reports whether an order may move from one tracking status to another
func CanTransition(from, to models.TrackingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateTrackingStatus moves an order of restaurantID to req.Status. Accepting an order
// (PREPARING) also looks up drivers near the restaurant and publishes an order dispatch.
func (uc *OrderUC) UpdateTrackingStatus(ctx context.Context, restaurantID, orderID string, req models.UpdateTrackingRequest) (*models.Order, error) {
	if restaurantID == "" {
		return nil, orders.ErrRestaurantRequired
	}
	id := converter.StrToUUID(orderID)
	if id == uuid.Nil {
		return nil, orders.ErrInvalidOrderID
	}
	if !req.Status.IsValid() {
		return nil, orders.ErrInvalidStatus
	}

	order, err := uc.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, orders.ErrNotOrderOwner
	}
	if !CanTransition(order.TrackingInfo, req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", orders.ErrInvalidTransition, order.TrackingInfo, req.Status)
	}

	now := uc.now()
	if err := uc.orderRepo.UpdateTrackingStatus(ctx, id, order.TrackingInfo, req.Status, req.RestaurantNote, now); err != nil {
		return nil, err
	}

	logger.Info("Order tracking updated",
		logger.String("order_id", order.ID.String()),
		logger.String("from", string(order.TrackingInfo)),
		logger.String("to", string(req.Status)))

	order.TrackingInfo = req.Status
	order.UpdatedAt = now
	if req.RestaurantNote != "" {
		order.RestaurantNote = req.RestaurantNote
	}

	if req.Status == models.TrackingPreparing {
		uc.dispatch(ctx, order)
	}
	return order, nil
}

// dispatch publishes the accepted order with the drivers around the restaurant.
// The status change already happened, so failures are logged rather than returned.
func (uc *OrderUC) dispatch(ctx context.Context, order *models.Order) {
	drivers := []models.DriverRecord{}

	if order.RestaurantCoordinate == nil {
		logger.Warn("Order has no restaurant coordinate, dispatching without drivers",
			logger.String("order_id", order.ID.String()))
	} else {
		found, err := uc.orderGW.FindDriversWithinRadius(ctx, *order.RestaurantCoordinate, uc.cfg.Simulator.SearchRadiusMeters)
		if err != nil {
			logger.Warn("Driver lookup failed, dispatching without drivers",
				logger.String("order_id", order.ID.String()),
				logger.Err(err))
		} else {
			drivers = found
		}
	}

	err := uc.orderGW.PublishOrderDispatch(ctx, models.OrderDispatch{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Drivers:      drivers,
		CreatedAt:    uc.now(),
	})
	if err != nil {
		logger.Error("Failed to publish order dispatch",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}
}
