package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]models.TrackingStatus]bool{
		{models.TrackingOrderPlaced, models.TrackingPreparing}:    true,
		{models.TrackingOrderPlaced, models.TrackingRejected}:     true,
		{models.TrackingPreparing, models.TrackingOutForDelivery}: true,
		{models.TrackingOutForDelivery, models.TrackingDelivered}: true,
	}
	all := []models.TrackingStatus{
		models.TrackingOrderPlaced, models.TrackingPreparing, models.TrackingRejected,
		models.TrackingOutForDelivery, models.TrackingDelivered,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]models.TrackingStatus{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func placedOrder(coord *models.Coordinate) *models.Order {
	return &models.Order{
		ID:                   uuid.New(),
		RestaurantID:         "r1",
		TrackingInfo:         models.TrackingOrderPlaced,
		RestaurantCoordinate: coord,
	}
}

func TestUpdateTrackingStatus_AcceptDispatchesDrivers(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	coord := &models.Coordinate{Latitude: 10.826411, Longitude: 106.617353}
	order := placedOrder(coord)
	drivers := []models.DriverRecord{{ID: "DRI_1", Location: *coord}}

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
	d.repo.EXPECT().UpdateTrackingStatus(ctx, order.ID, models.TrackingOrderPlaced, models.TrackingPreparing, "10 minutes", fixedNow).Return(nil)
	d.gw.EXPECT().FindDriversWithinRadius(ctx, *coord, 1000.0).Return(drivers, nil)
	d.gw.EXPECT().PublishOrderDispatch(ctx, models.OrderDispatch{
		OrderID:      order.ID,
		RestaurantID: "r1",
		Drivers:      drivers,
		CreatedAt:    fixedNow,
	}).Return(nil)

	updated, err := d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{
		Status:         models.TrackingPreparing,
		RestaurantNote: "10 minutes",
	})

	require.NoError(t, err)
	assert.Equal(t, models.TrackingPreparing, updated.TrackingInfo)
	assert.Equal(t, "10 minutes", updated.RestaurantNote)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestUpdateTrackingStatus_DispatchFailuresDoNotFailUpdate(t *testing.T) {
	t.Run("driver lookup fails", func(t *testing.T) {
		d := setup(t)
		ctx := context.Background()
		order := placedOrder(&models.Coordinate{Latitude: 10.8, Longitude: 106.6})

		d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
		d.repo.EXPECT().UpdateTrackingStatus(ctx, order.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.gw.EXPECT().FindDriversWithinRadius(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("drivers down"))
		d.gw.EXPECT().PublishOrderDispatch(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, dispatch models.OrderDispatch) error {
				assert.NotNil(t, dispatch.Drivers)
				assert.Empty(t, dispatch.Drivers)
				return errors.New("nsqd down")
			})

		_, err := d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingPreparing})
		assert.NoError(t, err)
	})

	t.Run("no restaurant coordinate", func(t *testing.T) {
		d := setup(t)
		ctx := context.Background()
		order := placedOrder(nil)

		d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
		d.repo.EXPECT().UpdateTrackingStatus(ctx, order.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.gw.EXPECT().PublishOrderDispatch(ctx, gomock.Any()).Return(nil)

		_, err := d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingPreparing})
		assert.NoError(t, err)
	})
}

func TestUpdateTrackingStatus_RejectDoesNotDispatch(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	order := placedOrder(&models.Coordinate{Latitude: 10.8, Longitude: 106.6})

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
	d.repo.EXPECT().UpdateTrackingStatus(ctx, order.ID, models.TrackingOrderPlaced, models.TrackingRejected, "", fixedNow).Return(nil)

	updated, err := d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingRejected})

	require.NoError(t, err)
	assert.Equal(t, models.TrackingRejected, updated.TrackingInfo)
}

func TestUpdateTrackingStatus_Errors(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	order := placedOrder(nil)

	_, err := d.uc.UpdateTrackingStatus(ctx, "", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingPreparing})
	assert.ErrorIs(t, err, orders.ErrRestaurantRequired)

	_, err = d.uc.UpdateTrackingStatus(ctx, "r1", "bad-id", models.UpdateTrackingRequest{Status: models.TrackingPreparing})
	assert.ErrorIs(t, err, orders.ErrInvalidOrderID)

	_, err = d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: "COOKING"})
	assert.ErrorIs(t, err, orders.ErrInvalidStatus)

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(nil, orders.ErrOrderNotFound)
	_, err = d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingPreparing})
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
	_, err = d.uc.UpdateTrackingStatus(ctx, "r2", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingPreparing})
	assert.ErrorIs(t, err, orders.ErrNotOrderOwner)

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
	_, err = d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingDelivered})
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)

	d.repo.EXPECT().GetOrder(ctx, order.ID).Return(order, nil)
	d.repo.EXPECT().UpdateTrackingStatus(ctx, order.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(orders.ErrInvalidTransition)
	_, err = d.uc.UpdateTrackingStatus(ctx, "r1", order.ID.String(), models.UpdateTrackingRequest{Status: models.TrackingRejected})
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)
}
