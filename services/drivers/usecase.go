package drivers

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/flashfood/services/drivers DriverUC

// DriverUC defines the interface for driver search and location business logic
type DriverUC interface {
	// SearchNearbyDrivers scatters the driver roster around a center and keeps the ones inside the radius
	SearchNearbyDrivers(ctx context.Context, req models.NearbyDriversRequest) (*models.NearbyDriversResult, error)
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Coordinate) error
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverRecord, error)
	// RemoveDriver takes a driver off the live feed; removing an unknown driver is not an error
	RemoveDriver(ctx context.Context, driverID string) error
	FindDriversWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error)
}
