package drivers

import (
	"context"
	"time"

	"github.com/piresc/flashfood/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/flashfood/services/drivers DriverRepo

// DriverRepo defines the interface for driver data access operations
type DriverRepo interface {
	// Capture-once snapshots; GetSnapshot returns nil, nil when none is stored
	SaveSnapshot(ctx context.Context, sessionID string, result *models.NearbyDriversResult, ttl time.Duration) error
	GetSnapshot(ctx context.Context, sessionID string) (*models.NearbyDriversResult, error)

	// Live location feed
	StoreLocation(ctx context.Context, update models.LocationUpdate) error
	GetLocation(ctx context.Context, driverID string) (*models.DriverRecord, error)
	RemoveLocation(ctx context.Context, driverID string) error
	FindWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error)
}
