package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/drivers"
)

// SearchNearbyDrivers scatters min(total, roster) drivers inside the search
// radius plus the configured extra radius, then keeps those inside the search
// radius. With CaptureOnce the first result of a session is stored and
// returned unchanged on later calls.
func (uc *DriverUC) SearchNearbyDrivers(ctx context.Context, req models.NearbyDriversRequest) (*models.NearbyDriversResult, error) {
	if !req.Center.IsValid() {
		return nil, drivers.ErrInvalidCoordinate
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = uc.cfg.SearchRadiusMeters
	}
	if !validRadius(radius) {
		return nil, drivers.ErrInvalidRadius
	}

	total := req.TotalDrivers
	if total <= 0 {
		total = uc.cfg.TotalDrivers
	}

	if req.CaptureOnce {
		if req.SessionID == "" {
			return nil, drivers.ErrSessionRequired
		}
		snapshot, err := uc.driverRepo.GetSnapshot(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load driver snapshot: %w", err)
		}
		if snapshot != nil {
			snapshot.Captured = true
			return snapshot, nil
		}
	}

	ids := uc.cfg.DriverIDs[:min(total, len(uc.cfg.DriverIDs))]
	all := GenerateDrivers(uc.rng, req.Center, radius+uc.cfg.ExtraRadiusMeters, ids)
	nearby := FilterWithinRadius(all, req.Center, radius)

	centerHash := utils.EncodeLocation(req.Center, utils.DefaultGeohashPrecision)
	result := &models.NearbyDriversResult{
		Center:         req.Center,
		CenterGeohash:  centerHash,
		NeighborHashes: utils.GetNeighbors(centerHash),
		RadiusMeters:   radius,
		AllDrivers:     all,
		NearbyDrivers:  nearby,
	}
	uc.metrics.ObserveDriverSearch(len(all), len(nearby))

	if req.CaptureOnce {
		ttl := time.Duration(uc.cfg.SnapshotTTLSeconds) * time.Second
		if err := uc.driverRepo.SaveSnapshot(ctx, req.SessionID, result, ttl); err != nil {
			return nil, fmt.Errorf("failed to save driver snapshot: %w", err)
		}
	}

	logger.Debug("Simulated nearby drivers",
		logger.String("center_geohash", centerHash),
		logger.Float64("radius_m", radius),
		logger.Int("generated", len(all)),
		logger.Int("nearby", len(nearby)))

	return result, nil
}

// UpdateDriverLocation records a position reported by the live feed
func (uc *DriverUC) UpdateDriverLocation(ctx context.Context, driverID string, location models.Coordinate) error {
	if driverID == "" {
		return drivers.ErrDriverIDRequired
	}
	if !location.IsValid() {
		return drivers.ErrInvalidCoordinate
	}

	update := models.LocationUpdate{
		DriverID:  driverID,
		Location:  location,
		CreatedAt: time.Now(),
	}
	if err := uc.driverRepo.StoreLocation(ctx, update); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return nil
}

// GetDriverLocation returns the last reported position of a driver
func (uc *DriverUC) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverRecord, error) {
	if driverID == "" {
		return nil, drivers.ErrDriverIDRequired
	}
	record, err := uc.driverRepo.GetLocation(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, drivers.ErrDriverNotFound
	}
	return record, nil
}

// RemoveDriver takes a driver off the live feed when they go offline
func (uc *DriverUC) RemoveDriver(ctx context.Context, driverID string) error {
	if driverID == "" {
		return drivers.ErrDriverIDRequired
	}
	if err := uc.driverRepo.RemoveLocation(ctx, driverID); err != nil {
		return fmt.Errorf("failed to remove driver: %w", err)
	}
	logger.Info("Driver removed from live feed", logger.String("driver_id", driverID))
	return nil
}

// FindDriversWithinRadius queries the live feed and re-checks each hit with
// the haversine filter so both paths agree on what "within" means
func (uc *DriverUC) FindDriversWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error) {
	if !center.IsValid() {
		return nil, drivers.ErrInvalidCoordinate
	}
	if !validRadius(radiusMeters) {
		return nil, drivers.ErrInvalidRadius
	}

	candidates, err := uc.driverRepo.FindWithinRadius(ctx, center, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver locations: %w", err)
	}
	return FilterWithinRadius(candidates, center, radiusMeters), nil
}

// validRadius rejects zero, negative and non-finite radii; query binding
// accepts "NaN" and "Inf"
func validRadius(meters float64) bool {
	return meters > 0 && !math.IsInf(meters, 0)
}
