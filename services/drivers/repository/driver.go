package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/piresc/flashfood/internal/pkg/constants"
	"github.com/piresc/flashfood/internal/pkg/database"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
)

// locationTTL drops drivers that stopped reporting from the per-driver hash.
// The geo set has no per-member expiry, so FindWithinRadius prunes members
// whose hash is gone.
const locationTTL = 30 * time.Minute

// DriverRepo implements the driver repository on Redis
type DriverRepo struct {
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{redisClient: redisClient}
}

// SaveSnapshot stores a search result for a session
func (r *DriverRepo) SaveSnapshot(ctx context.Context, sessionID string, result *models.NearbyDriversResult, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyDriverSnapshot, sessionID)
	if err := r.redisClient.SetJSON(ctx, key, result, ttl); err != nil {
		return fmt.Errorf("failed to store driver snapshot: %w", err)
	}
	return nil
}

// GetSnapshot loads the search result captured for a session
func (r *DriverRepo) GetSnapshot(ctx context.Context, sessionID string) (*models.NearbyDriversResult, error) {
	key := fmt.Sprintf(constants.KeyDriverSnapshot, sessionID)
	var result models.NearbyDriversResult
	found, err := r.redisClient.GetJSON(ctx, key, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver snapshot: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &result, nil
}

// StoreLocation adds the driver to the geo set and refreshes its location hash
func (r *DriverRepo) StoreLocation(ctx context.Context, update models.LocationUpdate) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo,
		update.Location.Longitude, update.Location.Latitude, update.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to geo set: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, update.DriverID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  update.Location.Latitude,
		constants.FieldLongitude: update.Location.Longitude,
		constants.FieldGeohash:   utils.EncodeLocation(update.Location, utils.DefaultGeohashPrecision),
		constants.FieldTimestamp: update.CreatedAt.Unix(),
	}
	if err := r.redisClient.StoreHash(ctx, key, fields, locationTTL); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return nil
}

// RemoveLocation takes a driver off the live feed
func (r *DriverRepo) RemoveLocation(ctx context.Context, driverID string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo set: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID)); err != nil {
		return fmt.Errorf("failed to delete driver location: %w", err)
	}
	return nil
}

// GetLocation reads the last reported position of a driver, nil when unknown
func (r *DriverRepo) GetLocation(ctx context.Context, driverID string) (*models.DriverRecord, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}

	return &models.DriverRecord{
		ID:       driverID,
		Location: models.Coordinate{Latitude: lat, Longitude: lng},
		Geohash:  fields[constants.FieldGeohash],
	}, nil
}

// FindWithinRadius returns drivers from the geo set within radiusMeters, nearest first
func (r *DriverRepo) FindWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		center.Longitude, center.Latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	keys := make([]string, len(hits))
	for i, hit := range hits {
		keys[i] = fmt.Sprintf(constants.KeyDriverLocation, hit.Name)
	}
	live, err := r.redisClient.ExistsEach(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to check driver freshness: %w", err)
	}

	records := make([]models.DriverRecord, 0, len(hits))
	var stale []string
	for i, hit := range hits {
		if !live[i] {
			stale = append(stale, hit.Name)
			continue
		}
		location := models.Coordinate{Latitude: hit.Latitude, Longitude: hit.Longitude}
		records = append(records, models.DriverRecord{
			ID:       hit.Name,
			Location: location,
			Geohash:  utils.EncodeLocation(location, utils.DefaultGeohashPrecision),
		})
	}

	if len(stale) > 0 {
		if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, stale...); err != nil {
			logger.Warn("Failed to prune stale drivers",
				logger.Int("count", len(stale)),
				logger.Err(err))
		} else {
			logger.Debug("Pruned stale drivers from geo set",
				logger.Int("count", len(stale)))
		}
	}
	return records, nil
}
