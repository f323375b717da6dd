package usecase

import (
	"math"
	"math/rand"
	"sync"

	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
)

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// lockedRand makes a *rand.Rand safe for concurrent requests
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe source seeded with seed
func NewRandomSource(seed int64) RandomSource {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// GenerateDrivers places one driver per id at a random bearing and a random
// distance in [0, expandedRadiusMeters] from center. Positions come from the
// equirectangular projection in utils.OffsetByMeters, so they drift from the
// true great-circle distance near the poles and at radii beyond a few dozen km.
func GenerateDrivers(rng RandomSource, center models.Coordinate, expandedRadiusMeters float64, driverIDs []string) []models.DriverRecord {
	drivers := make([]models.DriverRecord, 0, len(driverIDs))
	for _, id := range driverIDs {
		bearing := rng.Float64() * 2 * math.Pi
		distance := rng.Float64() * expandedRadiusMeters

		location := utils.OffsetByMeters(center, distance, bearing)
		drivers = append(drivers, models.DriverRecord{
			ID:       id,
			Location: location,
			Geohash:  utils.EncodeLocation(location, utils.DefaultGeohashPrecision),
		})
	}
	return drivers
}

// FilterWithinRadius keeps the drivers whose haversine distance to center is
// at most radiusMeters, in their original order. The input is not modified.
func FilterWithinRadius(drivers []models.DriverRecord, center models.Coordinate, radiusMeters float64) []models.DriverRecord {
	nearby := make([]models.DriverRecord, 0, len(drivers))
	for _, d := range drivers {
		if utils.DistanceMeters(center, d.Location) <= radiusMeters {
			nearby = append(nearby, d)
		}
	}
	return nearby
}
