package usecase

import (
	"time"

	"github.com/piresc/flashfood/internal/pkg/metrics"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/drivers"
)

// DriverUC implements the driver use case interface
type DriverUC struct {
	cfg        models.SimulatorConfig
	driverRepo drivers.DriverRepo
	rng        RandomSource
	metrics    *metrics.Collector
}

// NewDriverUC creates a new driver use case. A nil rng falls back to a time-seeded source.
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	rng RandomSource,
	collector *metrics.Collector,
) *DriverUC {
	if rng == nil {
		rng = NewRandomSource(time.Now().UnixNano())
	}
	return &DriverUC{
		cfg:        cfg.Simulator,
		driverRepo: driverRepo,
		rng:        rng,
		metrics:    collector,
	}
}
