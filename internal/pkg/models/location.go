package models

import (
	"math"
	"time"
)

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// IsValid reports whether both components are finite and inside the WGS84 ranges
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// LocationUpdate represents a driver location report from the live feed
type LocationUpdate struct {
	DriverID  string     `json:"driver_id"`
	Location  Coordinate `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
}
