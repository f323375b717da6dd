package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/flashfood/internal/pkg/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula
	EarthRadiusKm = 6371.0
	// MetersPerDegree is the length of one degree of latitude used by the flat-earth projection
	MetersPerDegree = 111300.0
	// DefaultGeohashPrecision gives cells of roughly 150m x 150m
	DefaultGeohashPrecision uint = 7
)

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(location models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Coordinate {
	latitude, longitude := geohash.Decode(hash)
	return models.Coordinate{Latitude: latitude, Longitude: longitude}
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// DistanceMeters returns the great-circle distance between two points in meters (haversine)
func DistanceMeters(point1, point2 models.Coordinate) float64 {
	lat1 := toRadians(point1.Latitude)
	lat2 := toRadians(point2.Latitude)
	dLat := toRadians(point2.Latitude - point1.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c * 1000
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	return DistanceMeters(point1, point2) / 1000
}

// OffsetByMeters moves a point by distance meters along bearing (radians, 0 = east, counter-clockwise).
//
// This is an equirectangular approximation: good at city scale, increasingly wrong near the
// poles and for distances beyond a few dozen kilometers.
func OffsetByMeters(center models.Coordinate, distance, bearing float64) models.Coordinate {
	latOffset := (distance / MetersPerDegree) * math.Sin(bearing)
	lngOffset := (distance / (MetersPerDegree * math.Cos(toRadians(center.Latitude)))) * math.Cos(bearing)

	return models.Coordinate{
		Latitude:  center.Latitude + latOffset,
		Longitude: center.Longitude + lngOffset,
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
