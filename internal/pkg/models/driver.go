package models

// DriverRecord is a driver identity placed at a location
type DriverRecord struct {
	ID       string     `json:"id"`
	Location Coordinate `json:"location"`
	Geohash  string     `json:"geohash,omitempty"`
}

// NearbyDriversRequest asks for a simulated driver population around a point
type NearbyDriversRequest struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
	TotalDrivers int        `json:"total_drivers"`
	SessionID    string     `json:"session_id,omitempty"`
	CaptureOnce  bool       `json:"capture_once"`
}

// NearbyDriversResult carries every generated driver and the ones inside the radius
type NearbyDriversResult struct {
	Center         Coordinate     `json:"center"`
	CenterGeohash  string         `json:"center_geohash"`
	NeighborHashes []string       `json:"neighbor_hashes"`
	RadiusMeters   float64        `json:"radius_meters"`
	AllDrivers     []DriverRecord `json:"all_drivers"`
	NearbyDrivers  []DriverRecord `json:"nearby_drivers"`
	Captured       bool           `json:"captured"`
}
