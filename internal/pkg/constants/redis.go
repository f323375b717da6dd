package constants

// Redis key formats
const (
	// Drivers Service
	KeyDriverLocation = "driver:location:%s"  // Format: driver:location:{driver_id}
	KeyDriverGeo      = "drivers:geo"         // GeoHash set of all driver locations
	KeyDriverSnapshot = "drivers:snapshot:%s" // Format: drivers:snapshot:{session_id}

	// Cart Service
	KeyCartItems           = "cart:items:%s"     // Format: cart:items:{customer_id}
	KeyFavoriteRestaurants = "cart:favorites:%s" // Format: cart:favorites:{customer_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
