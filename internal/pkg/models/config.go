package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Services  ServicesConfig
	Logger    LoggerConfig
	Simulator SimulatorConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys used for service-to-service calls
type APIKeyConfig struct {
	DriversService string
	CartService    string
	OrdersService  string
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	DriversServiceURL string
	OrdersServiceURL  string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Format   string
}

// SimulatorConfig drives the nearby-driver simulation
type SimulatorConfig struct {
	SearchRadiusMeters float64  `json:"search_radius_meters"`
	ExtraRadiusMeters  float64  `json:"extra_radius_meters"` // added to the search radius when scattering drivers
	TotalDrivers       int      `json:"total_drivers"`
	DriverIDs          []string `json:"driver_ids"`
	SnapshotTTLSeconds int      `json:"snapshot_ttl_seconds"`
}

// CheckoutConfig holds the flat fees added on top of an order subtotal
type CheckoutConfig struct {
	DeliveryFee float64 `json:"delivery_fee"`
	ServiceFee  float64 `json:"service_fee"`
}

// RateLimitConfig caps how many requests a caller may make per period
type RateLimitConfig struct {
	Requests      int
	PeriodSeconds int
}
