package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultDriverIDs is the roster used by the simulator when SIMULATOR_DRIVER_IDS is not set
var DefaultDriverIDs = []string{
	"DRI_1bcb34fa-ac9d-4611-b432-4e05586e137c",
	"DRI_5b0e7a52-2f5c-4d8e-9a51-3c0f6f2d9b17",
	"DRI_8e4d1c3a-6b7f-4e2a-b0c9-71d5a2e8f364",
	"DRI_c27f9e05-d413-4b6a-8f2e-5a9b0c7d1e48",
	"DRI_f6a3b8d1-09e2-47c5-a6d4-2e8c1b5f7a93",
}

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "flashfood")
	v.SetDefault("DRIVERS_SERVICE_URL", "http://localhost:9991")
	v.SetDefault("ORDERS_SERVICE_URL", "http://localhost:9993")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SIMULATOR_SEARCH_RADIUS_METERS", 1000.0)
	v.SetDefault("SIMULATOR_EXTRA_RADIUS_METERS", 1000.0)
	v.SetDefault("SIMULATOR_TOTAL_DRIVERS", 5)
	v.SetDefault("SIMULATOR_SNAPSHOT_TTL_SECONDS", 600)
	v.SetDefault("CHECKOUT_DELIVERY_FEE", 2.0)
	v.SetDefault("CHECKOUT_SERVICE_FEE", 1.0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 60)
	v.SetDefault("RATE_LIMIT_PERIOD_SECONDS", 60)

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = splitList(v.GetString("NSQ_LOOKUPD_ADDRESS"))

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API keys for internal routes
	configs.APIKey.DriversService = v.GetString("DRIVERS_SERVICE_API_KEY")
	configs.APIKey.CartService = v.GetString("CART_SERVICE_API_KEY")
	configs.APIKey.OrdersService = v.GetString("ORDERS_SERVICE_API_KEY")

	// Services config
	configs.Services.DriversServiceURL = v.GetString("DRIVERS_SERVICE_URL")
	configs.Services.OrdersServiceURL = v.GetString("ORDERS_SERVICE_URL")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Format = v.GetString("LOG_FORMAT")

	// Simulator config
	configs.Simulator.SearchRadiusMeters = v.GetFloat64("SIMULATOR_SEARCH_RADIUS_METERS")
	configs.Simulator.ExtraRadiusMeters = v.GetFloat64("SIMULATOR_EXTRA_RADIUS_METERS")
	configs.Simulator.TotalDrivers = v.GetInt("SIMULATOR_TOTAL_DRIVERS")
	configs.Simulator.SnapshotTTLSeconds = v.GetInt("SIMULATOR_SNAPSHOT_TTL_SECONDS")
	configs.Simulator.DriverIDs = splitList(v.GetString("SIMULATOR_DRIVER_IDS"))
	if len(configs.Simulator.DriverIDs) == 0 {
		configs.Simulator.DriverIDs = append([]string(nil), DefaultDriverIDs...)
	}

	// Checkout config
	configs.Checkout.DeliveryFee = v.GetFloat64("CHECKOUT_DELIVERY_FEE")
	configs.Checkout.ServiceFee = v.GetFloat64("CHECKOUT_SERVICE_FEE")

	// Rate limit config
	configs.RateLimit.Requests = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.PeriodSeconds = v.GetInt("RATE_LIMIT_PERIOD_SECONDS")

	return configs
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice reads a comma separated list
func GetEnvAsSlice(key string, defaultValue []string) []string {
	values := splitList(GetEnv(key, ""))
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
