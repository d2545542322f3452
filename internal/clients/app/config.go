package app

import (
	"os"
	"strconv"
	"time"
)

// Store drivers selectable through CLIENTS_DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	DatabaseDriver      string        // Optional: sqlite, postgres or memory (default: sqlite)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./clients.db)
	DatabaseURL         string        // Required for postgres: connection string
	Seed                bool          // Optional: load demo clients into an empty store (default: true)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	ReadHeaderTimeout   time.Duration // Time allowed to read request headers (default: 3s)
}

func LoadConfig() Config {
	return Config{
		DatabaseDriver:      getEnvOrDefault("CLIENTS_DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:        getEnvOrDefault("CLIENTS_DATABASE_FILE", "clients.db"),
		DatabaseURL:         os.Getenv("CLIENTS_DATABASE_URL"),
		Seed:                getEnvBoolOrDefault("CLIENTS_SEED", true),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		ReadHeaderTimeout:   getEnvDurationOrDefault("READ_HEADER_TIMEOUT", 3*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
