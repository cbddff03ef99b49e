package config

import (
	"os"
	"strconv"
	"time"

	"auction-offers/utils"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            string
	DBBackend       string // "memory" or "sqlite"
	DBPath          string
	JWTSecret       string
	OfferTTL        time.Duration
	SweepInterval   time.Duration
	EnforceBidFloor bool
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		utils.Warn("no .env file found, using environment and defaults", nil)
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBBackend:       getEnv("DB_BACKEND", "memory"),
		DBPath:          getEnv("DB_PATH", "./auction_offers.db"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-only-secret-change-me"),
		OfferTTL:        time.Duration(getEnvInt("OFFER_TTL_HOURS", 48)) * time.Hour,
		SweepInterval:   time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		EnforceBidFloor: getEnvBool("ENFORCE_BID_FLOOR", false),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.Warn("invalid integer env value, using default", map[string]any{"key": key, "value": raw})
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		utils.Warn("invalid boolean env value, using default", map[string]any{"key": key, "value": raw})
		return defaultValue
	}
	return value
}
