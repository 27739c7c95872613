package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
}

type StoreConfig struct {
	DataFile string
}

type ScheduleConfig struct {
	// StrictWeekFilter turns a malformed week filter into an error
	// instead of silently listing every week.
	StrictWeekFilter bool

	// PlacementDuration is the default task length for drag placements
	// without an explicit end time.
	PlacementDuration time.Duration

	// WeekCacheTTL bounds reuse of resolved week windows.
	WeekCacheTTL time.Duration
}

// Load reads the configuration from the environment, falling back to
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8008"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Store: StoreConfig{
			DataFile: getEnv("DATA_FILE", "schedule.json"),
		},
		Schedule: ScheduleConfig{
			StrictWeekFilter:  getEnvAsBool("STRICT_WEEK_FILTER", false),
			PlacementDuration: getEnvAsDuration("PLACEMENT_DURATION", 2*time.Hour),
			WeekCacheTTL:      getEnvAsDuration("WEEK_CACHE_TTL", 10*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
