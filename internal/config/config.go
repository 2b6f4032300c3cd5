package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration, loaded from environment
// variables with sensible defaults for local development.
type Config struct {
	Port       string
	DataDir    string // directory holding the raw CSV datasets
	DBPath     string // sqlite geocode cache; empty disables the cache
	JWTSecret  string
	CacheTTL   time.Duration // measurement table memoization window
	SessionTTL time.Duration // idle session expiry
}

// Load reads the configuration from the environment.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data/raw"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/geocodes.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:       port,
		DataDir:    dataDir,
		DBPath:     dbPath,
		JWTSecret:  jwtSecret,
		CacheTTL:   durationEnv("CACHE_TTL_SECONDS", 300),
		SessionTTL: durationEnv("SESSION_TTL_SECONDS", 3600),
	}
}

func durationEnv(name string, defaultSeconds int) time.Duration {
	if raw := os.Getenv(name); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
