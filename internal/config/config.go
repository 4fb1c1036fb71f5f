// Package config loads client settings from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ngmaloney/wandersoul/internal/database"
)

// Config holds everything the client needs to start
type Config struct {
	APIBaseURL       string
	UserAgent        string
	DataDir          string
	LogFile          string
	LogLevel         string
	DefaultLatitude  float64
	DefaultLongitude float64
	NotificationTTL  time.Duration
	Provision        bool // download zipcode and basemap data on first run
}

// DBPath is the single local database shared by geocoding and the basemap
func (c *Config) DBPath() string {
	return database.Path(c.DataDir)
}

// Load reads .env (if present) and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := &Config{
		APIBaseURL: getEnvOrDefault("WANDERSOUL_API_URL", "http://localhost:8000"),
		UserAgent:  getEnvOrDefault("WANDERSOUL_USER_AGENT", "WanderSoul/1.0 (github.com/ngmaloney/wandersoul)"),
		DataDir:    getEnvOrDefault("WANDERSOUL_DATA_DIR", "data"),
		LogLevel:   getEnvOrDefault("WANDERSOUL_LOG_LEVEL", "info"),
	}
	cfg.LogFile = getEnvOrDefault("WANDERSOUL_LOG_FILE", filepath.Join(cfg.DataDir, "wandersoul.log"))

	var err error
	if cfg.DefaultLatitude, err = getFloatOrDefault("WANDERSOUL_DEFAULT_LAT", 10.5276); err != nil {
		return nil, err
	}
	if cfg.DefaultLongitude, err = getFloatOrDefault("WANDERSOUL_DEFAULT_LON", 76.2144); err != nil {
		return nil, err
	}

	ttl := getEnvOrDefault("WANDERSOUL_NOTIFY_TTL", "3s")
	if cfg.NotificationTTL, err = time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("WANDERSOUL_NOTIFY_TTL: %w", err)
	}

	provision := getEnvOrDefault("WANDERSOUL_PROVISION", "true")
	if cfg.Provision, err = strconv.ParseBool(provision); err != nil {
		return nil, fmt.Errorf("WANDERSOUL_PROVISION: %w", err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
