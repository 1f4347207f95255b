// Package config loads service settings from environment variables and the
// optional YAML sources file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DatabaseURL selects the Postgres store; empty means in-memory.
	DatabaseURL  string
	ExchangeFile string

	DefaultRadiusKm float64

	// Nominatim geocoding configuration.
	GeocodeEnabled   bool
	GeocoderBaseURL  string
	GeocodeTimeout   time.Duration
	GeocodeCacheSize int
	GeocodeCountry   string

	// Scrape run pacing and limits.
	SourcesFile    string
	FeedDelay      time.Duration
	PageDelay      time.Duration
	MaxAlerts      int
	PageAlertLimit int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	geocodeTimeout, err := parseDuration("GEOCODE_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	feedDelay, err := parseDuration("FEED_DELAY", "1s")
	if err != nil {
		return nil, err
	}
	pageDelay, err := parseDuration("PAGE_DELAY", "2s")
	if err != nil {
		return nil, err
	}

	radius, err := parsePositiveFloat("DEFAULT_RADIUS_KM", 200)
	if err != nil {
		return nil, err
	}
	maxAlerts, err := parsePositiveInt("MAX_ALERTS", 5)
	if err != nil {
		return nil, err
	}
	pageLimit, err := parsePositiveInt("PAGE_ALERT_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	cacheSize, err := parsePositiveInt("GEOCODE_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	geocodeEnabled := true
	if v := os.Getenv("GEOCODE_ENABLED"); v != "" {
		geocodeEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ExchangeFile: envOrDefault("EXCHANGE_FILE", "alerts.json"),

		DefaultRadiusKm: radius,

		GeocodeEnabled:   geocodeEnabled,
		GeocoderBaseURL:  os.Getenv("GEOCODER_BASE_URL"),
		GeocodeTimeout:   geocodeTimeout,
		GeocodeCacheSize: cacheSize,
		GeocodeCountry:   envOrDefault("GEOCODE_COUNTRY", "India"),

		SourcesFile:    os.Getenv("SOURCES_FILE"),
		FeedDelay:      feedDelay,
		PageDelay:      pageDelay,
		MaxAlerts:      maxAlerts,
		PageAlertLimit: pageLimit,
	}

	if cfg.ExchangeFile == "" {
		return nil, errors.New("EXCHANGE_FILE is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parsePositiveFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return f, nil
}
