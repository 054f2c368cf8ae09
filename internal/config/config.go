package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort    string
	PublicBaseURL string
	MarkerSecret  string

	// GeofenceRadiusM is the maximum accepted distance from the session
	// anchor. Reference deployments use 100m, stricter ones 50m.
	GeofenceRadiusM float64

	// RequireFreshDevice rejects submissions from devices holding a live
	// marker for the session. UniqueOriginAddress rejects repeat network
	// addresses; it is a heuristic and false-positives behind NAT.
	RequireFreshDevice  bool
	UniqueOriginAddress bool

	// PurgeOnExport deletes a session right after a successful export.
	PurgeOnExport bool
}

func Load() *Config {
	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MarkerSecret:        getEnv("MARKER_SECRET", "dev-marker-secret-change-me"),
		GeofenceRadiusM:     getEnvFloat("GEOFENCE_RADIUS_M", 100),
		RequireFreshDevice:  getEnvBool("REQUIRE_FRESH_DEVICE", true),
		UniqueOriginAddress: getEnvBool("UNIQUE_ORIGIN_ADDRESS", true),
		PurgeOnExport:       getEnvBool("PURGE_ON_EXPORT", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
