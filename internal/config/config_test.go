package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 100.0, cfg.GeofenceRadiusM)
	assert.True(t, cfg.RequireFreshDevice)
	assert.True(t, cfg.UniqueOriginAddress)
	assert.False(t, cfg.PurgeOnExport)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEOFENCE_RADIUS_M", "50")
	t.Setenv("REQUIRE_FRESH_DEVICE", "false")
	t.Setenv("PURGE_ON_EXPORT", "true")

	cfg := Load()
	assert.Equal(t, 50.0, cfg.GeofenceRadiusM)
	assert.False(t, cfg.RequireFreshDevice)
	assert.True(t, cfg.PurgeOnExport)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("GEOFENCE_RADIUS_M", "close by")
	t.Setenv("PURGE_ON_EXPORT", "sim")

	cfg := Load()
	assert.Equal(t, 100.0, cfg.GeofenceRadiusM)
	assert.False(t, cfg.PurgeOnExport)
}
