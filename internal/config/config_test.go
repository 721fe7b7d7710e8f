package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amc-activities/eventlist/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "MAX_BODY_BYTES", "TIMEZONE", "DETAILS_URL"} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that every value falls back to its default when
// nothing is set.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:8000"}, cfg.CORSOrigins)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, "America/New_York", cfg.Location.String())
	require.Empty(t, cfg.DetailsURL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://amcboston.org, https://amcnh.org")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DETAILS_URL", "https://example.org/trip/")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://amcboston.org", "https://amcnh.org"}, cfg.CORSOrigins)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
	require.Equal(t, "UTC", cfg.Location.String())
	require.Equal(t, "https://example.org/trip/", cfg.DetailsURL)
}

// TestLoad_invalidValues verifies that every bad variable is named in one error.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BODY_BYTES", "-5")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
	require.ErrorContains(t, err, "TIMEZONE")
}

func TestLoad_nonNumericBodySize(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BODY_BYTES", "1MB")

	_, err := config.Load()

	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}
