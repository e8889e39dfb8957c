// internal/config/config_test.go

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"contentpulse/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "contentpulse", cfg.Database.Database)
	require.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	require.Equal(t, 10*time.Second, cfg.Analysis.ExternalTimeout)
	require.Equal(t, "calendar", cfg.Planner.EventsTopic)
	require.Equal(t, 6, cfg.Planner.WindowMonths)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SERVER_CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("PLANNER_WINDOW_MONTHS", "3")
	t.Setenv("SIGNAL_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CorsOrigins)
	require.Equal(t, 3, cfg.Planner.WindowMonths)
	require.Equal(t, "test-key", cfg.Signal.APIKey)
}

func TestLoadInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadSucceedsWithoutAPIKeyInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SIGNAL_API_KEY", "")

	// Credential absence degrades to the mock provider downstream; it must
	// never prevent startup.
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Empty(t, cfg.Signal.APIKey)
	require.Equal(t, "production", cfg.Environment)
}
