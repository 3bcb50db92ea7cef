package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.True(t, cfg.Auth.AllowDemoFallback)
	assert.Equal(t, 4, cfg.Auth.MinPasswordLen)
	assert.True(t, cfg.Auth.DemoOTP)

	assert.Equal(t, "/var/lib/launchpad", cfg.Storage.DataDir)
	assert.False(t, cfg.Events.SimulateEvents)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                     "9000",
		"AUTH_ALLOW_DEMO_FALLBACK": "false",
		"AUTH_SESSION_TTL_HOURS":   "8",
		"DATA_DIR":                 "/tmp/launchpad-test",
		"EVENTS_SIMULATE":          "true",
		"LOG_LEVEL":                "debug",
		"RATE_LIMIT_RPS":           "500",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Auth.AllowDemoFallback)
	assert.Equal(t, 8, cfg.Auth.SessionTTLHours)
	assert.Equal(t, "/tmp/launchpad-test", cfg.Storage.DataDir)
	assert.True(t, cfg.Events.SimulateEvents)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("AUTH_SESSION_TTL_HOURS", "not-a-number")
	defer os.Unsetenv("AUTH_SESSION_TTL_HOURS")

	_, err := Load()
	assert.Error(t, err)
}
