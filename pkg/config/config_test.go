package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/penbot/penbot-web/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "")
	t.Setenv("SESSION_TOKEN_KEY", "")
	t.Setenv("NATS_ENABLED", "")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "https://www.penbot.site", cfg.Backend.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	require.Equal(t, "jwt", cfg.Session.TokenKey)
	require.Equal(t, 6, cfg.Booking.MinHeadcount)
	require.Equal(t, 15, cfg.Booking.MaxHeadcount)
	require.False(t, cfg.NATS.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "http://localhost:8081")
	t.Setenv("BACKEND_TIMEOUT", "10s")
	t.Setenv("BOOKING_MAX_HEADCOUNT", "20")
	t.Setenv("NATS_ENABLED", "true")

	cfg := config.Load()

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "http://localhost:8081", cfg.Backend.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	require.Equal(t, 20, cfg.Booking.MaxHeadcount)
	require.True(t, cfg.NATS.Enabled)
}

func TestLoadEmptyValueFallsBack(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TOKEN_KEY", "")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "jwt", cfg.Session.TokenKey)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")
	t.Setenv("BOOKING_MIN_HEADCOUNT", "six")

	cfg := config.Load()

	require.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	require.Equal(t, 6, cfg.Booking.MinHeadcount)
}
