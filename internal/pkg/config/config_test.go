//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"table-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "9000")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, "America/Chicago", cfg.Booking.TimeZone)
		assert.Equal(t, time.Second, cfg.Booking.SubmitLatency)
		assert.InDelta(t, 0.95, cfg.Booking.SuccessRate, 1e-9)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
	})

	t.Run("dotenv file fills missing variables", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7000\nBOOKING_SUBMIT_SUCCESS_RATE=0.5\n"), 0o600))
		t.Chdir(dir)
		t.Setenv("BOOKING_SUBMIT_LATENCY", "250ms")
		defer os.Unsetenv("PORT")
		defer os.Unsetenv("BOOKING_SUBMIT_SUCCESS_RATE")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "7000", cfg.Server.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.Booking.SubmitLatency)
		assert.InDelta(t, 0.5, cfg.Booking.SuccessRate, 1e-9)
	})

	t.Run("out of range success rate", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "9000")
		t.Setenv("BOOKING_SUBMIT_SUCCESS_RATE", "1.5")

		_, err := config.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOOKING_SUBMIT_SUCCESS_RATE")
	})
}

func TestBookingLocation(t *testing.T) {
	loc, err := config.BookingConfig{TimeZone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	loc, err = config.BookingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = config.BookingConfig{TimeZone: "Mars/Olympus"}.Location()
	require.Error(t, err)
}
