package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "CAROUSEL_INTERVAL", "LOCALE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.CarouselInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "es-CL", cfg.LanguageTag().String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CAROUSEL_INTERVAL", "2s")
	t.Setenv("LOCALE", "en-US")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 2*time.Second, cfg.CarouselInterval)
	assert.Equal(t, "en-US", cfg.LanguageTag().String())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env:")
}

func TestLoad_NonPositiveInterval(t *testing.T) {
	t.Setenv("CAROUSEL_INTERVAL", "0s")

	_, err := Load()
	assert.ErrorContains(t, err, "CAROUSEL_INTERVAL")
}

func TestLoad_InvalidLocale(t *testing.T) {
	t.Setenv("LOCALE", "not a locale!")

	_, err := Load()
	assert.ErrorContains(t, err, "LOCALE")
}
