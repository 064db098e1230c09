package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.RateLimitEnabled)

	assert.Equal(t, 365*24*time.Hour, cfg.Cache.MaxAge)
	assert.Equal(t, []string{"css", "js", "svg", "webp", "woff2", "png"}, cfg.Cache.Extensions)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, 9090, cfg.MetricsPort())
	assert.Equal(t, 8080, cfg.ServerPort())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("CACHE_MAX_AGE", "24h")
	t.Setenv("CACHE_EXTENSIONS", "css, js")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.ServerPort())
	assert.Equal(t, 24*time.Hour, cfg.Cache.MaxAge)
	assert.Equal(t, []string{"css", "js"}, cfg.Cache.Extensions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Server.RateLimitEnabled)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	// Unparseable values fall back to defaults rather than failing.
	t.Setenv("CACHE_MAX_AGE", "not-a-duration")
	t.Setenv("COMPRESS_LEVEL", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 365*24*time.Hour, cfg.Cache.MaxAge)
	assert.Equal(t, 5, cfg.Server.CompressLevel)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
