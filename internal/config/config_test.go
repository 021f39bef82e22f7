package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SeedSet)
	assert.True(t, cfg.PhotoEnabled)
	assert.Equal(t, 5*time.Second, cfg.PhotoTimeout)
	assert.Equal(t, 15*time.Minute, cfg.PhotoCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("RANDOM_SEED", "424242")
	t.Setenv("PHOTO_ENABLED", "false")
	t.Setenv("PHOTO_TIMEOUT", "2s")
	t.Setenv("PHOTO_CACHE_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, uint64(424242), cfg.RandomSeed)
	assert.False(t, cfg.PhotoEnabled)
	assert.Equal(t, 2*time.Second, cfg.PhotoTimeout)
	assert.Equal(t, time.Hour, cfg.PhotoCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativePhotoTimeout(t *testing.T) {
	t.Setenv("PHOTO_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PHOTO_TIMEOUT")
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("RANDOM_SEED", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RANDOM_SEED")
}
