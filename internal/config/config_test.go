package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_TTL_HOURS", "")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenExpires)
	assert.Equal(t, "usd", cfg.StripeCurrency)
	assert.False(t, cfg.OTPDeliveryEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpires)
	assert.True(t, cfg.UseMemoryStore)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.OTPDeliveryEnabled())
	assert.False(t, cfg.IsDevelopment())
}

func TestGetEnvDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_HOURS", "not-a-number")
	assert.Equal(t, time.Duration(5), getEnvDuration("SOME_HOURS", 5))
}
