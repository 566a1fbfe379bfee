package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionalEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "hello")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BAD_INT", "forty-two")
	t.Setenv("X_BOOL_ON", "on")
	t.Setenv("X_BOOL_OFF", "0")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_BAD_DUR", "soon")

	assert.Equal(t, "hello", getenv("X_STR", "fallback"))
	assert.Equal(t, "fallback", getenv("X_UNSET", "fallback"))

	assert.Equal(t, 42, envInt("X_INT", 7))
	assert.Equal(t, 7, envInt("X_BAD_INT", 7))
	assert.Equal(t, 7, envInt("X_UNSET", 7))

	assert.True(t, envBool("X_BOOL_ON", false))
	assert.False(t, envBool("X_BOOL_OFF", true))
	assert.True(t, envBool("X_UNSET", true))

	assert.Equal(t, 90*time.Second, envDur("X_DUR", time.Minute))
	assert.Equal(t, time.Minute, envDur("X_BAD_DUR", time.Minute))
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache:", cfg.KeyPrefix)
}

func TestLoadRateLimitConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "5s")

	cfg := LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 5*time.Second, cfg.Window)
}
