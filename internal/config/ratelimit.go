package config

import "time"

// RateLimitConfig controls the per-client request limiter applied in front
// of the whole API.
type RateLimitConfig struct {
	Enabled   bool
	Limit     int           // requests allowed per window
	Window    time.Duration // window size
	KeyPrefix string
}

// LoadRateLimitConfig reads rate-limit settings from the environment.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:   envBool("RATE_LIMIT_ENABLED", true),
		Limit:     envInt("RATE_LIMIT_REQUESTS", 120),
		Window:    envDur("RATE_LIMIT_WINDOW", time.Minute),
		KeyPrefix: getenv("RATE_LIMIT_PREFIX", "rl:"),
	}
}
