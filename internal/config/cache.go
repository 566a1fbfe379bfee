package config

import "time"

// CacheConfig controls the Redis response cache applied to public GET
// endpoints.
type CacheConfig struct {
	Enabled   bool
	TTL       time.Duration
	KeyPrefix string
}

// LoadCacheConfig reads cache settings from the environment. Defaults keep
// the cache on with a short TTL so listing endpoints stay fresh.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:   envBool("CACHE_ENABLED", true),
		TTL:       envDur("CACHE_TTL", 30*time.Second),
		KeyPrefix: getenv("CACHE_PREFIX", "cache:"),
	}
}
