package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/movie-show-booking/internal/config"
)

// rateScript implements a fixed-window counter: the first request in a
// window creates the key with an expiry, subsequent requests increment it.
// Returns {count, ttl_seconds}.
var rateScript = redis.NewScript(`
	local key = KEYS[1]
	local window = tonumber(ARGV[1])
	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('EXPIRE', key, window)
	end
	local ttl = redis.call('TTL', key)
	return { count, ttl }
`)

// NewRateLimiter limits requests per client IP over a fixed window backed by
// Redis. When the limit is exceeded the request is rejected with 429 and a
// Retry-After header. Redis errors fail open so an outage never takes the
// API down with it.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	windowSecs := int64(cfg.Window.Seconds())
	if windowSecs < 1 {
		windowSecs = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := cfg.KeyPrefix + ip

			ctx := c.Request().Context()
			vals, err := rateScript.Run(ctx, rdb, []string{key}, windowSecs).Int64Slice()
			if err != nil || len(vals) != 2 {
				logrus.WithError(err).Warn("rate limiter unavailable, allowing request")
				return next(c)
			}
			count, ttl := vals[0], vals[1]

			remaining := int64(cfg.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				if ttl < 0 {
					ttl = windowSecs
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(ttl, 10))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
