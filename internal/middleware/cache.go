package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cinebook/movie-show-booking/internal/config"
)

// captureWriter duplicates the response body into a buffer while forwarding
// it to the client, so a successful response can be stored in the cache.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey hashes the route plus raw query so each distinct listing or
// search is cached independently.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s%x", prefix, sum[:])
}

// encodeCached packs the status code ahead of the body bytes.
func encodeCached(status int, body []byte) []byte {
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[:4], uint32(status))
	copy(out[4:], body)
	return out
}

func decodeCached(bs []byte) (status int, body []byte, ok bool) {
	if len(bs) < 4 {
		return 0, nil, false
	}
	return int(binary.BigEndian.Uint32(bs[:4])), bs[4:], true
}

// NewRedisCache returns a middleware caching successful GET responses in
// Redis. Only 200 and 204 responses are stored; anything else passes
// through untouched. With caching disabled or Redis absent it is a no-op.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.KeyPrefix, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, body, ok := decodeCached(bs); ok {
					c.Response().Header().Set("X-Cache", "HIT")
					if len(body) > 0 {
						return c.JSONBlob(status, body)
					}
					return c.NoContent(status)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK || cw.status == http.StatusNoContent {
				payload := encodeCached(cw.status, cw.buf.Bytes())
				_ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
			}
			return nil
		}
	}
}
