// Package middleware provides reusable HTTP middleware: authentication,
// role checks, response caching, rate limiting and request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with HS256 and the given secret. On success it stores the subject
// and role under the "user_id" and "role" context keys and attaches an
// auth.Actor to the request context so services can enforce ownership
// without depending on Echo.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			actor := actorFromClaims(claims)
			c.Set("user_id", actor.Subject)
			c.Set("role", actor.Role)

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithActor(req.Context(), actor)))
			return next(c)
		}
	}
}

// actorFromClaims maps the token claims onto an Actor. Numeric claims come
// back from encoding/json as float64.
func actorFromClaims(claims jwt.MapClaims) auth.Actor {
	a := auth.Actor{}
	if sub, ok := claims["sub"].(string); ok {
		a.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		a.Role = role
	}
	if pid, ok := claims["partner_id"].(float64); ok && pid > 0 {
		a.PartnerID = uint64(pid)
	}
	return a
}
