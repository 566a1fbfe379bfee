// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cinebook/movie-show-booking/internal/auth"
	"github.com/cinebook/movie-show-booking/internal/config"
	"github.com/cinebook/movie-show-booking/internal/handler"
	"github.com/cinebook/movie-show-booking/internal/middleware"
)

// Handlers bundles everything the router registers.
type Handlers struct {
	Cities   *handler.CityHandler
	Partners *handler.PartnerHandler
	Movies   *handler.MovieHandler
	Theatres *handler.TheatreHandler
	Shows    *handler.ShowHandler
	Bookings *handler.BookingHandler
}

// Register mounts all routes under /api. Read endpoints are public and run
// through the Redis response cache; catalog and show mutations require a
// THEATRE_OWNER or ADMIN token. Booking endpoints are public so customers
// can book without an account.
func Register(e *echo.Echo, h Handlers, jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	cached := api.Group("", middleware.NewRedisCache(cacheCfg, rdb))
	cached.GET("/cities", h.Cities.List)
	cached.GET("/cities/:id", h.Cities.Get)
	cached.GET("/partners", h.Partners.List)
	cached.GET("/partners/:id", h.Partners.Get)
	cached.GET("/movies", h.Movies.List)
	cached.GET("/movies/:id", h.Movies.Get)
	cached.GET("/theatres", h.Theatres.List)
	cached.GET("/theatres/:id", h.Theatres.Get)
	cached.GET("/shows", h.Shows.List)
	cached.GET("/shows/search", h.Shows.Search)
	cached.GET("/shows/:id", h.Shows.Get)

	// booking reads bypass the cache so customers always see live state
	api.GET("/bookings/:id", h.Bookings.Get)
	api.GET("/shows/:id/bookings", h.Bookings.ListByShow)
	api.POST("/shows/:id/bookings", h.Bookings.Create)
	api.DELETE("/bookings/:id", h.Bookings.Cancel)

	admin := api.Group("",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(auth.RoleTheatreOwner, auth.RoleAdmin),
	)
	admin.POST("/cities", h.Cities.Create)
	admin.PUT("/cities/:id", h.Cities.Update)
	admin.DELETE("/cities/:id", h.Cities.Delete)
	admin.POST("/partners", h.Partners.Create)
	admin.PUT("/partners/:id", h.Partners.Update)
	admin.DELETE("/partners/:id", h.Partners.Delete)
	admin.POST("/movies", h.Movies.Create)
	admin.PUT("/movies/:id", h.Movies.Update)
	admin.DELETE("/movies/:id", h.Movies.Delete)
	admin.POST("/theatres", h.Theatres.Create)
	admin.PUT("/theatres/:id", h.Theatres.Update)
	admin.DELETE("/theatres/:id", h.Theatres.Delete)
	admin.POST("/shows", h.Shows.Create)
	admin.PUT("/shows/:id", h.Shows.Update)
	admin.DELETE("/shows/:id", h.Shows.Delete)
}
