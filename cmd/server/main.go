package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/movie-show-booking/internal/config"
	"github.com/cinebook/movie-show-booking/internal/database"
	"github.com/cinebook/movie-show-booking/internal/handler"
	"github.com/cinebook/movie-show-booking/internal/middleware"
	"github.com/cinebook/movie-show-booking/internal/queue"
	"github.com/cinebook/movie-show-booking/internal/repository"
	"github.com/cinebook/movie-show-booking/internal/router"
	"github.com/cinebook/movie-show-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env directly

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.Env == "dev" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}

	rdb := config.NewRedisClient() // nil when redis is unreachable

	cityRepo := repository.NewCityRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	theatreRepo := repository.NewTheatreRepo(db)
	showRepo := repository.NewShowRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	publisher := queue.NewPublisher()
	showSvc := service.NewShowService(showRepo, movieRepo, theatreRepo, bookingRepo, service.PartnerPolicy{}, nil)
	bookingSvc := service.NewBookingService(bookingRepo, showRepo, publisher, nil)

	go queue.StartBookingConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger())
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	router.Register(e, router.Handlers{
		Cities:   handler.NewCityHandler(cityRepo),
		Partners: handler.NewPartnerHandler(partnerRepo),
		Movies:   handler.NewMovieHandler(movieRepo),
		Theatres: handler.NewTheatreHandler(theatreRepo, cityRepo, partnerRepo),
		Shows:    handler.NewShowHandler(showSvc),
		Bookings: handler.NewBookingHandler(bookingSvc),
	}, cfg.JWTSecret, config.LoadCacheConfig(), rdb)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
