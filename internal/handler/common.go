// Package handler contains the HTTP handlers for the booking API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// parseID converts the named path parameter to a uint64 ID.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// parseQueryID converts a query-string value to a uint64 ID.
func parseQueryID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// errorStatus maps domain errors onto HTTP status codes. Unrecognized
// errors become 500s.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrMovieNotFound),
		errors.Is(err, repository.ErrTheatreNotFound),
		errors.Is(err, repository.ErrCityNotFound),
		errors.Is(err, repository.ErrPartnerNotFound),
		errors.Is(err, repository.ErrShowNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrFutureBookings),
		errors.Is(err, repository.ErrSeatTaken),
		errors.Is(err, repository.ErrDuplicateName),
		errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, repository.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// fail writes the JSON error response for a domain error.
func fail(c echo.Context, err error) error {
	status := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(status, echo.Map{"error": msg})
}
