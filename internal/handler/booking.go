package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// BookingService is what the booking handlers need from the booking
// service.
type BookingService interface {
	Create(ctx context.Context, showID uint64, customerName string, seats []string) (*repository.Booking, error)
	Get(ctx context.Context, id uint64) (*repository.Booking, error)
	ListByShow(ctx context.Context, showID uint64) ([]repository.Booking, error)
	Cancel(ctx context.Context, id uint64) error
}

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Bookings BookingService
}

func NewBookingHandler(bookings BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// Create handles POST /api/shows/:id/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	showID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		CustomerName string   `json:"customerName"`
		Seats        []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.CustomerName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerName is required"})
	}
	seats := make([]string, 0, len(body.Seats))
	for _, s := range body.Seats {
		if s = strings.TrimSpace(s); s != "" {
			seats = append(seats, s)
		}
	}
	if len(seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one seat is required"})
	}

	b, err := h.Bookings.Create(c.Request().Context(), showID, name, seats)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.Bookings.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// ListByShow handles GET /api/shows/:id/bookings.
func (h *BookingHandler) ListByShow(c echo.Context) error {
	showID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	bookings, err := h.Bookings.ListByShow(c.Request().Context(), showID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Cancel handles DELETE /api/bookings/:id. Cancellation frees the seats
// for rebooking but keeps the record with CANCELLED status.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Bookings.Cancel(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
