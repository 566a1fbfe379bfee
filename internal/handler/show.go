package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// ShowService is what the show handlers need from the show lifecycle
// service.
type ShowService interface {
	Create(ctx context.Context, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error)
	Update(ctx context.Context, id, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*repository.ShowRow, error)
	List(ctx context.Context) ([]repository.ShowRow, error)
	Search(ctx context.Context, movieTitle, cityName string, date time.Time) ([]repository.ShowRow, error)
}

// ShowHandler serves the show lifecycle and search endpoints.
type ShowHandler struct {
	Shows ShowService
}

func NewShowHandler(shows ShowService) *ShowHandler {
	return &ShowHandler{Shows: shows}
}

type showRequest struct {
	MovieID   uint64    `json:"movieId"`
	TheatreID uint64    `json:"theatreId"`
	ShowTime  time.Time `json:"showTime"`
}

func (r *showRequest) validate() string {
	if r.MovieID == 0 {
		return "movieId is required"
	}
	if r.TheatreID == 0 {
		return "theatreId is required"
	}
	if r.ShowTime.IsZero() {
		return "showTime is required"
	}
	return ""
}

// Create handles POST /api/shows.
func (h *ShowHandler) Create(c echo.Context) error {
	var body showRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	row, err := h.Shows.Create(c.Request().Context(), body.MovieID, body.TheatreID, body.ShowTime)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// Get handles GET /api/shows/:id.
func (h *ShowHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	row, err := h.Shows.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// List handles GET /api/shows.
func (h *ShowHandler) List(c echo.Context) error {
	rows, err := h.Shows.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Search handles GET /api/shows/search?movie=&city=&date=. All three
// parameters are required; date uses the YYYY-MM-DD form. An empty result
// is a 204, not an empty list.
func (h *ShowHandler) Search(c echo.Context) error {
	movie := strings.TrimSpace(c.QueryParam("movie"))
	city := strings.TrimSpace(c.QueryParam("city"))
	rawDate := strings.TrimSpace(c.QueryParam("date"))
	if movie == "" || city == "" || rawDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie, city and date are required"})
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}

	rows, err := h.Shows.Search(c.Request().Context(), movie, city, date)
	if err != nil {
		return fail(c, err)
	}
	if len(rows) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, rows)
}

// Update handles PUT /api/shows/:id. A show whose stored time is still in
// the future and has bookings cannot be changed.
func (h *ShowHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body showRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	row, err := h.Shows.Update(c.Request().Context(), id, body.MovieID, body.TheatreID, body.ShowTime)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// Delete handles DELETE /api/shows/:id, subject to the same future-booking
// restriction as Update.
func (h *ShowHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Shows.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
