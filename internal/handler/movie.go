package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// MovieHandler serves CRUD endpoints for the movie catalog.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(movies *repository.MovieRepo) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

type movieRequest struct {
	Title           string `json:"title"`
	Language        string `json:"language"`
	Genre           string `json:"genre"`
	DurationMinutes uint32 `json:"durationInMinutes"`
}

func (r *movieRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "title is required"
	}
	if r.DurationMinutes == 0 {
		return "durationInMinutes must be positive"
	}
	return ""
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	var body movieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	m := &repository.Movie{
		Title:           strings.TrimSpace(body.Title),
		Language:        strings.TrimSpace(body.Language),
		Genre:           strings.TrimSpace(body.Genre),
		DurationMinutes: body.DurationMinutes,
	}
	if err := h.Movies.Create(c.Request().Context(), m); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Get handles GET /api/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// List handles GET /api/movies, optionally filtered to an exact
// case-insensitive ?title= match.
func (h *MovieHandler) List(c echo.Context) error {
	if title := strings.TrimSpace(c.QueryParam("title")); title != "" {
		m, err := h.Movies.GetByTitle(c.Request().Context(), title)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, []repository.Movie{*m})
	}
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// Update handles PUT /api/movies/:id.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body movieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	m := &repository.Movie{
		ID:              id,
		Title:           strings.TrimSpace(body.Title),
		Language:        strings.TrimSpace(body.Language),
		Genre:           strings.TrimSpace(body.Genre),
		DurationMinutes: body.DurationMinutes,
	}
	if err := h.Movies.Update(c.Request().Context(), m); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// Delete handles DELETE /api/movies/:id. A movie with scheduled shows
// cannot be removed.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
