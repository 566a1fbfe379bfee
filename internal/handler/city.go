package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// CityHandler serves CRUD endpoints for cities.
type CityHandler struct {
	Cities *repository.CityRepo
}

func NewCityHandler(cities *repository.CityRepo) *CityHandler {
	return &CityHandler{Cities: cities}
}

// Create handles POST /api/cities.
func (h *CityHandler) Create(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	city := &repository.City{Name: name}
	if err := h.Cities.Create(c.Request().Context(), city); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

// Get handles GET /api/cities/:id.
func (h *CityHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	city, err := h.Cities.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

// List handles GET /api/cities.
func (h *CityHandler) List(c echo.Context) error {
	cities, err := h.Cities.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// Update handles PUT /api/cities/:id.
func (h *CityHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	if err := h.Cities.UpdateName(c.Request().Context(), id, name); err != nil {
		return fail(c, err)
	}
	city, err := h.Cities.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

// Delete handles DELETE /api/cities/:id. A city still referenced by a
// theatre cannot be removed.
func (h *CityHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Cities.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
