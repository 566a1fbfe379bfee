package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// PartnerHandler serves CRUD endpoints for theatre partners.
type PartnerHandler struct {
	Partners *repository.PartnerRepo
}

func NewPartnerHandler(partners *repository.PartnerRepo) *PartnerHandler {
	return &PartnerHandler{Partners: partners}
}

// Create handles POST /api/partners.
func (h *PartnerHandler) Create(c echo.Context) error {
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

	p := &repository.Partner{Name: name}
	if err := h.Partners.Create(c.Request().Context(), p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Get handles GET /api/partners/:id.
func (h *PartnerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.Partners.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /api/partners.
func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.Partners.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, partners)
}

// Update handles PUT /api/partners/:id.
func (h *PartnerHandler) Update(c echo.Context) error {
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

	if err := h.Partners.UpdateName(c.Request().Context(), id, name); err != nil {
		return fail(c, err)
	}
	p, err := h.Partners.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/partners/:id. A partner still owning theatres
// cannot be removed.
func (h *PartnerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Partners.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
