package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

// TheatreHandler serves CRUD endpoints for theatres. Creation and updates
// verify that the referenced city and partner exist so foreign key failures
// surface as 404s instead of raw database errors.
type TheatreHandler struct {
	Theatres *repository.TheatreRepo
	Cities   *repository.CityRepo
	Partners *repository.PartnerRepo
}

func NewTheatreHandler(theatres *repository.TheatreRepo, cities *repository.CityRepo, partners *repository.PartnerRepo) *TheatreHandler {
	return &TheatreHandler{Theatres: theatres, Cities: cities, Partners: partners}
}

type theatreRequest struct {
	Name      string `json:"name"`
	CityID    uint64 `json:"cityId"`
	PartnerID uint64 `json:"partnerId"`
}

func (h *TheatreHandler) checkRefs(c echo.Context, body *theatreRequest) error {
	if _, err := h.Cities.GetByID(c.Request().Context(), body.CityID); err != nil {
		return err
	}
	if _, err := h.Partners.GetByID(c.Request().Context(), body.PartnerID); err != nil {
		return err
	}
	return nil
}

// Create handles POST /api/theatres.
func (h *TheatreHandler) Create(c echo.Context) error {
	var body theatreRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || body.CityID == 0 || body.PartnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, cityId and partnerId are required"})
	}
	if err := h.checkRefs(c, &body); err != nil {
		return fail(c, err)
	}

	t := &repository.Theatre{
		Name:      strings.TrimSpace(body.Name),
		CityID:    body.CityID,
		PartnerID: body.PartnerID,
	}
	if err := h.Theatres.Create(c.Request().Context(), t); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Get handles GET /api/theatres/:id.
func (h *TheatreHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	t, err := h.Theatres.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// List handles GET /api/theatres, optionally filtered by ?cityId=.
func (h *TheatreHandler) List(c echo.Context) error {
	if raw := c.QueryParam("cityId"); raw != "" {
		cityID, err := parseQueryID(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cityId"})
		}
		theatres, err := h.Theatres.ListByCity(c.Request().Context(), cityID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, theatres)
	}
	theatres, err := h.Theatres.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, theatres)
}

// Update handles PUT /api/theatres/:id.
func (h *TheatreHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body theatreRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || body.CityID == 0 || body.PartnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, cityId and partnerId are required"})
	}
	if err := h.checkRefs(c, &body); err != nil {
		return fail(c, err)
	}

	t := &repository.Theatre{
		ID:        id,
		Name:      strings.TrimSpace(body.Name),
		CityID:    body.CityID,
		PartnerID: body.PartnerID,
	}
	if err := h.Theatres.Update(c.Request().Context(), t); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Theatres.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// Delete handles DELETE /api/theatres/:id. A theatre with scheduled shows
// cannot be removed.
func (h *TheatreHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Theatres.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
