package almanac

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/apperror"
)

// Handler serves the astronomical almanac REST endpoints.
type Handler struct {
	svc   AlmanacService
	clock func() time.Time
}

// NewHandler creates a new almanac handler.
func NewHandler(svc AlmanacService) *Handler {
	return &Handler{svc: svc, clock: time.Now}
}

// yearParam reads the year query parameter, defaulting to the current year.
func (h *Handler) yearParam(c echo.Context) (int, error) {
	raw := c.QueryParam("year")
	if raw == "" {
		return h.clock().UTC().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewBadRequest("year must be an integer")
	}
	return year, nil
}

// SolarEvents returns the equinoxes and solstices of a year.
// GET /api/v1/almanac/solar-events?year=N
func (h *Handler) SolarEvents(c echo.Context) error {
	year, err := h.yearParam(c)
	if err != nil {
		return err
	}
	resp, err := h.svc.SolarEvents(year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// SolarTerms returns the 24 solar-term boundaries of a year.
// GET /api/v1/almanac/solar-terms?year=N
func (h *Handler) SolarTerms(c echo.Context) error {
	year, err := h.yearParam(c)
	if err != nil {
		return err
	}
	resp, err := h.svc.SolarTerms(year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// MoonPhases returns the principal moon phases of a year.
// GET /api/v1/almanac/moon-phases?year=N
func (h *Handler) MoonPhases(c echo.Context) error {
	year, err := h.yearParam(c)
	if err != nil {
		return err
	}
	resp, err := h.svc.MoonPhases(year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Moon describes the moon on one civil day (today when date is omitted).
// GET /api/v1/almanac/moon?date=YYYY-MM-DD
func (h *Handler) Moon(c echo.Context) error {
	t := h.clock()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperror.NewBadRequest("date must be YYYY-MM-DD")
		}
		t = parsed
	}
	return c.JSON(http.StatusOK, h.svc.Moon(t))
}
