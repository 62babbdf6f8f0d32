package convert

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/calendars"
)

// Handler serves the calendar listing and conversion REST endpoints.
type Handler struct {
	svc ConvertService
}

// NewHandler creates a new conversion handler.
func NewHandler(svc ConvertService) *Handler {
	return &Handler{svc: svc}
}

// ListCalendars returns metadata for every registered calendar.
// GET /api/v1/calendars
func (h *Handler) ListCalendars(c echo.Context) error {
	descs := h.svc.ListCalendars()
	return c.JSON(http.StatusOK, map[string]any{
		"data":  descs,
		"total": len(descs),
	})
}

// GetCalendar returns metadata for one calendar.
// GET /api/v1/calendars/:id
func (h *Handler) GetCalendar(c echo.Context) error {
	desc, err := h.svc.GetCalendar(calendars.ID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, desc)
}

// Today returns the current date in one calendar.
// GET /api/v1/calendars/:id/today
func (h *Handler) Today(c echo.Context) error {
	resp, err := h.svc.Today(calendars.ID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Convert re-expresses a date in other calendars.
// POST /api/v1/convert
func (h *Handler) Convert(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	resp, err := h.svc.Convert(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Format renders a date against a token layout.
// POST /api/v1/format
func (h *Handler) Format(c echo.Context) error {
	var req FormatRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	resp, err := h.svc.Format(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Parse reads a canonical date string in one or all calendars.
// POST /api/v1/parse
func (h *Handler) Parse(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	resp, err := h.svc.Parse(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
