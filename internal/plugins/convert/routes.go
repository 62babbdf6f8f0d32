// Package convert is the calendar-conversion plugin: the REST surface over
// the conversion engine's registry, formatter, and parser.
package convert

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the conversion endpoints to the API group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	// Calendar metadata.
	g.GET("/calendars", h.ListCalendars)
	g.GET("/calendars/:id", h.GetCalendar)
	g.GET("/calendars/:id/today", h.Today)

	// Conversion operations.
	g.POST("/convert", h.Convert)
	g.POST("/format", h.Format)
	g.POST("/parse", h.Parse)
}
