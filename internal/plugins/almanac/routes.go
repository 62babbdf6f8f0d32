// Package almanac is the astronomy plugin: the REST surface over the solar
// event, solar term, and moon phase queries.
package almanac

import "github.com/labstack/echo/v4"

// RegisterRoutes adds the almanac endpoints to the API group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	al := g.Group("/almanac")

	al.GET("/solar-events", h.SolarEvents)
	al.GET("/solar-terms", h.SolarTerms)
	al.GET("/moon-phases", h.MoonPhases)
	al.GET("/moon", h.Moon)
}
