package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/middleware"
	"github.com/keyxmakerx/almanac/internal/plugins/almanac"
	"github.com/keyxmakerx/almanac/internal/plugins/convert"
)

// RegisterRoutes sets up all application routes. It registers public routes
// directly and delegates to each plugin's route registration function.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// --- Public Routes ---

	// Health check endpoint for Docker health monitoring. Pings Redis when
	// the shared cache is configured; the engine itself has no backing
	// state to probe.
	e.GET("/healthz", a.healthz)

	// --- API Routes ---
	// All conversion and almanac endpoints live under /api/v1 behind a
	// per-IP rate limit.
	api := e.Group("/api/v1", middleware.RateLimit(120, time.Minute))

	convertSvc := convert.NewConvertService(a.Engine)
	convert.RegisterRoutes(api, convert.NewHandler(convertSvc))

	almanacSvc := almanac.NewAlmanacService(a.Engine)
	almanac.RegisterRoutes(api, almanac.NewHandler(almanacSvc))
}

// healthz reports service liveness. Redis trouble is reported but does not
// fail the check: the engine degrades to per-process caching.
func (a *App) healthz(c echo.Context) error {
	status := map[string]string{"status": "ok"}

	if a.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			status["cache"] = "unreachable"
		} else {
			status["cache"] = "ok"
		}
	}

	return c.JSON(http.StatusOK, status)
}
