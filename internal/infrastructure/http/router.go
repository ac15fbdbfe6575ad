package http

import (
	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/infrastructure/http/handlers"
)

// RegisterProbes mounts the liveness and readiness probes (no guard).
func RegisterProbes(e *echo.Echo, checks map[string]handlers.Check) {
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(checks)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: backend + session store
}
