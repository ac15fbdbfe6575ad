package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tedcar/rental-console/docs"
	"github.com/tedcar/rental-console/internal/api/handler"
	"github.com/tedcar/rental-console/internal/api/middleware"
	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
	infrahttp "github.com/tedcar/rental-console/internal/infrastructure/http"
	"github.com/tedcar/rental-console/internal/infrastructure/http/handlers"
)

// Dependencies are the services the console views are built on.
type Dependencies struct {
	Auth     ports.AuthService
	Vehicles ports.VehicleService
	Guard    middleware.SessionGuard
	Checks   map[string]handlers.Check
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware("tedcar_console"))

	// --- Operational routes ---
	infrahttp.RegisterProbes(e, deps.Checks)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	toVehicles := func(c echo.Context) error {
		return c.Redirect(http.StatusFound, string(domain.RouteVehicles))
	}

	authHandler := handler.NewAuthHandler(deps.Auth)
	vehicleHandler := handler.NewVehicleHandler(deps.Vehicles)
	dashboardHandler := handler.NewDashboardHandler(deps.Vehicles)

	// --- Public views ---
	e.GET("/", toVehicles)
	e.GET("/vehicles", vehicleHandler.List)
	e.GET("/login", authHandler.LoginView)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterView)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Dashboard (guarded) ---
	dashboard := e.Group(string(domain.RouteDashboard), middleware.RequireSession(deps.Guard))
	dashboard.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, string(domain.RouteDashboard)+"/vehicles")
	})
	dashboard.GET("/vehicles", dashboardHandler.List)
	dashboard.GET("/vehicles/:id", dashboardHandler.Get)
	dashboard.POST("/vehicles", dashboardHandler.Create)
	dashboard.PUT("/vehicles/:id", dashboardHandler.Update)
	dashboard.DELETE("/vehicles/:id", dashboardHandler.Delete)
	dashboard.RouteNotFound("/*", toVehicles)

	// Anything else goes back to the public listing.
	e.RouteNotFound("/*", toVehicles)

	return e
}
