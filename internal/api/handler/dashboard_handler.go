package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/core/ports"
)

// DashboardHandler serves the owner's management view. Every route sits
// behind the session guard.
type DashboardHandler struct {
	vehicles ports.VehicleService
}

func NewDashboardHandler(vehicles ports.VehicleService) *DashboardHandler {
	return &DashboardHandler{vehicles: vehicles}
}

// List handles GET /dashboard/vehicles.
//
// @Summary      List the caller's vehicles
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  vehicleListResponse
// @Failure      302
// @Failure      401  {object}  ErrorResponse
// @Router       /dashboard/vehicles [get]
func (h *DashboardHandler) List(c echo.Context) error {
	vehicles, err := h.vehicles.ListMine(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newVehicleList(vehicles))
}

// Get handles GET /dashboard/vehicles/:id, used to prefill the edit form.
//
// @Summary      Get one of the caller's vehicles
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle id"
// @Success      200  {object}  domain.Vehicle
// @Failure      404  {object}  ErrorResponse
// @Router       /dashboard/vehicles/{id} [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	id, err := vehicleID(c)
	if err != nil {
		return err
	}
	v, err := h.vehicles.FindMine(requestContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Create handles POST /dashboard/vehicles. The owned list is refreshed only
// after the create has completed.
//
// @Summary      Create a vehicle
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vehicleForm  true  "Vehicle"
// @Success      201   {object}  mutationResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /dashboard/vehicles [post]
func (h *DashboardHandler) Create(c echo.Context) error {
	var form vehicleForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return err
	}

	ctx := requestContext(c)
	created, err := h.vehicles.Create(ctx, form.input())
	if err != nil {
		return err
	}
	vehicles, err := h.vehicles.ListMine(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, mutationResponse{Vehicle: created, Vehicles: nonNil(vehicles)})
}

// Update handles PUT /dashboard/vehicles/:id with the full form.
//
// @Summary      Replace a vehicle
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Vehicle id"
// @Param        body  body      vehicleForm  true  "Vehicle"
// @Success      200   {object}  mutationResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /dashboard/vehicles/{id} [put]
func (h *DashboardHandler) Update(c echo.Context) error {
	id, err := vehicleID(c)
	if err != nil {
		return err
	}
	var form vehicleForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return err
	}

	ctx := requestContext(c)
	updated, err := h.vehicles.Update(ctx, id, form.input())
	if err != nil {
		return err
	}
	vehicles, err := h.vehicles.ListMine(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mutationResponse{Vehicle: updated, Vehicles: nonNil(vehicles)})
}

// Delete handles DELETE /dashboard/vehicles/:id.
//
// @Summary      Delete a vehicle
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle id"
// @Success      200  {object}  mutationResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /dashboard/vehicles/{id} [delete]
func (h *DashboardHandler) Delete(c echo.Context) error {
	id, err := vehicleID(c)
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	if err := h.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	vehicles, err := h.vehicles.ListMine(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mutationResponse{Vehicles: nonNil(vehicles)})
}
