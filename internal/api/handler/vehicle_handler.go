package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
)

// VehicleHandler serves the public listing view.
type VehicleHandler struct {
	vehicles ports.VehicleService
}

func NewVehicleHandler(vehicles ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List handles GET /vehicles. No credential is sent.
//
// @Summary      List every vehicle
// @Tags         vehicles
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Maximum rows"
// @Success      200    {object}  vehicleListResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	vehicles, err := h.vehicles.ListAll(requestContext(c), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newVehicleList(vehicles))
}

func listOptions(c echo.Context) (domain.ListOptions, error) {
	var opts domain.ListOptions
	for name, dst := range map[string]*int{"skip": &opts.Skip, "limit": &opts.Limit} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.ListOptions{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
		}
		*dst = n
	}
	return opts, nil
}
