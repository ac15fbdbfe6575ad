package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/pkg/requestid"
)

// requestContext returns the context backend calls run under. It ends when
// the view's request does, so a client that goes away cancels its pending
// backend calls, and it carries the request id to the backend.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		ctx = requestid.With(ctx, id)
	}
	return ctx
}

// vehicleID parses the :id path parameter.
func vehicleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid vehicle id")
	}
	return id, nil
}
