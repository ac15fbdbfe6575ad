package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/pkg/requestid"
)

func TestRequestContext_CarriesRequestID(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/vehicles", nil), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-42")

	if got := requestid.From(requestContext(c)); got != "req-42" {
		t.Fatalf("expected req-42, got %q", got)
	}
}

func TestVehicleID(t *testing.T) {
	e := newTestEcho()
	for _, raw := range []string{"0", "-3", "x"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)

		_, err := vehicleID(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %v", raw, err)
		}
	}
}
