package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/pkg/metrics"
)

// SessionGuard decides whether a protected view may be entered.
type SessionGuard interface {
	Check(ctx context.Context) (domain.Route, bool, error)
}

// RequireSession redirects to the login view when no credential is held.
// It checks presence only; the backend remains the judge of validity.
func RequireSession(guard SessionGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			redirect, ok, err := guard.Check(c.Request().Context())
			if err != nil {
				return err
			}
			if !ok {
				metrics.GuardDecisionsTotal.WithLabelValues("redirected").Inc()
				return c.Redirect(http.StatusFound, string(redirect))
			}
			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
