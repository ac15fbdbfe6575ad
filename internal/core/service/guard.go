package service

import (
	"context"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// Guard decides whether the dashboard may be entered.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

// Check returns ok when a credential is present. Otherwise it returns the
// route the caller must be redirected to.
func (g *Guard) Check(ctx context.Context) (redirect domain.Route, ok bool, err error) {
	active, err := g.session.Active(ctx)
	if err != nil {
		return "", false, err
	}
	if !active {
		return domain.RouteLogin, false, nil
	}
	return "", true, nil
}
