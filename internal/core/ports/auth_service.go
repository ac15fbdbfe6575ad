package ports

import (
	"context"
	"encoding/json"

	"github.com/tedcar/rental-console/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) (domain.Route, error)
	Describe(ctx context.Context) (domain.SessionInfo, error)
}
