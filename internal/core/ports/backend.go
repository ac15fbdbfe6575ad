package ports

import (
	"context"
	"encoding/json"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// AuthBackend is the remote side of the authentication flow.
type AuthBackend interface {
	Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error)
	Token(ctx context.Context, username, password string) (*domain.TokenResponse, error)
}

// VehicleBackend is the remote vehicle collection. An empty credential means
// the request is sent without an Authorization header.
type VehicleBackend interface {
	ListVehicles(ctx context.Context, opts domain.ListOptions) ([]domain.Vehicle, error)
	ListMyVehicles(ctx context.Context, cred domain.Credential) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, cred domain.Credential, in domain.VehicleInput) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, cred domain.Credential, id int64, in domain.VehicleInput) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, cred domain.Credential, id int64) error
}
