package ports

import (
	"context"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// VehicleService is the resource client used by the views.
type VehicleService interface {
	ListAll(ctx context.Context, opts domain.ListOptions) ([]domain.Vehicle, error)
	ListMine(ctx context.Context) ([]domain.Vehicle, error)
	FindMine(ctx context.Context, id int64) (*domain.Vehicle, error)
	Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}
