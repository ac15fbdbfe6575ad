package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
)

// VehicleService is the resource client for the vehicle collection. It does
// no local authorization: a missing credential simply means the request goes
// out without an Authorization header and the backend decides.
type VehicleService struct {
	backend ports.VehicleBackend
	session *Session
	logger  zerolog.Logger
}

func NewVehicleService(backend ports.VehicleBackend, session *Session, logger zerolog.Logger) *VehicleService {
	return &VehicleService{backend: backend, session: session, logger: logger}
}

func (s *VehicleService) ListAll(ctx context.Context, opts domain.ListOptions) ([]domain.Vehicle, error) {
	return s.backend.ListVehicles(ctx, opts)
}

func (s *VehicleService) ListMine(ctx context.Context) ([]domain.Vehicle, error) {
	cred, err := s.session.Credential(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.ListMyVehicles(ctx, cred)
}

// FindMine returns one of the caller's vehicles. The backend has no
// fetch-by-id endpoint, so the owned collection is scanned.
func (s *VehicleService) FindMine(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicles, err := s.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			v := vehicles[i]
			return &v, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (s *VehicleService) Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
	cred, err := s.session.Credential(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.backend.CreateVehicle(ctx, cred, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vehicle_id", v.ID).Str("brand", v.Brand).Str("model", v.Model).Msg("vehicle created")
	return v, nil
}

// Update replaces every writable field of the vehicle; there is no merge.
func (s *VehicleService) Update(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	cred, err := s.session.Credential(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.backend.UpdateVehicle(ctx, cred, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vehicle_id", id).Msg("vehicle updated")
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	cred, err := s.session.Credential(ctx)
	if err != nil {
		return err
	}
	if err := s.backend.DeleteVehicle(ctx, cred, id); err != nil {
		return err
	}
	s.logger.Info().Int64("vehicle_id", id).Msg("vehicle deleted")
	return nil
}
