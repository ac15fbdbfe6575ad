package handler

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, reg domain.Registration) (json.RawMessage, error)
	loginFn    func(ctx context.Context, username, password string) error
	logoutFn   func(ctx context.Context) (domain.Route, error)
	info       domain.SessionInfo
}

func (s *stubAuthService) Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error) {
	return s.registerFn(ctx, reg)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) error {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context) (domain.Route, error) {
	return s.logoutFn(ctx)
}

func (s *stubAuthService) Describe(context.Context) (domain.SessionInfo, error) {
	return s.info, nil
}

// stubVehicleService records the order of calls so tests can check that
// refreshes follow mutations.
type stubVehicleService struct {
	vehicles []domain.Vehicle
	calls    []string
	lastOpts domain.ListOptions
	lastIn   domain.VehicleInput
	err      error
}

func (s *stubVehicleService) ListAll(_ context.Context, opts domain.ListOptions) ([]domain.Vehicle, error) {
	s.calls = append(s.calls, "list_all")
	s.lastOpts = opts
	return s.vehicles, s.err
}

func (s *stubVehicleService) ListMine(context.Context) ([]domain.Vehicle, error) {
	s.calls = append(s.calls, "list_mine")
	return s.vehicles, s.err
}

func (s *stubVehicleService) FindMine(_ context.Context, id int64) (*domain.Vehicle, error) {
	s.calls = append(s.calls, "find_mine")
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			v := s.vehicles[i]
			return &v, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (s *stubVehicleService) Create(_ context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
	s.calls = append(s.calls, "create")
	if s.err != nil {
		return nil, s.err
	}
	s.lastIn = in
	v := domain.Vehicle{ID: int64(len(s.vehicles) + 1), Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
	s.vehicles = append(s.vehicles, v)
	return &v, nil
}

func (s *stubVehicleService) Update(_ context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	s.calls = append(s.calls, "update")
	if s.err != nil {
		return nil, s.err
	}
	s.lastIn = in
	v := domain.Vehicle{ID: id, Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
	return &v, nil
}

func (s *stubVehicleService) Delete(_ context.Context, id int64) error {
	s.calls = append(s.calls, "delete")
	if s.err != nil {
		return s.err
	}
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			break
		}
	}
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}
