package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/tedcar/rental-console/internal/core/domain"
)

type stubStore struct {
	mu     sync.Mutex
	cred   domain.Credential
	getErr error
	setErr error
}

func (s *stubStore) Set(_ context.Context, c domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.cred = c
	return nil
}

func (s *stubStore) Get(_ context.Context) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	if s.cred == "" {
		return "", domain.ErrNoCredential
	}
	return s.cred, nil
}

func (s *stubStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = ""
	return nil
}

type stubAuthBackend struct {
	registerFn func(ctx context.Context, reg domain.Registration) (json.RawMessage, error)
	tokenFn    func(ctx context.Context, username, password string) (*domain.TokenResponse, error)
}

func (b *stubAuthBackend) Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error) {
	return b.registerFn(ctx, reg)
}

func (b *stubAuthBackend) Token(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	return b.tokenFn(ctx, username, password)
}

// stubVehicleBackend keeps an in-memory collection and records the
// credential each call was made with.
type stubVehicleBackend struct {
	mu       sync.Mutex
	nextID   int64
	vehicles []domain.Vehicle
	seen     []domain.Credential
	err      error
}

func (b *stubVehicleBackend) record(c domain.Credential) error {
	b.seen = append(b.seen, c)
	return b.err
}

func (b *stubVehicleBackend) ListVehicles(_ context.Context, opts domain.ListOptions) ([]domain.Vehicle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(""); err != nil {
		return nil, err
	}
	out := append([]domain.Vehicle(nil), b.vehicles...)
	if opts.Skip > 0 {
		if opts.Skip >= len(out) {
			return []domain.Vehicle{}, nil
		}
		out = out[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (b *stubVehicleBackend) ListMyVehicles(_ context.Context, c domain.Credential) ([]domain.Vehicle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(c); err != nil {
		return nil, err
	}
	return append([]domain.Vehicle(nil), b.vehicles...), nil
}

func (b *stubVehicleBackend) CreateVehicle(_ context.Context, c domain.Credential, in domain.VehicleInput) (*domain.Vehicle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(c); err != nil {
		return nil, err
	}
	b.nextID++
	v := domain.Vehicle{ID: b.nextID, Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
	b.vehicles = append(b.vehicles, v)
	return &v, nil
}

func (b *stubVehicleBackend) UpdateVehicle(_ context.Context, c domain.Credential, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(c); err != nil {
		return nil, err
	}
	for i := range b.vehicles {
		if b.vehicles[i].ID == id {
			b.vehicles[i] = domain.Vehicle{ID: id, Brand: in.Brand, Model: in.Model, PricePerDay: in.PricePerDay, ImageURL: in.ImageURL}
			v := b.vehicles[i]
			return &v, nil
		}
	}
	return nil, &domain.APIError{StatusCode: 404, Detail: "Vehicle not found"}
}

func (b *stubVehicleBackend) DeleteVehicle(_ context.Context, c domain.Credential, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.record(c); err != nil {
		return err
	}
	for i := range b.vehicles {
		if b.vehicles[i].ID == id {
			b.vehicles = append(b.vehicles[:i], b.vehicles[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{StatusCode: 404, Detail: "Vehicle not found"}
}

var errBoom = errors.New("boom")
