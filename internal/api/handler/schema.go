package handler

import (
	"strings"

	"github.com/tedcar/rental-console/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Email    string `json:"email"    form:"email"    validate:"omitempty,email"`
}

// vehicleForm mirrors the dashboard form: brand and model required, a
// non-negative daily price, an optional image.
type vehicleForm struct {
	Brand       string   `json:"brand"         validate:"required"`
	Model       string   `json:"model"         validate:"required"`
	PricePerDay *float64 `json:"price_per_day" validate:"required,gte=0"`
	ImageURL    string   `json:"image_url"`
}

// trim strips surrounding blanks so that a whitespace-only brand or model
// fails the required check. It runs before validation.
func (f *vehicleForm) trim() {
	f.Brand = strings.TrimSpace(f.Brand)
	f.Model = strings.TrimSpace(f.Model)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
}

func (f vehicleForm) input() domain.VehicleInput {
	in := domain.VehicleInput{Brand: f.Brand, Model: f.Model}
	if f.PricePerDay != nil {
		in.PricePerDay = *f.PricePerDay
	}
	if f.ImageURL != "" {
		u := f.ImageURL
		in.ImageURL = &u
	}
	return in
}

type viewResponse struct {
	View    string              `json:"view"`
	Fields  []string            `json:"fields,omitempty"`
	Session *domain.SessionInfo `json:"session,omitempty"`
}

type loginResponse struct {
	Authenticated bool         `json:"authenticated"`
	Next          domain.Route `json:"next"`
}

type vehicleListResponse struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
}

// mutationResponse carries the mutated vehicle together with the refreshed
// collection, fetched after the mutation completed.
type mutationResponse struct {
	Vehicle  *domain.Vehicle  `json:"vehicle,omitempty"`
	Vehicles []domain.Vehicle `json:"vehicles"`
}

func newVehicleList(vs []domain.Vehicle) vehicleListResponse {
	vs = nonNil(vs)
	return vehicleListResponse{Vehicles: vs, Count: len(vs)}
}

// ErrorResponse is the canonical error envelope for all console errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

func nonNil(vs []domain.Vehicle) []domain.Vehicle {
	if vs == nil {
		return []domain.Vehicle{}
	}
	return vs
}
