package domain

import "errors"

var ErrVehicleNotFound = errors.New("vehicle not found")

// Vehicle is a rental vehicle as returned by the backend. ID and OwnerID are
// assigned by the backend and are never sent back in a create/update payload.
type Vehicle struct {
	ID          int64   `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	ImageURL    *string `json:"image_url,omitempty"`
	OwnerID     int64   `json:"owner_id,omitempty"`
}

// VehicleInput is the full payload of a create or update call.
type VehicleInput struct {
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	ImageURL    *string `json:"image_url"`
}

// Input returns the writable fields of v.
func (v Vehicle) Input() VehicleInput {
	return VehicleInput{
		Brand:       v.Brand,
		Model:       v.Model,
		PricePerDay: v.PricePerDay,
		ImageURL:    v.ImageURL,
	}
}

// Matches reports whether v carries exactly the writable fields of in.
func (v Vehicle) Matches(in VehicleInput) bool {
	if v.Brand != in.Brand || v.Model != in.Model || v.PricePerDay != in.PricePerDay {
		return false
	}
	switch {
	case v.ImageURL == nil && in.ImageURL == nil:
		return true
	case v.ImageURL == nil || in.ImageURL == nil:
		return false
	default:
		return *v.ImageURL == *in.ImageURL
	}
}

// ListOptions pages the public listing. Zero values leave the backend
// defaults in place.
type ListOptions struct {
	Skip  int
	Limit int
}
