package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tedcar/rental-console/internal/core/domain"
)

const vehiclesPath = "/vehicles"

func vehiclePath(id int64) string {
	return vehiclesPath + "/" + strconv.FormatInt(id, 10)
}

// ListVehicles fetches the public listing. It never sends a credential.
func (c *Client) ListVehicles(ctx context.Context, opts domain.ListOptions) ([]domain.Vehicle, error) {
	q := url.Values{}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	out := []domain.Vehicle{}
	if err := c.do(ctx, call{op: "list_vehicles", method: http.MethodGet, path: vehiclesPath, query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyVehicles(ctx context.Context, cred domain.Credential) ([]domain.Vehicle, error) {
	out := []domain.Vehicle{}
	err := c.do(ctx, call{op: "list_my_vehicles", method: http.MethodGet, path: vehiclesPath + "/my-vehicles", cred: cred}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVehicle(ctx context.Context, cred domain.Credential, in domain.VehicleInput) (*domain.Vehicle, error) {
	var out domain.Vehicle
	err := c.doJSON(ctx, call{op: "create_vehicle", method: http.MethodPost, path: vehiclesPath, cred: cred}, in, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVehicle sends the full payload; the backend replaces every field.
func (c *Client) UpdateVehicle(ctx context.Context, cred domain.Credential, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	var out domain.Vehicle
	err := c.doJSON(ctx, call{op: "update_vehicle", method: http.MethodPut, path: vehiclePath(id), cred: cred}, in, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, cred domain.Credential, id int64) error {
	return c.do(ctx, call{op: "delete_vehicle", method: http.MethodDelete, path: vehiclePath(id), cred: cred}, nil)
}
