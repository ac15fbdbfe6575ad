package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// Register posts the registration as JSON and returns the backend's
// confirmation body untouched.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, call{op: "register", method: http.MethodPost, path: "/auth/register"}, reg, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Token exchanges credentials for a bearer token. The token endpoint expects
// a form-encoded body, not JSON.
func (c *Client) Token(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out domain.TokenResponse
	err := c.do(ctx, call{
		op:          "token",
		method:      http.MethodPost,
		path:        "/auth/token",
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
