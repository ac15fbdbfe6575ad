package domain

import "time"

// Route names the console views a flow can send the caller to.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RouteVehicles  Route = "/vehicles"
)

// Registration is the payload of a sign-up call. It is not retained once the
// call completes.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// TokenResponse is the body returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SessionInfo describes the current credential. Subject and ExpiresAt are
// decoded without verification and are informational only.
type SessionInfo struct {
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}
