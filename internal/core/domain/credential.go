package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CredentialSlot is the fixed name of the durable slot holding the token.
const CredentialSlot = "access_token"

var (
	// ErrNoCredential is returned by a session store holding no credential.
	ErrNoCredential = errors.New("no credential")
	// ErrMissingToken is returned when a token response carries no access_token.
	ErrMissingToken = errors.New("token response missing access_token")
)

// Credential is an opaque bearer token.
type Credential string

// Header renders the Authorization header value.
func (c Credential) Header() string {
	return "Bearer " + string(c)
}

func (c Credential) String() string {
	return string(c)
}

// APIError is a failure reported by the backend. It is passed through to the
// caller unmodified.
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

// IsUnauthorized reports whether the backend rejected the caller's identity.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// ValidationError carries form constraint failures raised by a view.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
