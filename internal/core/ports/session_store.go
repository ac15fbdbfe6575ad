package ports

import (
	"context"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// SessionStore persists the single bearer credential of the session.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Set durably stores c and makes it the current credential.
	Set(ctx context.Context, c domain.Credential) error
	// Get returns the current credential, or domain.ErrNoCredential.
	Get(ctx context.Context) (domain.Credential, error)
	// Clear removes the credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Pinger is implemented by stores backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}
