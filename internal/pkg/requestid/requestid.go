// Package requestid carries the console's request id through a context so
// outgoing backend calls can be correlated with the request that caused them.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the header the id travels in, inbound and outbound.
const Header = "X-Request-ID"

type key struct{}

// With returns a copy of ctx carrying id.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// From returns the id carried by ctx, or a fresh UUID when there is none.
func From(ctx context.Context) string {
	if id, ok := ctx.Value(key{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
