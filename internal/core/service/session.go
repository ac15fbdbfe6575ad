package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
)

// Session is the session context shared by every component that issues
// authenticated calls. It never caches the credential: each read goes to the
// store so a login or logout is visible to the very next call.
type Session struct {
	store ports.SessionStore
}

func NewSession(store ports.SessionStore) *Session {
	return &Session{store: store}
}

// Credential returns the current credential, or "" when the session holds
// none. Store failures other than an empty slot are returned.
func (s *Session) Credential(ctx context.Context) (domain.Credential, error) {
	c, err := s.store.Get(ctx)
	if errors.Is(err, domain.ErrNoCredential) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return c, nil
}

// Active reports whether a credential is present.
func (s *Session) Active(ctx context.Context) (bool, error) {
	c, err := s.Credential(ctx)
	if err != nil {
		return false, err
	}
	return c != "", nil
}

func (s *Session) begin(ctx context.Context, c domain.Credential) error {
	if err := s.store.Set(ctx, c); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *Session) end(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Info describes the current credential. JWT claims are read without
// verifying the signature; the backend stays the only judge of validity.
func (s *Session) Info(ctx context.Context) (domain.SessionInfo, error) {
	c, err := s.Credential(ctx)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	if c == "" {
		return domain.SessionInfo{}, nil
	}

	info := domain.SessionInfo{Authenticated: true}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(c), &claims); err != nil {
		// opaque token
		return info, nil
	}
	info.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time.UTC().Truncate(time.Second)
		info.ExpiresAt = &exp
	}
	return info, nil
}
