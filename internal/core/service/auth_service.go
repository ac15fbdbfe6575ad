package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
)

// AuthService implements registration, login and logout against the backend.
type AuthService struct {
	backend ports.AuthBackend
	session *Session
	logger  zerolog.Logger
}

func NewAuthService(backend ports.AuthBackend, session *Session, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, session: session, logger: logger}
}

// Register forwards the registration as-is. Backend failures such as a
// duplicate username reach the caller unchanged.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (json.RawMessage, error) {
	body, err := s.backend.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("username", reg.Username).Msg("user registered")
	return body, nil
}

// Login exchanges credentials for a token. The session is written only after
// the backend has confirmed; on any failure it keeps its previous value.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	resp, err := s.backend.Token(ctx, username, password)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", username).Msg("login rejected")
		return err
	}
	if resp == nil || resp.AccessToken == "" {
		return fmt.Errorf("login: %w", domain.ErrMissingToken)
	}

	if err := s.session.begin(ctx, domain.Credential(resp.AccessToken)); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("session started")
	return nil
}

// Logout ends the session and returns the view the caller should move to.
func (s *AuthService) Logout(ctx context.Context) (domain.Route, error) {
	if err := s.session.end(ctx); err != nil {
		return "", err
	}
	s.logger.Info().Msg("session ended")
	return domain.RouteLogin, nil
}

func (s *AuthService) Describe(ctx context.Context) (domain.SessionInfo, error) {
	return s.session.Info(ctx)
}
