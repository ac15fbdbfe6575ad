package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/domain"
)

func newAuthFixture(backend *stubAuthBackend) (*AuthService, *stubStore) {
	store := &stubStore{}
	return NewAuthService(backend, NewSession(store), zerolog.Nop()), store
}

func TestAuthService_Register_RelaysBody(t *testing.T) {
	backend := &stubAuthBackend{
		registerFn: func(_ context.Context, reg domain.Registration) (json.RawMessage, error) {
			if reg.Username != "alice" || reg.Password != "abc123" || reg.Email != "alice@example.com" {
				t.Fatalf("unexpected registration: %+v", reg)
			}
			return json.RawMessage(`{"id":1,"username":"alice"}`), nil
		},
	}
	svc, store := newAuthFixture(backend)

	body, err := svc.Register(context.Background(), domain.Registration{Username: "alice", Password: "abc123", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if string(body) != `{"id":1,"username":"alice"}` {
		t.Fatalf("unexpected body: %s", body)
	}
	if store.cred != "" {
		t.Fatalf("register must not touch the session, got %q", store.cred)
	}
}

func TestAuthService_Register_BackendError(t *testing.T) {
	apiErr := &domain.APIError{StatusCode: 400, Detail: "Username already registered"}
	backend := &stubAuthBackend{
		registerFn: func(context.Context, domain.Registration) (json.RawMessage, error) {
			return nil, apiErr
		},
	}
	svc, _ := newAuthFixture(backend)

	_, err := svc.Register(context.Background(), domain.Registration{Username: "alice", Password: "x"})
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected backend error unchanged, got %v", err)
	}
}

func TestAuthService_Login_StoresToken(t *testing.T) {
	backend := &stubAuthBackend{
		tokenFn: func(_ context.Context, username, password string) (*domain.TokenResponse, error) {
			if username != "alice" || password != "abc123" {
				t.Fatalf("unexpected credentials %q/%q", username, password)
			}
			return &domain.TokenResponse{AccessToken: "T1", TokenType: "bearer"}, nil
		},
	}
	svc, store := newAuthFixture(backend)

	if err := svc.Login(context.Background(), "alice", "abc123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if store.cred != "T1" {
		t.Fatalf("expected session to hold T1, got %q", store.cred)
	}
}

func TestAuthService_Login_FailureKeepsPreviousCredential(t *testing.T) {
	backend := &stubAuthBackend{
		tokenFn: func(context.Context, string, string) (*domain.TokenResponse, error) {
			return nil, &domain.APIError{StatusCode: 401, Detail: "Incorrect username or password"}
		},
	}
	svc, store := newAuthFixture(backend)
	store.cred = "OLD"

	err := svc.Login(context.Background(), "alice", "wrong")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 401 {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if store.cred != "OLD" {
		t.Fatalf("expected previous credential to survive, got %q", store.cred)
	}
}

func TestAuthService_Login_MissingToken(t *testing.T) {
	backend := &stubAuthBackend{
		tokenFn: func(context.Context, string, string) (*domain.TokenResponse, error) {
			return &domain.TokenResponse{TokenType: "bearer"}, nil
		},
	}
	svc, store := newAuthFixture(backend)

	if err := svc.Login(context.Background(), "alice", "abc123"); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if store.cred != "" {
		t.Fatalf("session must stay empty, got %q", store.cred)
	}
}

func TestAuthService_Login_ReplacesCredential(t *testing.T) {
	tokens := []string{"T1", "T2"}
	backend := &stubAuthBackend{
		tokenFn: func(context.Context, string, string) (*domain.TokenResponse, error) {
			tok := tokens[0]
			tokens = tokens[1:]
			return &domain.TokenResponse{AccessToken: tok}, nil
		},
	}
	svc, store := newAuthFixture(backend)

	for i := 0; i < 2; i++ {
		if err := svc.Login(context.Background(), "alice", "abc123"); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
	}
	if store.cred != "T2" {
		t.Fatalf("expected last token to win, got %q", store.cred)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, store := newAuthFixture(&stubAuthBackend{})
	store.cred = "T1"

	next, err := svc.Logout(context.Background())
	if err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if next != domain.RouteLogin {
		t.Fatalf("expected %s, got %s", domain.RouteLogin, next)
	}
	if store.cred != "" {
		t.Fatalf("expected empty session, got %q", store.cred)
	}

	// Logging out twice is harmless.
	if _, err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
}
