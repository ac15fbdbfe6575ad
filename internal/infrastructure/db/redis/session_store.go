package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// SessionStore keeps the credential under a single key with no TTL.
// Key format: <prefix>:access_token
type SessionStore struct {
	client redis.Cmdable
	key    string
}

// NewSessionStore wraps client. prefix namespaces the slot so several
// profiles can share one Redis database.
func NewSessionStore(client redis.Cmdable, prefix string) *SessionStore {
	key := domain.CredentialSlot
	if prefix != "" {
		key = prefix + ":" + key
	}
	return &SessionStore{client: client, key: key}
}

func (s *SessionStore) Set(ctx context.Context, c domain.Credential) error {
	if err := s.client.Set(ctx, s.key, string(c), 0).Err(); err != nil {
		return fmt.Errorf("redis set credential: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context) (domain.Credential, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", domain.ErrNoCredential
	case err != nil:
		return "", fmt.Errorf("redis get credential: %w", err)
	case v == "":
		return "", domain.ErrNoCredential
	}
	return domain.Credential(v), nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis clear credential: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
