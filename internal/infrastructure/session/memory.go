package session

import (
	"context"
	"sync"

	"github.com/tedcar/rental-console/internal/core/domain"
)

// MemoryStore keeps the credential in process memory only.
type MemoryStore struct {
	mu   sync.RWMutex
	cred domain.Credential
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(_ context.Context, c domain.Credential) error {
	s.mu.Lock()
	s.cred = c
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == "" {
		return "", domain.ErrNoCredential
	}
	return s.cred, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.cred = ""
	s.mu.Unlock()
	return nil
}
