package session

import (
	"context"
	"sync"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"
)

// InMemoryStore implements SessionStore using an in-memory map.
// Sessions live for the lifetime of the process; suitable for single-instance deployments and testing.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.UserSession
}

// NewInMemoryStore creates a new in-memory session store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]domain.UserSession),
	}
}

// Get returns a copy of the stored session, or nil when unknown
func (s *InMemoryStore) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

// Save stores a copy of the session under its id
func (s *InMemoryStore) Save(ctx context.Context, session *domain.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

var _ ports.SessionStore = (*InMemoryStore)(nil)
