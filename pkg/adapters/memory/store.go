package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.ViewSession
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.ViewSession),
	}
}

// Save stores a copy of the session.
func (s *Store) Save(ctx context.Context, session *domain.ViewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = *session
	return nil
}

// Load returns a copy so callers can't mutate store state through the pointer.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.ViewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}
