package memory

import (
	"context"
	"sync"

	"docuforge/internal/domain"
	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// SessionStore maps bearer tokens to users for the life of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]models.User)}
}

var _ repositories.SessionRepository = (*SessionStore)(nil)

// Put stores a session under the given token.
func (s *SessionStore) Put(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = *user
	return nil
}

// Get returns the user for a token.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return nil, domain.NotFound("Session not found.")
	}
	return &user, nil
}
