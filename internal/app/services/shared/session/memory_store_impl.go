package session

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore is used by the CLI and when redis is not configured.
func NewMemoryStore() contracts.SessionStore {
	return &memoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *memoryStore) Save(_ context.Context, session *models.Session, exp time.Duration) error {
	entry := memoryEntry{session: *session}
	if exp > 0 {
		entry.expiresAt = s.now().Add(exp)
	}
	s.mu.Lock()
	s.sessions[session.SessionID] = entry
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Find(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, exceptions.ErrSessionNotFound(errSessionNotFound)
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, exceptions.ErrSessionNotFound(errSessionNotFound)
	}
	session := entry.session
	return &session, nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
