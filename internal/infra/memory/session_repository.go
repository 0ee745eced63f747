// Package memory provides the in-process session registry. Sessions live
// for the lifetime of the process only; persistence across restarts is a
// non-goal.
package memory

import (
	"context"
	"sync"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/repository"

	"github.com/google/uuid"
)

// SessionStore keeps sessions in a mutex-guarded map. Sessions are stored
// by pointer: each session carries its own lock, so the store's lock only
// covers registry membership.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.ChatSession
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates an empty session registry.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*entity.ChatSession),
	}
}

// Save registers or replaces the session.
func (m *SessionStore) Save(_ context.Context, session *entity.ChatSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session

	return nil
}

// FindByID returns the live session for the ID.
func (m *SessionStore) FindByID(_ context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session from the registry.
func (m *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(m.sessions, id)

	return nil
}

// Len returns the number of registered sessions.
func (m *SessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
