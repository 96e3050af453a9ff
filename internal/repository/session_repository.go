package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemorySessionRepository implements domain.SessionRepository in process
// memory. The default store; sessions are lost on restart.
type MemorySessionRepository struct {
	store *memoryStore[*domain.Session]
}

// NewMemorySessionRepository creates an empty session repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{store: newMemoryStore[*domain.Session]()}
}

// Create stores a session
func (r *MemorySessionRepository) Create(session *domain.Session) error {
	r.store.put(session.ID, session)
	return nil
}

// Get retrieves a session by id
func (r *MemorySessionRepository) Get(id string) (*domain.Session, error) {
	s, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return s, nil
}

// Delete removes a session
func (r *MemorySessionRepository) Delete(id string) error {
	if !r.store.delete(id) {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return nil
}

// List returns all sessions in insertion order
func (r *MemorySessionRepository) List() ([]*domain.Session, error) {
	return r.store.list(), nil
}
