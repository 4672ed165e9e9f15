// Package session remembers which questions were handed out with each quiz.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// Store binds quiz identifiers to the question IDs issued with them.
type Store interface {
	// Create records questionIDs under a fresh identifier and returns it.
	Create(ctx context.Context, questionIDs []string) (string, error)
	// Resolve returns the IDs recorded for id, or ErrSessionNotFound.
	Resolve(ctx context.Context, id string) ([]string, error)
}

func newID() string {
	return uuid.NewString()
}

// MemoryStore keeps sessions for the lifetime of the process. Nothing is
// ever evicted, so a long-running deployment should use the redis store with
// a TTL instead.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]string)}
}

func (s *MemoryStore) Create(_ context.Context, questionIDs []string) (string, error) {
	id := newID()
	ids := append([]string(nil), questionIDs...)

	s.mu.Lock()
	s.sessions[id] = ids
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) Resolve(_ context.Context, id string) ([]string, error) {
	s.mu.RLock()
	ids, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]string(nil), ids...), nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
