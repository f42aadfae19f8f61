// Package store keeps generated instances in memory for the lifetime of
// the process, keyed by session id. It is the only shared mutable state in
// the engine, so every access goes through the store's lock.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hirushan-N/tsp-frontend/types"
)

// ErrSessionNotFound indicates a stale or invalid session id. This is a
// normal, user-triggerable condition (for example a browser holding a
// session from before a restart), recovered by requesting a new instance.
var ErrSessionNotFound = errors.New("store: session not found")

// Store is a mutex-guarded in-memory session store. Sessions are
// write-once: Create is the only mutation, so a session returned by Get is
// immutable and safe to read concurrently.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]types.Session
}

// New returns an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]types.Session)}
}

// Create stores a new session for the given instance and returns it. The
// uuid id cannot collide within the process lifetime, and the session is
// visible to Get before Create returns.
func (s *Store) Create(model types.DistanceModel, home string) types.Session {
	sess := types.Session{
		ID:        uuid.New().String(),
		Model:     model,
		HomeCity:  home,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for an id, or ErrSessionNotFound.
func (s *Store) Get(id string) (types.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return types.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
