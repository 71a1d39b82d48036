// File: services/conversation/store.go
package conversation

import (
	"context"
	"sync"
	"time"

	"tripgenius/models"
)

// memoryStore keeps sessions in-process with per-session locking and lazy
// TTL eviction. It is the default store for single-node deployments and the
// one the test suite exercises.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	ttl      time.Duration
}

type memorySession struct {
	mu       sync.Mutex
	sess     models.Session
	lastSeen time.Time
}

// NewMemoryStore returns an in-process SessionStore with the given idle TTL.
func NewMemoryStore(ttl time.Duration) SessionStore {
	s := &memoryStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
	}
	go s.janitor()
	return s
}

func (s *memoryStore) janitor() {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	for range time.Tick(interval) {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, entry := range s.sessions {
			if entry.lastSeen.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

func (s *memoryStore) Create(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.SessionID] = &memorySession{
		sess:     *sess,
		lastSeen: time.Now(),
	}
	return nil
}

func (s *memoryStore) WithSession(ctx context.Context, sessionID string, fn func(*models.Session) error) error {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok && time.Since(entry.lastSeen) > s.ttl {
		delete(s.sessions, sessionID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return &SessionNotFoundError{SessionID: sessionID}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.sess
	if err := fn(&working); err != nil {
		return err
	}
	working.UpdatedAt = time.Now()

	if working.Terminal {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil
	}
	entry.sess = working
	// lastSeen is guarded by the store mutex, not the session's.
	s.mu.Lock()
	entry.lastSeen = time.Now()
	s.mu.Unlock()
	return nil
}
