package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps one Manager per session id. Idle sessions expire after ttl.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Manager
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty session store
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Manager),
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it when missing or expired.
// created reports whether a new session was made.
// ValidSessionID reports whether id has the shape NewSessionID produces
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Store) Get(id string) (m *Manager, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	if m, ok := s.sessions[id]; ok {
		m.Touch(now)
		return m, false
	}
	m = NewManager()
	m.Touch(now)
	s.sessions[id] = m
	return m, true
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep drops expired sessions (must hold lock)
func (s *Store) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, m := range s.sessions {
		if now.Sub(m.LastSeen()) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// TTL returns how long an idle session is kept
func (s *Store) TTL() time.Duration {
	return s.ttl
}
