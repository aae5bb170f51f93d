// Package session holds the per-user interactive state: at most one generated
// itinerary per session, replaced wholesale on each successful generation.
package session

import (
	"sync"
	"time"

	"travelguide-backend/internal/models"
)

// Session is the state scope for one user interaction. It holds zero or one
// ItineraryResult. Readers never observe a partial overwrite.
type Session struct {
	ID string

	mu     sync.Mutex
	result *models.ItineraryResult

	// genMu serializes generation attempts for this session: a submission that
	// arrives while another is in flight queues behind it.
	genMu sync.Mutex

	lastSeen time.Time
}

// Put unconditionally replaces the stored result.
func (s *Session) Put(result models.ItineraryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
}

// Get returns a copy of the stored result, or ok=false if no generation has
// succeeded yet.
func (s *Session) Get() (models.ItineraryResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return models.ItineraryResult{}, false
	}
	return *s.result, true
}

// BeginGeneration blocks until any in-flight generation for this session has
// finished. Callers must pair it with EndGeneration.
func (s *Session) BeginGeneration() { s.genMu.Lock() }

func (s *Session) EndGeneration() { s.genMu.Unlock() }

// Store hands out isolated Session instances keyed by session ID. Idle
// sessions are dropped after the configured TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}

	// Cleanup goroutine
	go func() {
		for {
			time.Sleep(ttl)
			st.mu.Lock()
			for id, sess := range st.sessions {
				sess.mu.Lock()
				idle := time.Since(sess.lastSeen) > ttl
				sess.mu.Unlock()
				if idle {
					delete(st.sessions, id)
				}
			}
			st.mu.Unlock()
		}
	}()

	return st
}

// Get returns the session for id, creating it on first use. Every distinct id
// receives its own isolated Session.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		st.mu.Lock()
		sess, ok = st.sessions[id]
		if !ok {
			sess = &Session{ID: id}
			st.sessions[id] = sess
		}
		st.mu.Unlock()
	}

	sess.mu.Lock()
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
	return sess
}

// Len reports the number of live sessions. Used by tests and the health check.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
