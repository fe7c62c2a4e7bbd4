package preview

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("preview session not found")

// SessionStore keeps open preview sessions in memory. Sessions expire ttl
// after they were opened; a zero ttl keeps them until closed.
type SessionStore struct {
	sessions map[string]*Session
	mu       sync.Mutex
	total    int
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store whose sessions are bounded to total pages.
func NewSessionStore(total int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		total:    total,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open starts a new session for pub.
func (s *SessionStore) Open(pub models.Publication) Session {
	session := NewSession(uuid.NewString(), pub, s.total)
	session.CreatedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.sessions[session.ID] = session
	return *session
}

// Get returns a copy of the session.
func (s *SessionStore) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.lookup(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *session, nil
}

// Navigate applies a page move to a stored session.
func (s *SessionStore) Navigate(id string, direction int) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.lookup(id)
	if !ok {
		return Session{}, false, ErrSessionNotFound
	}
	moved := session.Navigate(direction)
	return *session, moved, nil
}

// Close removes the session and returns its final state.
func (s *SessionStore) Close(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.lookup(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	delete(s.sessions, id)
	return *session, nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	return len(s.sessions)
}

func (s *SessionStore) lookup(id string) (*Session, bool) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(session) {
		delete(s.sessions, id)
		return nil, false
	}
	return session, true
}

func (s *SessionStore) expired(session *Session) bool {
	return s.ttl > 0 && s.now().Sub(session.CreatedAt) > s.ttl
}

// sweep drops expired sessions; callers hold mu.
func (s *SessionStore) sweep() {
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
		}
	}
}
