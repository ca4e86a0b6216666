package usecase

import (
	"context"
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle form session is kept.
const DefaultSessionTTL = 30 * time.Minute

type formSession struct {
	form     *CareerForm
	lastSeen time.Time
}

// SessionStore keeps one CareerForm per browser session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*formSession
	ttl      time.Duration
	newForm  func() *CareerForm
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration, newForm func() *CareerForm) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*formSession),
		ttl:      ttl,
		newForm:  newForm,
		now:      time.Now,
	}
}

// Form returns the session's form, creating an empty one on first use.
func (s *SessionStore) Form(sessionID string) *CareerForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &formSession{form: s.newForm()}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()
	return sess.form
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed. A session with a submission in flight is kept.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.After(cutoff) || sess.form.Submitting() {
			continue
		}
		sess.form.Notifier().Close()
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
