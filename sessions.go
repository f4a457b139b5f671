package main

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

// sessionCookie carries the id of the browser's form in the session store.
const sessionCookie = "nutrition_session"

// session is one browser's form. Nothing is persisted; a restart starts every
// browser over with the default inputs.
type session struct {
	form     *nutrition.Form
	lastSeen time.Time
}

// pruneInterval is the least time between two sweeps of the session map.
const pruneInterval = time.Minute

// sessionStore owns every session form. All access to a form goes through use
// or view, which hold the store lock, so concurrent requests from the same
// browser apply their edits one at a time.
type sessionStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time // overridable for tests
	lastPrune time.Time
	sessions  map[string]*session
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// use runs fn against the form for id and returns the id the form lives under.
// An unknown or expired id gets a fresh form with a new uuid.
func (s *sessionStore) use(id string, fn func(f *nutrition.Form)) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybePruneLocked(now)

	sess, ok := s.liveLocked(id, now)
	if !ok {
		id = uuid.NewString()
		sess = &session{form: nutrition.NewForm()}
		s.sessions[id] = sess
	}
	sess.lastSeen = now

	fn(sess.form)
	return id
}

// view runs fn against the live form for id and reports whether one existed.
// Nothing is created for an unknown or expired id.
func (s *sessionStore) view(id string, fn func(f *nutrition.Form)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybePruneLocked(now)

	sess, ok := s.liveLocked(id, now)
	if !ok {
		return false
	}
	sess.lastSeen = now

	fn(sess.form)
	return true
}

// len reports how many sessions are stored.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// liveLocked returns the session for id, dropping it if it has expired.
func (s *sessionStore) liveLocked(id string, now time.Time) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.ttl
}

// maybePruneLocked sweeps expired sessions at most once per pruneInterval.
func (s *sessionStore) maybePruneLocked(now time.Time) {
	if now.Sub(s.lastPrune) < pruneInterval {
		return
	}
	s.lastPrune = now
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}
