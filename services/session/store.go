// Package session tracks per-caller authentication state and pending flash
// notices behind an opaque random token.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// CookieName is the session cookie carrying the opaque token.
const CookieName = "watchlist_session"

// DefaultTTL is how long an idle session stays valid.
const DefaultTTL = 24 * time.Hour

// Session is the state held for one caller.
type Session struct {
	Authenticated bool
	flashes       []string
	expiry        time.Time
}

// Store manages session tokens in memory. Every new session starts
// anonymous.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewStore creates a store with the given session lifetime; zero means
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh anonymous session and returns its token.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, 32)
	rand.Read(b)
	token := hex.EncodeToString(b)

	s.sessions[token] = &Session{expiry: time.Now().Add(s.ttl)}

	// Sweep expired sessions while we hold the lock.
	now := time.Now()
	for t, sess := range s.sessions {
		if sess.expiry.Before(now) {
			delete(s.sessions, t)
		}
	}

	return token
}

// Get returns the live session for token, or nil for unknown or expired
// tokens.
func (s *Store) Get(token string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok || sess.expiry.Before(time.Now()) {
		return nil
	}
	return sess
}

// IsAuthenticated reports whether token belongs to the logged-in owner.
func (s *Store) IsAuthenticated(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok || sess.expiry.Before(time.Now()) {
		return false
	}
	return sess.Authenticated
}

// SetAuthenticated flips the auth state of an existing session.
func (s *Store) SetAuthenticated(token string, authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		sess.Authenticated = authenticated
		sess.expiry = time.Now().Add(s.ttl)
	}
}

// Flash queues a notice to be shown on the next rendered page.
func (s *Store) Flash(token, notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		sess.flashes = append(sess.flashes, notice)
	}
}

// Flashes drains and returns the queued notices for token.
func (s *Store) Flashes(token string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || len(sess.flashes) == 0 {
		return nil
	}
	out := sess.flashes
	sess.flashes = nil
	return out
}

// Revoke forgets a session entirely.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
