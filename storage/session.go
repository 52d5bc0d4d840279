package storage

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the session-scoped key-value bag of one logged-in user: the
// identity keys plus checkout scratch state (orderSummary, lastOrderId).
// It is owned by a single logical session and dropped at logout, so access
// is not synchronized beyond the store's own lock.
type Session struct {
	ID     string
	values map[string]string
}

// Get returns the value for key, or "" when absent.
func (s *Session) Get(key string) string {
	return s.values[key]
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	s.values[key] = value
}

// Delete removes key from the session.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// UserID returns the session's stored user id.
func (s *Session) UserID() string { return s.Get(SessionUserID) }

// UserName returns the session's stored display name.
func (s *Session) UserName() string { return s.Get(SessionUserName) }

// UserEmail returns the session's stored email.
func (s *Session) UserEmail() string { return s.Get(SessionUserEmail) }

// UserRole returns the session's stored role.
func (s *Session) UserRole() string { return s.Get(SessionUserRole) }

// EffectiveUserID returns the partition key for cart/address/order
// ownership: the first non-empty of stored id, email, the literal "guest".
func (s *Session) EffectiveUserID() string {
	if id := s.UserID(); id != "" {
		return id
	}
	if email := s.UserEmail(); email != "" {
		return email
	}
	return "guest"
}

// Authenticated reports whether a user is logged in. The storefront gates
// cart mutation and checkout on the presence of a user name.
func (s *Session) Authenticated() bool {
	return s.UserName() != ""
}

// SessionStore holds the live sessions, keyed by session id.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create starts a new session and returns it.
func (st *SessionStore) Create() *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		values: make(map[string]string),
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get returns the session with the given id, or nil.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Drop ends a session, discarding all its session-scoped state.
func (st *SessionStore) Drop(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
