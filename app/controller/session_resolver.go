package controller

import (
	"net/http"
	"sync"

	"food-express-backend/storage"
)

// SessionHeader carries the session id issued at login. Requests without
// one are served against a shared guest session, so the menu and legacy
// cart still work before login.
const SessionHeader = "X-Session-Id"

// SessionResolver resolves the session for a request.
type SessionResolver struct {
	sessions *storage.SessionStore

	once  sync.Once
	guest *storage.Session
}

func NewSessionResolver(sessions *storage.SessionStore) *SessionResolver {
	return &SessionResolver{sessions: sessions}
}

// FromRequest returns the request's session, falling back to the guest
// session when the header is absent or stale.
func (sr *SessionResolver) FromRequest(r *http.Request) *storage.Session {
	if id := r.Header.Get(SessionHeader); id != "" {
		if sess := sr.sessions.Get(id); sess != nil {
			return sess
		}
	}
	sr.once.Do(func() {
		sr.guest = sr.sessions.Create()
	})
	return sr.guest
}
