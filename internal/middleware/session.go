package middleware

import (
	"net/http"
	"sync"
)

// The access gate keeps exactly one piece of state per browser: an
// access-granted session cookie handed out after the shared password
// checks out. Tokens live in memory only; a restart logs everyone out.

const sessionCookie = "brief_access"

var (
	sessionsMu sync.RWMutex
	sessions   = make(map[string]bool)
)

// GrantAccess mints a session token and sets the access cookie.
func GrantAccess(w http.ResponseWriter) {
	token := newToken()
	sessionsMu.Lock()
	sessions[token] = true
	sessionsMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HasAccess reports whether the request carries a granted session.
func HasAccess(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	return sessions[cookie.Value]
}

// ResetSessions drops every granted session. Test helper.
func ResetSessions() {
	sessionsMu.Lock()
	sessions = make(map[string]bool)
	sessionsMu.Unlock()
}

// Gate redirects unauthenticated requests to the login page. When no
// password hash is configured the gate is open (local development).
func Gate(enabled func() bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if enabled() && !HasAccess(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
