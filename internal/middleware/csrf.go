package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

type contextKey string

const CSRFTokenKey contextKey = "csrf_token"

const csrfCookie = "brief_csrf"

func newToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// CSRF issues a per-browser token cookie and validates it on every POST,
// from either the csrf_token form field or the X-CSRF-Token header. The
// token lands in the request context for templates.
func CSRF(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(csrfCookie); err == nil && cookie.Value != "" {
			token = cookie.Value
		} else {
			token = newToken()
			http.SetCookie(w, &http.Cookie{
				Name:     csrfCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		if r.Method == http.MethodPost {
			reqToken := r.FormValue("csrf_token")
			if reqToken == "" {
				reqToken = r.Header.Get("X-CSRF-Token")
			}
			if reqToken != token {
				http.Error(w, "Invalid CSRF Token", http.StatusForbidden)
				return
			}
		}

		ctx := context.WithValue(r.Context(), CSRFTokenKey, token)
		next(w, r.WithContext(ctx))
	}
}
