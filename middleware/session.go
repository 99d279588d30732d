package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"sanctyr/appctx"
	"sanctyr/sessions"
)

// SessionMiddleware reads the encrypted session cookie and, when valid,
// places the visitor in the request context. It never rejects a request
// by itself: most of the site works anonymously.
type SessionMiddleware struct {
	store *sessions.Store
}

// NewSessionMiddleware creates a new session middleware instance
func NewSessionMiddleware(store *sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// WithSession loads the session user into context if one exists.
func (m *SessionMiddleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := m.store.Get(r)
		if err != nil {
			log.Printf("⚠️ Failed to read session cookie: %v", err)
		}
		if user != nil {
			r = r.WithContext(appctx.SetUser(r.Context(), user))
		}
		next(w, r)
	}
}

// RequireAuth wraps a handler that only makes sense for a logged-in
// visitor (economy actions, logout).
func (m *SessionMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return m.WithSession(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := appctx.GetUser(r.Context()); !ok {
			log.Printf("❌ Unauthenticated request to protected endpoint from %s", r.RemoteAddr)
			m.writeErrorResponse(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r)
	})
}

func (m *SessionMiddleware) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("❌ Failed to encode error response: %v", err)
	}
}
