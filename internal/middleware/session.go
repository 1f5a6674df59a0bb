package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderSessionID carries the storefront session identity. There is no
// authentication; the session stands in for the browser tab.
const HeaderSessionID = "X-Session-ID"

type contextKey string

const sessionKey contextKey = "session_id"

// Session mints a session id when the request carries none and echoes
// it back so the client can persist it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		w.Header().Set(HeaderSessionID, sessionID)

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id attached by the Session middleware.
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
