package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "site_session"

	// SessionExpiry is how long a session cookie lasts.
	SessionExpiry = 30 * 24 * time.Hour
)

// contextKey is an unexported type for context keys to avoid collisions.
type contextKey int

const (
	sessionIDKey contextKey = iota
)

// SessionID retrieves the session id from the request context. Returns
// an empty string if no session id exists in the context.
func SessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

func setSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware ensures every request carries a session id. A valid
// cookie is reused, anything else gets a freshly issued UUID. The id is
// stored in the request context for handlers to access.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		cookie, err := r.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
			// If invalid, sessionID remains empty and we'll generate a new one
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			setSessionCookie(w, sessionID)
		}

		ctx := setSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
