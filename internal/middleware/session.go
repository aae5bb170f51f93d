package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"travelguide-backend/internal/session"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionManager issues the session cookie and resolves the caller's isolated
// Session instance on every request.
type SessionManager struct {
	store      *session.Store
	cookieName string
	secure     bool
}

func NewSessionManager(store *session.Store, cookieName string, secure bool) *SessionManager {
	return &SessionManager{store: store, cookieName: cookieName, secure: secure}
}

// Middleware attaches the request's Session to the context, minting a new
// session ID cookie when the client does not present a valid one.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(m.cookieName); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}

		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		sess := m.store.Get(id)
		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession returns the Session attached by the middleware, or nil when the
// middleware did not run.
func GetSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(SessionKey).(*session.Session)
	return sess
}
