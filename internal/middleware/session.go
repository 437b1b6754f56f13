package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"concert-ticketing-platform/internal/models"
)

const sessionName = "session"

type contextKey string

const userContextKey contextKey = "user"

// UserLoader resolves the session's user id to a full user record
type UserLoader interface {
	GetByID(id int) (*models.User, error)
}

// SessionMiddleware provides cookie-session identity: it signs users in and
// out and threads the authenticated user through the request context.
type SessionMiddleware struct {
	store sessions.Store
	users UserLoader
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store, users UserLoader) *SessionMiddleware {
	return &SessionMiddleware{store: store, users: users}
}

// LoadUser resolves the session cookie to a user and stores it in the
// request context. Requests without a valid session pass through
// unauthenticated.
func (m *SessionMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetByID(userID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects unauthenticated requests
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests from non-admin users
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		if !user.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"admin access required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SignIn writes the user id into a fresh session cookie
func (m *SessionMiddleware) SignIn(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut clears the session cookie
func (m *SessionMiddleware) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// GetUserFromContext returns the authenticated user, or nil
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// WithUser returns a context carrying the given user. Intended for tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
