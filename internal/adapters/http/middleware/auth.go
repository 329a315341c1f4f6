package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"clubadmin/internal/domain/admin"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// TokenCookie is the cookie holding the backend-issued admin token.
const TokenCookie = "token"

// tokenMaxAge matches the backend's one-day token lifetime.
const tokenMaxAge = 86400

// Session is the request-scoped authorization state.
// INVARIANT: Authorized implies Token is non-empty
type Session struct {
	Authorized bool
	User       admin.User
	Token      string
	BackendURL string
}

// UserChecker resolves a token to the admin who owns it.
type UserChecker interface {
	CurrentUser(ctx context.Context, token string) (admin.User, error)
}

// UserCheckerFunc adapts a function to UserChecker.
type UserCheckerFunc func(ctx context.Context, token string) (admin.User, error)

// CurrentUser implements UserChecker.
func (f UserCheckerFunc) CurrentUser(ctx context.Context, token string) (admin.User, error) {
	return f(ctx, token)
}

// Flasher queues a one-shot message for the next page.
type Flasher interface {
	Flash(w http.ResponseWriter, r *http.Request, kind, message string)
}

// Auth returns middleware that checks the token cookie once per page load and
// puts the resulting Session in context. It never blocks; use RequireAuth for that.
// Requests to /static/ are excluded.
// POST: No backend call is made when the cookie is absent
func Auth(checker UserChecker, backendURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip static assets
			if strings.HasPrefix(r.URL.Path, "/static/") {
				next.ServeHTTP(w, r)
				return
			}

			sess := Session{BackendURL: backendURL}
			if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
				user, err := checker.CurrentUser(r.Context(), cookie.Value)
				if err != nil {
					slog.Warn("auth_check_failed", "path", r.URL.Path, "error", err)
				} else {
					sess.Authorized = true
					sess.User = user
					sess.Token = cookie.Value
				}
			}
			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// RequireAuth returns middleware that redirects unauthorized requests to /login
// before the wrapped handler, and so before any data request, runs.
func RequireAuth(flash Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, _ := GetSessionFromContext(r.Context()); !sess.Authorized {
				slog.Warn("auth_denied", "path", r.URL.Path, "method", r.Method)
				if flash != nil {
					flash.Flash(w, r, "error", "Please log in to continue.")
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// IsAuthorized reports whether the request carries a verified admin token.
func IsAuthorized(ctx context.Context) bool {
	sess, _ := GetSessionFromContext(ctx)
	return sess.Authorized
}

// ContextWithSession returns a context with the given session set.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SetTokenCookie stores the backend token on the panel origin.
func SetTokenCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   tokenMaxAge,
	})
}

// ClearTokenCookie removes the token cookie.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
