// Package auth manages operator sessions: a signed cookie carrying the
// signed-in user, middleware that loads it into the request context, and
// the sign-in/sign-out operations used by the login and logout features.
package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Session value keys.
const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	userNameKey  = "user_name"
	userRoleKey  = "user_role"
	userScopeKey = "user_scope"
	userHomeKey  = "user_home_framework"
)

// SessionUser is what we cache in the session and inject into r.Context().
type SessionUser struct {
	ID              string
	Name            string
	Role            string
	DataScope       string
	HomeFrameworkID string // hex of the home framework for framework_only scope
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// SessionManager wraps the cookie store and exposes session middleware.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. An empty key is
// tolerated only for development: a random key is generated, which
// invalidates sessions on restart.
func NewSessionManager(key, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	raw := []byte(key)
	if len(raw) == 0 {
		logger.Warn("session key not configured; generating a volatile dev key")
		raw = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(raw)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: name, log: logger}, nil
}

// CurrentUser returns the signed-in user from the request context.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// SignIn records the user in the session cookie.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userRoleKey] = u.Role
	sess.Values[userScopeKey] = u.DataScope
	sess.Values[userHomeKey] = u.HomeFrameworkID
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if they are signed in.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:              getString(sess, userIDKey),
				Name:            getString(sess, userNameKey),
				Role:            getString(sess, userRoleKey),
				DataScope:       getString(sess, userScopeKey),
				HomeFrameworkID: getString(sess, userHomeKey),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by
// LoadSessionUser). Browsers are redirected to /login with a return URL;
// other callers get a plain 401.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		if wantsHTML(r) {
			ret := url.QueryEscape(currentURI(r))
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures the signed-in user holds one of the allowed roles.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				if wantsHTML(r) {
					ret := url.QueryEscape(currentURI(r))
					http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if _, allowed := set[strings.ToLower(u.Role)]; !allowed {
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithUser returns a request carrying u in its context. Test helper for
// handler tests that bypass the session cookie.
func WithUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func getString(sess *sessions.Session, key string) string {
	s, _ := sess.Values[key].(string)
	return s
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	if r.URL.RawQuery != "" {
		return r.URL.Path + "?" + r.URL.RawQuery
	}
	return r.URL.Path
}
