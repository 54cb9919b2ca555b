// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/inventra/inventory-backend/internal/config"
)

const sessionUserIDKey = "user_id"

// SessionManager stores the logged-in user id in a signed cookie.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
}

func NewSessionManager(cfg config.SessionConfig) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store, name: cfg.CookieName}
}

// UserID returns the user bound to the request's session, if any. Tampered
// or expired cookies read as no session.
func (m *SessionManager) UserID(r *http.Request) (uint, bool) {
	session, err := m.store.Get(r, m.name)
	if err != nil || session.IsNew {
		return 0, false
	}
	userID, ok := session.Values[sessionUserIDKey].(uint)
	return userID, ok && userID != 0
}

func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, userID uint) error {
	// A broken incoming cookie still yields a fresh session to overwrite it.
	session, _ := m.store.Get(r, m.name)
	session.Values[sessionUserIDKey] = userID
	return session.Save(r, w)
}

func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.name)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
