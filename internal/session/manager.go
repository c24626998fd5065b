package session

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/notify"
)

const (
	sessionName = "popx_session"
	idKey       = "id"
	flashKey    = "notifications"
)

// Manager keeps the browser session ID and pending notifications in a signed cookie
type Manager struct {
	store sessions.Store
}

// NewManager creates a new session manager
func NewManager(secret string, maxAge int, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

// EnsureID returns the browser's session ID, issuing a new one when the
// cookie is missing or cannot be decoded
func (m *Manager) EnsureID(c echo.Context) (string, error) {
	// a tampered or stale cookie still yields a usable empty session
	session, _ := m.store.Get(c.Request(), sessionName)

	if id, ok := session.Values[idKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[idKey] = id
	session.IsNew = true

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	return id, nil
}

// AddNotification queues a toast for the next page render
func (m *Manager) AddNotification(c echo.Context, n notify.Notification) error {
	session, _ := m.store.Get(c.Request(), sessionName)

	session.AddFlash(n, flashKey)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

// PopNotifications returns and clears the queued toasts
func (m *Manager) PopNotifications(c echo.Context) ([]notify.Notification, error) {
	session, _ := m.store.Get(c.Request(), sessionName)

	flashes := session.Flashes(flashKey)
	if len(flashes) == 0 {
		return nil, nil
	}

	out := make([]notify.Notification, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(notify.Notification); ok {
			out = append(out, n)
		}
	}

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return out, fmt.Errorf("failed to clear notifications: %w", err)
	}

	return out, nil
}
