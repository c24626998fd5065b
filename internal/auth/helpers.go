package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/identity"
)

// Context keys for storing auth data
const (
	ContextKey   = "auth_context"
	SessionIDKey = "session_id"
)

// GetContext retrieves the browser's auth context loaded by the session middleware
func GetContext(c echo.Context) (*Context, bool) {
	authCtx, ok := c.Get(ContextKey).(*Context)
	return authCtx, ok && authCtx != nil
}

// GetUser returns the signed-in user of the current request
func GetUser(c echo.Context) (*identity.User, bool) {
	authCtx, ok := GetContext(c)
	if !ok {
		return nil, false
	}
	user := authCtx.User()
	return user, user != nil
}

// GetSessionID returns the browser session ID set by the session middleware
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(SessionIDKey).(string)
	return id, ok && id != ""
}
