package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/session"
)

// LoadSession resolves the browser session cookie and puts that browser's
// auth context and form state into the Echo context
func LoadSession(sessionMgr *session.Manager, contexts *session.Registry[*auth.Context], forms *session.Registry[*authform.Form]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := sessionMgr.EnsureID(c)
			if err != nil {
				slog.Error("failed to establish browser session", "error", err, "path", c.Request().URL.Path)
				return err
			}

			authCtx := contexts.Get(id)
			c.Set(auth.SessionIDKey, id)
			c.Set(auth.ContextKey, authCtx)
			c.Set(authform.FormKey, forms.Get(id))

			slog.Debug("session loaded",
				"path", c.Request().URL.Path,
				"authenticated", authCtx.State().Authenticated(),
			)

			return next(c)
		}
	}
}
