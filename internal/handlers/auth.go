package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/notify"
	"github.com/loganlanou/popx/internal/session"
	authviews "github.com/loganlanou/popx/views/auth"
	"github.com/loganlanou/popx/views/dashboard"
	"github.com/loganlanou/popx/views/layout"
)

// AuthHandler serves the root page and the auth form posts
type AuthHandler struct {
	sessions *session.Manager
	baseURL  string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, baseURL string) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		baseURL:  baseURL,
	}
}

// HandleIndex shows the dashboard to a signed-in user and the auth form otherwise
func (h *AuthHandler) HandleIndex(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	toasts, err := h.sessions.PopNotifications(c)
	if err != nil {
		slog.Warn("failed to pop notifications", "error", err)
	}

	state := authCtx.State()
	meta := layout.NewPageMeta(c, h.baseURL)

	var body templ.Component
	if state.Authenticated() {
		meta = meta.WithTitle("Dashboard")
		body = dashboard.Page(state.User)
	} else {
		snap := form.Snapshot()
		meta = meta.WithTitle(pageTitle(snap.Mode))
		body = authviews.Page(snap, state.IsLoading)
	}

	return Render(c, layout.Base(meta, state.Authenticated(), state.IsLoading, toasts, body))
}

// HandleMode switches the form between welcome, login and signup
func (h *AuthHandler) HandleMode(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}

	mode, err := authform.ParseMode(c.FormValue("mode"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := form.Select(mode); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return redirectHome(c)
}

// HandlePasswordVisibility keeps what the user typed and flips the password mask
func (h *AuthHandler) HandlePasswordVisibility(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}

	if err := captureFields(c, form); err != nil {
		return err
	}
	form.TogglePassword()

	return redirectHome(c)
}

// HandleLogin submits the login form
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	if authCtx.State().Authenticated() {
		return redirectHome(c)
	}

	if err := captureFields(c, form); err != nil {
		return err
	}
	data := form.Snapshot().Data

	// the outcome must land even if the browser navigates away
	err = authCtx.Login(context.WithoutCancel(c.Request().Context()), data.Email, data.Password)
	h.flash(c, outcome(err, notify.LoginSucceeded, notify.LoginFailed))
	if err == nil {
		form.Reset()
	}

	return redirectHome(c)
}

// HandleSignup submits the signup form
func (h *AuthHandler) HandleSignup(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	if authCtx.State().Authenticated() {
		return redirectHome(c)
	}

	if err := captureFields(c, form); err != nil {
		return err
	}
	data := form.Snapshot().Data

	err = authCtx.Signup(context.WithoutCancel(c.Request().Context()), data.SignupParams())
	h.flash(c, outcome(err, notify.SignupSucceeded, notify.SignupFailed))
	if err == nil {
		form.Reset()
	}

	return redirectHome(c)
}

// HandleLogout signs the browser out and returns it to the welcome screen
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	authCtx.Logout()
	form.Reset()
	h.flash(c, notify.LoggedOut())

	return redirectHome(c)
}

func (h *AuthHandler) flash(c echo.Context, n notify.Notification) {
	if err := h.sessions.AddNotification(c, n); err != nil {
		slog.Warn("failed to queue notification", "title", n.Title, "error", err)
	}
}

// browserState returns the auth context and form loaded by the session middleware
func browserState(c echo.Context) (*auth.Context, *authform.Form, error) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		slog.Error("auth context missing from request", "path", c.Request().URL.Path)
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "session not loaded")
	}

	form, ok := c.Get(authform.FormKey).(*authform.Form)
	if !ok || form == nil {
		slog.Error("auth form missing from request", "path", c.Request().URL.Path)
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "session not loaded")
	}

	return authCtx, form, nil
}

// captureFields applies every posted form field as an input change
func captureFields(c echo.Context, form *authform.Form) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	for name, vals := range values {
		if len(vals) == 0 {
			continue
		}
		value := vals[len(vals)-1]

		if name == authform.FieldIsAgency {
			form.Change(authform.FieldEvent{Name: name, Type: "radio", Checked: value == "true"})
			continue
		}
		form.Change(authform.FieldEvent{Name: name, Type: "text", Value: value})
	}

	return nil
}

// outcome picks the notification for a login or signup result
func outcome(err error, ok, failed func() notify.Notification) notify.Notification {
	switch {
	case err == nil:
		return ok()
	case errors.Is(err, auth.ErrBusy):
		return notify.Busy()
	default:
		return failed()
	}
}

func pageTitle(mode authform.Mode) string {
	switch mode {
	case authform.ModeLogin:
		return "Login"
	case authform.ModeSignup:
		return "Create Account"
	default:
		return "Welcome"
	}
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}
