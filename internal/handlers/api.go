package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/internal/notify"
)

// APIHandler exposes the auth context and form state as JSON
type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	IsAgency bool   `json:"isAgency"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

// authResponse is returned by login, signup and logout
type authResponse struct {
	State        auth.State          `json:"state"`
	Notification notify.Notification `json:"notification"`
}

type errorResponse struct {
	Error        string               `json:"error"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// HandleSession returns the current user and loading flag
func (h *APIHandler) HandleSession(c echo.Context) error {
	authCtx, _, err := browserState(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authCtx.State())
}

// HandleLogin verifies credentials and signs the browser in
func (h *APIHandler) HandleLogin(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	err = authCtx.Login(context.WithoutCancel(c.Request().Context()), req.Email, req.Password)
	n := outcome(err, notify.LoginSucceeded, notify.LoginFailed)
	if err != nil {
		return authError(c, err, n)
	}
	form.Reset()

	return c.JSON(http.StatusOK, authResponse{State: authCtx.State(), Notification: n})
}

// HandleSignup registers an account and signs it in
func (h *APIHandler) HandleSignup(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	err = authCtx.Signup(context.WithoutCancel(c.Request().Context()), identity.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Company:  req.Company,
		IsAgency: req.IsAgency,
	})
	n := outcome(err, notify.SignupSucceeded, notify.SignupFailed)
	if err != nil {
		return authError(c, err, n)
	}
	form.Reset()

	return c.JSON(http.StatusCreated, authResponse{State: authCtx.State(), Notification: n})
}

// HandleLogout clears the signed-in user
func (h *APIHandler) HandleLogout(c echo.Context) error {
	authCtx, form, err := browserState(c)
	if err != nil {
		return err
	}

	authCtx.Logout()
	form.Reset()

	return c.JSON(http.StatusOK, authResponse{State: authCtx.State(), Notification: notify.LoggedOut()})
}

// HandleGetForm returns the form snapshot without the password
func (h *APIHandler) HandleGetForm(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, form.Snapshot())
}

// HandleFormMode switches the form mode
func (h *APIHandler) HandleFormMode(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}

	var req modeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if err := form.Select(authform.Mode(req.Mode)); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, form.Snapshot())
}

// HandleFormField applies one input change event
func (h *APIHandler) HandleFormField(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}

	var ev authform.FieldEvent
	if err := c.Bind(&ev); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	form.Change(ev)
	return c.JSON(http.StatusOK, form.Snapshot())
}

// HandleFormPasswordVisibility flips the password mask
func (h *APIHandler) HandleFormPasswordVisibility(c echo.Context) error {
	_, form, err := browserState(c)
	if err != nil {
		return err
	}

	form.TogglePassword()
	return c.JSON(http.StatusOK, form.Snapshot())
}

func authError(c echo.Context, err error, n notify.Notification) error {
	status := http.StatusUnauthorized
	if errors.Is(err, auth.ErrBusy) {
		status = http.StatusConflict
	}

	slog.Debug("auth api request failed", "path", c.Request().URL.Path, "status", status)

	return c.JSON(status, errorResponse{
		Error:        err.Error(),
		Notification: &n,
	})
}
