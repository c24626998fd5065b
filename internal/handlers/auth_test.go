package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(session.NewManager("test-secret", 3600, false), "http://localhost:8000")
}

func TestHandleIndex_NewBrowserSeesWelcome(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := NewTestContext(http.MethodGet, "/", nil)
	SetTestBrowser(c, auth.NewContext(NewTestProvider()), authform.New())

	require.NoError(t, h.HandleIndex(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome to PopX")
	assert.Contains(t, body, `data-mode="welcome"`)
	assert.NotContains(t, body, "Account Settings")
}

func TestHandleIndex_SignedInSeesDashboard(t *testing.T) {
	h := newTestAuthHandler()
	authCtx := auth.NewContext(NewTestProvider())
	c, rec := NewTestContext(http.MethodGet, "/", nil)
	SetTestBrowser(c, authCtx, authform.New())

	require.NoError(t, authCtx.Login(c.Request().Context(), "test@example.com", "secret123"))
	require.NoError(t, h.HandleIndex(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Account Settings")
	assert.Contains(t, body, "Test User")
	assert.NotContains(t, body, "Welcome to PopX")
}

func TestHandleMode(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		wantStatus int
		wantMode   authform.Mode
	}{
		{name: "login", mode: "login", wantStatus: http.StatusSeeOther, wantMode: authform.ModeLogin},
		{name: "signup", mode: "signup", wantStatus: http.StatusSeeOther, wantMode: authform.ModeSignup},
		{name: "back to welcome", mode: "welcome", wantStatus: http.StatusSeeOther, wantMode: authform.ModeWelcome},
		{name: "unknown mode", mode: "admin", wantStatus: http.StatusBadRequest, wantMode: authform.ModeWelcome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAuthHandler()
			form := authform.New()
			c, rec := NewTestFormContext("/auth/mode", url.Values{"mode": {tt.mode}})
			SetTestBrowser(c, auth.NewContext(NewTestProvider()), form)

			err := h.HandleMode(c)
			if tt.wantStatus == http.StatusBadRequest {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, http.StatusBadRequest, he.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
			}
			assert.Equal(t, tt.wantMode, form.Mode())
		})
	}
}

func TestHandlePasswordVisibility_KeepsTypedFields(t *testing.T) {
	h := newTestAuthHandler()
	form := authform.New()
	require.NoError(t, form.Select(authform.ModeLogin))

	c, rec := NewTestFormContext("/auth/password-visibility", url.Values{
		"email":    {"someone@example.com"},
		"password": {"hunter2"},
	})
	SetTestBrowser(c, auth.NewContext(NewTestProvider()), form)

	require.NoError(t, h.HandlePasswordVisibility(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	snap := form.Snapshot()
	assert.True(t, snap.ShowPassword)
	assert.Equal(t, "someone@example.com", snap.Data.Email)
	assert.Equal(t, "hunter2", snap.Data.Password)
	assert.Equal(t, authform.ModeLogin, snap.Mode)
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantAuth  bool
		wantMode  authform.Mode
		wantEmail string
	}{
		{
			name:     "valid credentials",
			email:    "test@example.com",
			password: "secret123",
			wantAuth: true,
			wantMode: authform.ModeWelcome,
		},
		{
			name:      "wrong password keeps fields",
			email:     "test@example.com",
			password:  "nope",
			wantAuth:  false,
			wantMode:  authform.ModeLogin,
			wantEmail: "test@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAuthHandler()
			authCtx := auth.NewContext(NewTestProvider())
			form := authform.New()
			require.NoError(t, form.Select(authform.ModeLogin))

			c, rec := NewTestFormContext("/auth/login", url.Values{
				"email":    {tt.email},
				"password": {tt.password},
			})
			SetTestBrowser(c, authCtx, form)

			require.NoError(t, h.HandleLogin(c))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantAuth, authCtx.State().Authenticated())
			assert.False(t, authCtx.State().IsLoading)
			assert.Equal(t, tt.wantMode, form.Mode())
			assert.Equal(t, tt.wantEmail, form.Snapshot().Data.Email)
			assert.NotEmpty(t, rec.Result().Cookies(), "notification should be flashed")
		})
	}
}

func TestHandleSignup_CreatesAgencyUser(t *testing.T) {
	h := newTestAuthHandler()
	authCtx := auth.NewContext(NewTestProvider())
	form := authform.New()
	require.NoError(t, form.Select(authform.ModeSignup))

	c, rec := NewTestFormContext("/auth/signup", url.Values{
		"name":     {"Marry Doe"},
		"phone":    {"555-0100"},
		"email":    {"marry@example.com"},
		"password": {"pw"},
		"company":  {"Acme"},
		"isAgency": {"true"},
	})
	SetTestBrowser(c, authCtx, form)

	require.NoError(t, h.HandleSignup(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	user := authCtx.User()
	require.NotNil(t, user)
	assert.Equal(t, "Marry Doe", user.Name)
	assert.Equal(t, "marry@example.com", user.Email)
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, "Acme", user.Company)
	assert.True(t, user.IsAgency)
	assert.Equal(t, authform.ModeWelcome, form.Mode())
}

func TestHandleSignup_TakenEmailKeepsForm(t *testing.T) {
	h := newTestAuthHandler()
	authCtx := auth.NewContext(NewTestProvider())
	form := authform.New()
	require.NoError(t, form.Select(authform.ModeSignup))

	c, _ := NewTestFormContext("/auth/signup", url.Values{
		"name":     {"Someone Else"},
		"email":    {"TEST@example.com"},
		"password": {"pw"},
		"isAgency": {"false"},
	})
	SetTestBrowser(c, authCtx, form)

	require.NoError(t, h.HandleSignup(c))

	assert.Nil(t, authCtx.User())
	snap := form.Snapshot()
	assert.Equal(t, authform.ModeSignup, snap.Mode)
	assert.Equal(t, "Someone Else", snap.Data.Name)
	assert.False(t, snap.Data.IsAgency)
}

func TestHandleLogout_ClearsUserAndForm(t *testing.T) {
	h := newTestAuthHandler()
	authCtx := auth.NewContext(NewTestProvider())
	form := authform.New()

	c, rec := NewTestFormContext("/auth/logout", url.Values{})
	SetTestBrowser(c, authCtx, form)
	require.NoError(t, authCtx.Login(c.Request().Context(), "test@example.com", "secret123"))
	require.NoError(t, form.Select(authform.ModeLogin))

	require.NoError(t, h.HandleLogout(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Nil(t, authCtx.User())
	assert.Equal(t, authform.ModeWelcome, form.Mode())
}

func TestHandleIndex_MissingSessionIsServerError(t *testing.T) {
	h := newTestAuthHandler()
	c, _ := NewTestContext(http.MethodGet, "/", nil)

	err := h.HandleIndex(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

func TestHandleLogin_StoreProvider(t *testing.T) {
	provider, cleanup := NewTestStoreProvider()
	defer cleanup()

	h := newTestAuthHandler()
	authCtx := auth.NewContext(provider)
	form := authform.New()
	require.NoError(t, form.Select(authform.ModeLogin))

	c, _ := NewTestFormContext("/auth/login", url.Values{
		"email":    {"Test@Example.com"},
		"password": {"secret123"},
	})
	SetTestBrowser(c, authCtx, form)

	require.NoError(t, h.HandleLogin(c))

	user := authCtx.User()
	require.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
}
