package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTier1_PublicRoutes tests that routes exist and answer a fresh browser
func TestTier1_PublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"Root page", "GET", "/", "", http.StatusOK},
		{"Health check", "GET", "/health", "", http.StatusOK},
		{"Session API", "GET", "/api/session", "", http.StatusOK},
		{"Form API", "GET", "/api/form", "", http.StatusOK},
		{"Avatar without user", "GET", "/account/avatar.png", "", http.StatusNotFound},
		{"Select login", "POST", "/auth/mode", "mode=login", http.StatusSeeOther},
		{"Unknown mode", "POST", "/auth/mode", "mode=settings", http.StatusBadRequest},
		{"Logout when signed out", "POST", "/auth/logout", "", http.StatusSeeOther},
		{"Unknown route", "GET", "/shop", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.method == http.MethodPost {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

func TestFreshBrowserSeesWelcome(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	rec := b.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-mode="welcome"`)
	assert.Contains(t, body, "Create Account")
	assert.Contains(t, body, "Already Registered? Login")
	assert.NotContains(t, body, "Account Settings")
}

func TestLoginRejectedKeepsWelcomeFlow(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	b.post("/auth/mode", url.Values{"mode": {"login"}})
	rec := b.post("/auth/login", url.Values{"email": {"a@b.com"}, "password": {"x"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := b.get("/").Body.String()
	assert.Contains(t, page, "Login failed")
	assert.Contains(t, page, `data-variant="destructive"`)
	assert.Contains(t, page, `data-mode="login"`)
	assert.Contains(t, page, `value="a@b.com"`)

	var state auth.State
	require.NoError(t, json.Unmarshal(b.get("/api/session").Body.Bytes(), &state))
	assert.Nil(t, state.User)
	assert.False(t, state.IsLoading)
}

func TestLoginThenLogout(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	b.post("/auth/mode", url.Values{"mode": {"login"}})
	b.post("/auth/login", url.Values{"email": {testDemoEmail}, "password": {testDemoPassword}})

	page := b.get("/").Body.String()
	assert.Contains(t, page, "You have successfully logged in.")
	assert.Contains(t, page, `id="toasts"`)
	assert.Contains(t, page, "Account Settings")
	assert.Contains(t, page, testDemoEmail)

	// toasts are shown once, the dashboard heading stays
	again := b.get("/").Body.String()
	assert.NotContains(t, again, "You have successfully logged in.")
	assert.NotContains(t, again, `id="toasts"`)
	assert.Contains(t, again, "Welcome back!")

	avatar := b.get("/account/avatar.png")
	assert.Equal(t, http.StatusOK, avatar.Code)
	assert.Equal(t, "image/png", avatar.Header().Get("Content-Type"))

	b.post("/auth/logout", nil)
	page = b.get("/").Body.String()
	assert.Contains(t, page, "Logged out successfully")
	assert.Contains(t, page, `data-mode="welcome"`)
}

func TestSignupAgencyShowsDashboard(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	name := gofakeit.Name()
	email := gofakeit.Email()
	phone := gofakeit.Phone()
	company := gofakeit.Company()

	b.post("/auth/mode", url.Values{"mode": {"signup"}})
	rec := b.post("/auth/signup", url.Values{
		"name":     {name},
		"phone":    {phone},
		"email":    {email},
		"password": {gofakeit.Password(true, true, true, false, false, 12)},
		"company":  {company},
		"isAgency": {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := b.get("/").Body.String()
	assert.Contains(t, page, "Account created!")
	assert.Contains(t, page, "Account Settings")

	var state auth.State
	require.NoError(t, json.Unmarshal(b.get("/api/session").Body.Bytes(), &state))
	require.NotNil(t, state.User)
	assert.Equal(t, name, state.User.Name)
	assert.Equal(t, email, state.User.Email)
	assert.Equal(t, phone, state.User.Phone)
	assert.Equal(t, company, state.User.Company)
	assert.True(t, state.User.IsAgency)
}

func TestBrowsersAreIsolated(t *testing.T) {
	e, _ := setupTestEcho(t)
	alice := newTestBrowser(t, e)
	bob := newTestBrowser(t, e)

	rec := alice.postJSON("/api/login", `{"email":"`+testDemoEmail+`","password":"`+testDemoPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state auth.State
	require.NoError(t, json.Unmarshal(bob.get("/api/session").Body.Bytes(), &state))
	assert.Nil(t, state.User)

	require.NoError(t, json.Unmarshal(alice.get("/api/session").Body.Bytes(), &state))
	require.NotNil(t, state.User)
	assert.Equal(t, testDemoEmail, state.User.Email)
}

func TestPasswordToggleRoundTrip(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	b.post("/auth/mode", url.Values{"mode": {"login"}})
	fields := url.Values{"email": {"x@example.com"}, "password": {"p4ss"}}

	b.post("/auth/password-visibility", fields)
	page := b.get("/").Body.String()
	assert.Contains(t, page, `type="text" placeholder="Enter password" value=""`)
	assert.Contains(t, page, `value="x@example.com"`)
	assert.NotContains(t, page, "p4ss")

	b.post("/auth/password-visibility", fields)
	page = b.get("/").Body.String()
	assert.Contains(t, page, `type="password" placeholder="Enter password" value=""`)
	assert.NotContains(t, page, "p4ss")
}

func TestFailedLoginDoesNotEchoPassword(t *testing.T) {
	e, _ := setupTestEcho(t)
	b := newTestBrowser(t, e)

	b.post("/auth/mode", url.Values{"mode": {"login"}})
	b.post("/auth/login", url.Values{"email": {"a@b.com"}, "password": {"typed-secret"}})

	page := b.get("/").Body.String()
	assert.Contains(t, page, "Login failed")
	assert.Contains(t, page, `value="a@b.com"`)
	assert.NotContains(t, page, "typed-secret")
}

func TestHealthReportsProvider(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, ProviderMock, body["identityProvider"])
}
