package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/storage"
	"github.com/loganlanou/popx/storage/db"
)

// NewTestContext creates a new Echo context with a JSON body for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// NewTestFormContext creates an Echo context carrying an urlencoded form post
func NewTestFormContext(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// SetTestBrowser puts a browser's auth context and form into the Echo context
// the way the session middleware does
func SetTestBrowser(c echo.Context, authCtx *auth.Context, form *authform.Form) {
	c.Set(auth.SessionIDKey, "test-session")
	c.Set(auth.ContextKey, authCtx)
	c.Set(authform.FormKey, form)
}

// NewTestProvider returns an instant mock provider holding one account
func NewTestProvider() *identity.MockProvider {
	provider := identity.NewMockProvider(0)
	if _, err := provider.Seed(identity.SignupParams{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
	}); err != nil {
		panic("failed to seed test provider: " + err.Error())
	}
	return provider
}

// NewTestDB creates a test database with migrations applied
func NewTestDB() (*sql.DB, *db.Queries, func()) {
	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return database, queries, cleanup
}

// NewTestStoreProvider returns a database backed provider with a fast bcrypt cost
func NewTestStoreProvider() (*identity.StoreProvider, func()) {
	_, queries, cleanup := NewTestDB()
	provider := identity.NewStoreProvider(queries).WithCost(4)
	if _, err := provider.Signup(context.Background(), identity.SignupParams{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
	}); err != nil {
		cleanup()
		panic("failed to seed store provider: " + err.Error())
	}
	return provider, cleanup
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
