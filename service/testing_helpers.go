package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	testDemoEmail    = "demo@example.com"
	testDemoPassword = "demo-password"
)

// newTestConfig returns a mock-provider configuration with no simulated delay
func newTestConfig() *Config {
	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Session.Secret = "test-session-secret"
	config.Session.TTL = time.Hour
	config.Identity.Provider = ProviderMock
	config.Demo.Name = "Demo User"
	config.Demo.Email = testDemoEmail
	config.Demo.Password = testDemoPassword
	return config
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	config := newTestConfig()
	provider, err := NewProvider(config, nil)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	svc := New(config, provider)
	t.Cleanup(svc.Close)

	e := echo.New()
	// Just set status code, don't write response
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(http.StatusInternalServerError)
		}
	}

	svc.RegisterRoutes(e)

	return e, svc
}

// testBrowser replays cookies between requests like a real browser
type testBrowser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newTestBrowser(t *testing.T, e *echo.Echo) *testBrowser {
	return &testBrowser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
}

func (b *testBrowser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *testBrowser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func (b *testBrowser) postJSON(path string, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return b.do(req)
}

func (b *testBrowser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()

	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}

	return rec
}
