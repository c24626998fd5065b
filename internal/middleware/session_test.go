package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSession_SameBrowserSameState(t *testing.T) {
	provider := identity.NewMockProvider(0)
	contexts := session.NewRegistry(time.Hour, func() *auth.Context { return auth.NewContext(provider) })
	forms := session.NewRegistry(time.Hour, authform.New)
	t.Cleanup(contexts.Close)
	t.Cleanup(forms.Close)

	mw := LoadSession(session.NewManager("test-secret", 3600, false), contexts, forms)

	var seen []*auth.Context
	var seenForms []*authform.Form
	handler := mw(func(c echo.Context) error {
		authCtx, ok := auth.GetContext(c)
		require.True(t, ok)
		seen = append(seen, authCtx)

		form, ok := c.Get(authform.FormKey).(*authform.Form)
		require.True(t, ok)
		seenForms = append(seenForms, form)

		_, ok = auth.GetSessionID(c)
		require.True(t, ok)
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	cookies := rec.Result().Cookies()

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	// a different browser without the cookie
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	require.Len(t, seen, 3)
	assert.Same(t, seen[0], seen[1])
	assert.NotSame(t, seen[0], seen[2])
	assert.Same(t, seenForms[0], seenForms[1])
	assert.NotSame(t, seenForms[0], seenForms[2])
	assert.Equal(t, 2, contexts.Len())
}
