package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-hub/internal/model"
	"user-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	return he.Code
}

func TestExtractClaims(t *testing.T) {
	ts := service.NewTokenService([]byte("testsecret"), time.Minute)

	// missing header → 401
	ctx, _ := newContext("")
	_, err := ExtractClaims(ctx, ts)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	// bad scheme → 401
	ctx, _ = newContext("BadHeader")
	_, err = ExtractClaims(ctx, ts)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	// scheme 大小寫須完全相符 → 401
	ctx, _ = newContext("bearer sometoken")
	_, err = ExtractClaims(ctx, ts)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	// invalid token → 403
	ctx, _ = newContext("Bearer invalid")
	_, err = ExtractClaims(ctx, ts)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))

	// wrong secret → 403
	other := service.NewTokenService([]byte("other"), time.Minute)
	tok, err := other.Issue(model.User{ID: "x", Role: model.RoleUser})
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	_, err = ExtractClaims(ctx, ts)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))

	// valid token
	tok, err = ts.Issue(model.User{ID: "uid-1", Role: model.RoleAdmin})
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := ExtractClaims(ctx, ts)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestExtractClaimsExpired(t *testing.T) {
	ts := service.NewTokenService([]byte("s"), time.Millisecond)
	tok, err := ts.Issue(model.User{ID: "u", Role: model.RoleUser})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	ctx, _ := newContext("Bearer " + tok)
	_, err = ExtractClaims(ctx, ts)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, he.Code)
	require.Equal(t, "Forbidden: Token has expired.", he.Message)
}

func TestRequireAuth(t *testing.T) {
	ts := service.NewTokenService([]byte("secret"), time.Minute)
	tok, err := ts.Issue(model.User{ID: "uid-2", Role: model.RoleUser})
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(ts)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.CustomClaims)
		require.Equal(t, "uid-2", cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}
