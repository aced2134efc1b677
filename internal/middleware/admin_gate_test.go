package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/middleware"
	"github.com/trinesolutions/website-backend/internal/model"
)

// stubResolver answers with a fixed account or error and records the token
// it was asked about.
type stubResolver struct {
	acct  *model.AdminAccount
	err   error
	token string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*model.AdminAccount, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.acct, nil
}

func gatedRequest(t *testing.T, resolver middleware.SessionResolver, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/api/admin/me", func(c echo.Context) error {
		acct := middleware.AdminFromContext(c)
		require.NotNil(t, acct)
		return c.JSON(http.StatusOK, acct)
	}, middleware.AdminGate(resolver))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminGate_MissingHeader(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrUnauthenticated}

	rec := gatedRequest(t, resolver, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
	// The resolver must not be consulted for a malformed header.
	assert.Empty(t, resolver.token)
}

func TestAdminGate_NonBearerScheme(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrUnauthenticated}

	rec := gatedRequest(t, resolver, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, resolver.token)
}

func TestAdminGate_InvalidToken(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrUnauthenticated}

	rec := gatedRequest(t, resolver, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
	assert.Equal(t, "not-a-real-token", resolver.token)
}

func TestAdminGate_DisabledAccount(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrDisabled}

	rec := gatedRequest(t, resolver, "Bearer some-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "account disabled")
}

func TestAdminGate_PassesAccountToHandler(t *testing.T) {
	resolver := &stubResolver{acct: &model.AdminAccount{
		ID: "id-9", Email: "boss@example.com", IsActive: true,
	}}

	rec := gatedRequest(t, resolver, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", resolver.token)
	assert.Contains(t, rec.Body.String(), "boss@example.com")
}

func TestAdminFromContext_OutsideGate(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, middleware.AdminFromContext(c))
}
