package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/handler"
	"github.com/trinesolutions/website-backend/internal/model"
	"github.com/trinesolutions/website-backend/internal/repository"
)

// memStore is an in-memory auth.AdminStore with the same duplicate-email
// behaviour the MySQL repo has.
type memStore struct {
	accounts map[string]*model.AdminAccount
}

func newMemStore() *memStore {
	return &memStore{accounts: map[string]*model.AdminAccount{}}
}

func (s *memStore) CountAdmins(context.Context) (int64, error) {
	return int64(len(s.accounts)), nil
}

func (s *memStore) AdminByEmail(_ context.Context, email string) (*model.AdminAccount, error) {
	for _, a := range s.accounts {
		if a.Email == strings.ToLower(email) {
			return a, nil
		}
	}
	return nil, auth.ErrAdminNotFound
}

func (s *memStore) AdminByID(_ context.Context, id string) (*model.AdminAccount, error) {
	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return nil, auth.ErrAdminNotFound
}

func (s *memStore) InsertAdmin(ctx context.Context, a *model.AdminAccount) error {
	if _, err := s.AdminByEmail(ctx, a.Email); err == nil {
		return repository.ErrEmailExists
	}
	cp := *a
	s.accounts[cp.ID] = &cp
	return nil
}

func newTestAuthHandler(store auth.AdminStore) (*handler.AuthHandler, *auth.TokenService) {
	tokens := auth.NewTokenService([]byte("handler-test-secret"), time.Hour)
	return handler.NewAuthHandler(store, tokens, bcrypt.MinCost), tokens
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func authRouter(h *handler.AuthHandler) *echo.Echo {
	e := echo.New()
	e.POST("/api/admin/register", h.Register)
	e.POST("/api/admin/login", h.Login)
	return e
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	store := newMemStore()
	h, tokens := newTestAuthHandler(store)
	e := authRouter(h)

	rec := postJSON(e, "/api/admin/register",
		`{"email":"New@Example.com","password":"pw123456","name":"New Admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		AccessToken string             `json:"access_token"`
		TokenType   string             `json:"token_type"`
		User        model.AdminAccount `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.True(t, resp.User.IsActive)

	subject, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)

	// The stored hash must never leak through the JSON response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	store := newMemStore()
	h, _ := newTestAuthHandler(store)
	e := authRouter(h)

	rec := postJSON(e, "/api/admin/register",
		`{"email":"Admin@Example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/admin/register",
		`{"email":"admin@example.com","password":"other-pw"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")

	n, _ := store.CountAdmins(context.Background())
	assert.EqualValues(t, 1, n)
}

func TestRegister_MissingFields(t *testing.T) {
	h, _ := newTestAuthHandler(newMemStore())
	e := authRouter(h)

	for _, body := range []string{
		`{}`,
		`{"email":"a@b.c"}`,
		`{"password":"pw123456"}`,
	} {
		rec := postJSON(e, "/api/admin/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestLogin_Success(t *testing.T) {
	store := newMemStore()
	h, tokens := newTestAuthHandler(store)
	e := authRouter(h)

	rec := postJSON(e, "/api/admin/register",
		`{"email":"ops@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/admin/login",
		`{"email":"OPS@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := tokens.Verify(resp.AccessToken)
	assert.NoError(t, err)
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	store := newMemStore()
	h, _ := newTestAuthHandler(store)
	e := authRouter(h)

	rec := postJSON(e, "/api/admin/register",
		`{"email":"real@example.com","password":"correct-pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPass := postJSON(e, "/api/admin/login",
		`{"email":"real@example.com","password":"bad-pw"}`)
	unknownEmail := postJSON(e, "/api/admin/login",
		`{"email":"nobody@example.com","password":"bad-pw"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknownEmail.Body.String())
}

func TestLogin_DisabledAccount(t *testing.T) {
	store := newMemStore()
	hash, err := auth.HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	store.accounts["id-off"] = &model.AdminAccount{
		ID: "id-off", Email: "off@example.com", PasswordHash: hash,
		Role: "admin", IsActive: false,
	}
	h, _ := newTestAuthHandler(store)
	e := authRouter(h)

	rec := postJSON(e, "/api/admin/login",
		`{"email":"off@example.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "account disabled")
}
