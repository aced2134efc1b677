package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/middleware"
	"github.com/trinesolutions/website-backend/internal/model"
	"github.com/trinesolutions/website-backend/internal/repository"
)

// AuthHandler bundles dependencies for the admin auth endpoints.
type AuthHandler struct {
	Admins     auth.AdminStore
	Tokens     *auth.TokenService
	BcryptCost int
}

func NewAuthHandler(admins auth.AdminStore, tokens *auth.TokenService, cost int) *AuthHandler {
	return &AuthHandler{Admins: admins, Tokens: tokens, BcryptCost: cost}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type authResp struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresAt   time.Time           `json:"expires_at"`
	User        *model.AdminAccount `json:"user"`
}

// Register creates an admin account and returns a token immediately.
// Duplicate emails (case-insensitive) answer 409; the duplicate check is
// advisory and the UNIQUE index on the email column is the backstop for
// concurrent registrations.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.Email
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Admins.AdminByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	} else if !errors.Is(err, auth.ErrAdminNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	acct := &model.AdminAccount{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         name,
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Admins.InsertAdmin(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	token, exp, err := h.Tokens.Issue(acct.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		AccessToken: token, TokenType: "bearer", ExpiresAt: exp, User: acct,
	})
}

// Login verifies credentials and returns a fresh token.  Unknown email and
// wrong password produce identical responses so the endpoint cannot be
// used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Admins.AdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	if !auth.VerifyPassword(acct.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if !acct.IsActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account disabled"})
	}

	token, exp, err := h.Tokens.Issue(acct.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		AccessToken: token, TokenType: "bearer", ExpiresAt: exp, User: acct,
	})
}

// Me returns the account the admin gate resolved for this request.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.AdminFromContext(c))
}
