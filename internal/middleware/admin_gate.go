// Package middleware provides shared request processing for handlers.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/model"
)

// adminContextKey is where the gate stores the resolved account on the
// echo context.
const adminContextKey = "admin"

// SessionResolver is the dependency the gate needs: something that turns a
// bearer token into an authenticated admin account.  *auth.Resolver is the
// production implementation; tests supply stubs.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.AdminAccount, error)
}

// AdminGate returns an Echo middleware that guards admin-only routes.  It
// extracts the bearer token from the Authorization header, resolves it to
// an active admin account and stores the account on the request context.
// Handlers behind the gate may assume a valid, active account is present
// and never re-check token validity or activity themselves.
//
// Failure mapping: anything that prevents authentication answers 401; a
// valid token for a deactivated account answers 403.
func AdminGate(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer <token>".  Missing or malformed
			// headers short-circuit before any store work happens.
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			token := strings.TrimPrefix(header, "Bearer ")

			acct, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrDisabled) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "account disabled"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(adminContextKey, acct)
			return next(c)
		}
	}
}

// AdminFromContext returns the account the gate stored, or nil when called
// outside a gated route.
func AdminFromContext(c echo.Context) *model.AdminAccount {
	acct, _ := c.Get(adminContextKey).(*model.AdminAccount)
	return acct
}
