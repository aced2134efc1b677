package auth

import (
	"context"
	"errors"
	"log"

	"github.com/trinesolutions/website-backend/internal/model"
)

var (
	// ErrUnauthenticated covers every failure a caller must not be able to
	// tell apart: missing, malformed, expired or mis-signed tokens, and
	// tokens whose subject no longer exists in the store.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrDisabled means the token was valid but the account is inactive.
	// Distinct from ErrUnauthenticated so the gate can answer 403 vs 401.
	ErrDisabled = errors.New("account disabled")
)

// Resolver turns a bearer token into an authenticated AdminAccount.  It is
// the single checkpoint every admin-only operation passes through; each
// call re-verifies the token and performs exactly one store lookup, with
// no caching across requests.
type Resolver struct {
	tokens *TokenService
	store  AdminStore
}

func NewResolver(tokens *TokenService, store AdminStore) *Resolver {
	return &Resolver{tokens: tokens, store: store}
}

// Resolve verifies the token and loads the referenced account.  An unknown
// subject is reported identically to an invalid token; callers cannot use
// this path to probe which account ids exist.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.AdminAccount, error) {
	subject, err := r.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	acct, err := r.store.AdminByID(ctx, subject)
	if err != nil {
		if !errors.Is(err, ErrAdminNotFound) {
			// Store trouble is logged but still surfaces as a plain
			// authentication failure to the caller.
			log.Printf("auth: admin lookup failed: %v", err)
		}
		return nil, ErrUnauthenticated
	}
	if !acct.IsActive {
		return nil, ErrDisabled
	}
	return acct, nil
}
