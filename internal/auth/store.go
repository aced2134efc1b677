package auth

import (
	"context"
	"errors"

	"github.com/trinesolutions/website-backend/internal/model"
)

// ErrAdminNotFound is returned by AdminStore implementations when no
// account matches the lookup key.
var ErrAdminNotFound = errors.New("admin account not found")

// AdminStore is the seam between the auth layer and the backing database.
// Emails passed in are expected to be lowercase-normalized by the caller;
// implementations return ErrAdminNotFound for missing accounts so the
// resolver can conflate "unknown subject" with "bad token".
type AdminStore interface {
	CountAdmins(ctx context.Context) (int64, error)
	AdminByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
	AdminByID(ctx context.Context, id string) (*model.AdminAccount, error)
	InsertAdmin(ctx context.Context, a *model.AdminAccount) error
}
