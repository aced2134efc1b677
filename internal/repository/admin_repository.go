package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/model"
)

// AdminRepo persists admin accounts.  It implements auth.AdminStore; the
// compile-time assertion below keeps the seam honest.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

var _ auth.AdminStore = (*AdminRepo)(nil)

const adminColumns = "id,email,password_hash,name,role,is_active,created_at"

// scanAdmin builds a typed AdminAccount from a row and validates the fields
// the auth layer depends on.  A stored row missing id, email or hash is
// corrupt and is reported as not-found rather than half-decoded.
func scanAdmin(row *sql.Row) (*model.AdminAccount, error) {
	var a model.AdminAccount
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.IsActive, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, auth.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	if a.ID == "" || a.Email == "" || a.PasswordHash == "" {
		return nil, auth.ErrAdminNotFound
	}
	return &a, nil
}

// CountAdmins returns the total number of admin accounts.
func (r *AdminRepo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&n)
	return n, err
}

// AdminByEmail fetches an account by normalized email.
func (r *AdminRepo) AdminByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanAdmin(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE email=? LIMIT 1", email))
}

// AdminByID fetches an account by id.
func (r *AdminRepo) AdminByID(ctx context.Context, id string) (*model.AdminAccount, error) {
	return scanAdmin(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE id=? LIMIT 1", id))
}

// InsertAdmin persists a new account.  The UNIQUE index on email is the
// authoritative duplicate check; violations surface as ErrEmailExists.
func (r *AdminRepo) InsertAdmin(ctx context.Context, a *model.AdminAccount) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins ("+adminColumns+") VALUES (?,?,?,?,?,?,?)",
		a.ID, strings.ToLower(strings.TrimSpace(a.Email)), a.PasswordHash,
		a.Name, a.Role, a.IsActive, a.CreatedAt)
	if isDuplicate(err) {
		return ErrEmailExists
	}
	return err
}
