package model

import "time"

// AdminAccount represents one authorized operator of the admin surface.
// It is constructed at the repository boundary from a stored row; the
// password hash never leaves the server (json:"-").
//
// Invariants enforced across the codebase:
//   - Email is unique case-insensitively (normalized to lowercase before
//     any store operation, plus a UNIQUE index on the column).
//   - PasswordHash is never empty for a persisted account.
//   - An inactive account never authenticates, even with a valid token.
type AdminAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
