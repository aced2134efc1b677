package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/trinesolutions/website-backend/internal/model"
)

// Default credentials created when the store holds no admin accounts at
// all.  Operators are warned at startup and are expected to replace this
// account immediately after first login.
const (
	DefaultAdminEmail    = "admin@trinesolutions.com"
	DefaultAdminPassword = "TrineAdmin2025!"
	DefaultAdminName     = "Administrator"
)

// EnsureDefaultAdmin guarantees at least one admin account exists.  It runs
// once at startup, before the listener accepts traffic, and only ever acts
// when the store is empty, so calling it on every boot is safe.
//
// Errors are returned for the caller to log; per the warn-and-continue
// startup policy the server still starts when bootstrap fails, so operators
// can diagnose store connectivity through the running process.
func EnsureDefaultAdmin(ctx context.Context, store AdminStore, bcryptCost int) error {
	n, err := store.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count admins: %w", err)
	}
	if n > 0 {
		log.Printf("bootstrap: %d admin account(s) present, skipping default admin", n)
		return nil
	}

	hash, err := HashPassword(DefaultAdminPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("bootstrap: hash default password: %w", err)
	}
	acct := &model.AdminAccount{
		ID:           uuid.NewString(),
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Name:         DefaultAdminName,
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := store.InsertAdmin(ctx, acct); err != nil {
		return fmt.Errorf("bootstrap: insert default admin: %w", err)
	}
	log.Printf("bootstrap: created default admin %q, change this password immediately", DefaultAdminEmail)
	return nil
}
