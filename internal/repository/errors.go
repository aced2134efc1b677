// Package repository implements raw-SQL data access for every collection
// the backend persists.  Sentinel errors let handlers map failures to HTTP
// statuses without inspecting driver internals.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an update or delete matches no row, or a
// single-row lookup comes back empty.  Handlers translate it to 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned on unique-key violations for email columns.
// Handlers translate it to 409.
var ErrEmailExists = errors.New("email already exists")

// isDuplicate reports whether err is a MySQL duplicate-entry error (1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
