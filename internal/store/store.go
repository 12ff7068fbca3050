// Package store provides sqlx-backed persistence for users, content items,
// and share links. No handler queries the database directly; all access goes
// through the store types in this package.
package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when signing up with a username that is
	// already registered.
	ErrUsernameTaken = errors.New("username is already registered")

	// ErrShareExists is returned when creating a share link for a user who
	// already has one. The unique index on share_links.owner_id is the source
	// of truth; concurrent enables race to the database, not the application.
	ErrShareExists = errors.New("user already has a share link")
)

// isUniqueConstraintError reports whether err is a unique-index violation.
// Matched by message because database/sql exposes no portable error code
// across the three supported drivers.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
