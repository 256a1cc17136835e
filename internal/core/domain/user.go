// Package domain defines the data-access contracts and row types for
// the service. Implementations live in internal/core/repository; the
// logic layer depends on these interfaces only, never on SQL or pgx.
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRow represents a user record returned from the database. It
// includes the password hash so the logic layer can verify credentials.
type UserRow struct {
	ID           uuid.UUID
	Role         string
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// UserRepository defines the data-access contract for user operations.
type UserRepository interface {
	// GetByEmail returns the user matching the given email.
	// Returns (nil, nil) when no user is found.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// GetByID returns the user with the given id, or (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*UserRow, error)

	// ExistsByEmail returns true when a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user and returns the generated id.
	Create(ctx context.Context, role, name, email, passwordHash string) (uuid.UUID, error)

	// UpdateLastLogin sets last_login to now for the given user.
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]UserRow, error)

	// SetActive flips the active flag for the given user.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
