// Package repository implements the domain data-access contracts on
// top of pgxpool. Lookups return (nil, nil) when no row matches.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// PgxUserRepository implements domain.UserRepository using pgxpool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

const userColumns = `id, role, name, email, password_hash, active, last_login, created_at`

func scanUser(row pgx.Row) (*domain.UserRow, error) {
	var u domain.UserRow
	err := row.Scan(&u.ID, &u.Role, &u.Name, &u.Email, &u.PasswordHash, &u.Active, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user matching the given email, or (nil, nil).
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetByID returns the user with the given id, or (nil, nil).
func (r *PgxUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRow, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// ExistsByEmail returns true when a user with the email exists.
func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new user and returns the generated id.
func (r *PgxUserRepository) Create(ctx context.Context, role, name, email, passwordHash string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (role, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, role, name, email, passwordHash).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateLastLogin sets last_login to now for the given user.
func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// List returns all users, newest first.
func (r *PgxUserRepository) List(ctx context.Context) ([]domain.UserRow, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserRow
	for rows.Next() {
		var u domain.UserRow
		if err := rows.Scan(&u.ID, &u.Role, &u.Name, &u.Email, &u.PasswordHash, &u.Active, &u.LastLogin, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetActive flips the active flag for the given user.
func (r *PgxUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE users SET active = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, active)
	return err
}
