// Package repository provides PostgreSQL persistence for the store server.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avidela/tienda/internal/models"
)

// ErrUserNotFound is returned when the requested username is unknown.
var ErrUserNotFound = errors.New("user not found")

// PostgresAuthRepository implements user lookup and creation against
// a PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the
// given database connection.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// FindUser returns the user record for the given username, or
// ErrUserNotFound when no such user exists.
func (r *PostgresAuthRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

// UserExists checks whether a user with the specified username exists.
func (r *PostgresAuthRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user with the given password hash.
func (r *PostgresAuthRepository) CreateUser(ctx context.Context, username string, passwordHash []byte) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)`,
		username, passwordHash,
	)
	return err
}
