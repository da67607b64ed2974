// Package repository provides persistence implementations for the
// authentication and expense services.
package repository

import (
	"context"
	"database/sql"

	"expenso/internal/models"
)

// PostgresAuthRepository implements user persistence using a PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// UserExists checks whether a user with the specified email exists in the database.
// It returns true if the user exists, false otherwise.
// If an error occurs during the query, it is returned.
func (s *PostgresAuthRepository) UserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// CreateUser persists a new user record.
// Returns any error encountered while executing the insertion, including
// the unique-constraint violation for a duplicate email.
func (s *PostgresAuthRepository) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
	)
	return err
}

// GetUserByEmail fetches a user by email. Returns sql.ErrNoRows when no
// user with that email exists.
func (s *PostgresAuthRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT id, name, email, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user row with the given id. Deleting an absent
// user is not an error: the statement simply matches zero rows.
func (s *PostgresAuthRepository) DeleteUser(ctx context.Context, id string) error {
	_, err := s.DB.ExecContext(
		ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	return err
}
