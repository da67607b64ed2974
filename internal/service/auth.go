// Package service provides the business logic for authentication and
// expense management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"expenso/internal/apperror"
	"expenso/internal/models"
)

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// UserExists returns true if a user with the given email exists.
	UserExists(ctx context.Context, email string) (bool, error)
	// CreateUser persists a new user record.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail fetches a user by email, sql.ErrNoRows when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// DeleteUser removes a user row. Deleting an absent user is not an error.
	DeleteUser(ctx context.Context, id string) error
}

// ExpenseDeleter is the slice of the expense store the auth service
// needs for cascading account deletion.
type ExpenseDeleter interface {
	DeleteExpensesByUser(ctx context.Context, userID string) error
}

// AuthService implements registration, login, token verification,
// and account deletion.
type AuthService struct {
	repo     AuthRepository
	expenses ExpenseDeleter
	tokens   *TokenManager
}

// NewAuthService constructs an AuthService using the provided repository,
// expense store, and token manager.
func NewAuthService(repo AuthRepository, expenses ExpenseDeleter, tokens *TokenManager) *AuthService {
	return &AuthService{repo: repo, expenses: expenses, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
// Fails with a Validation error when any field is empty and with a
// Conflict error when the email is already registered. The password
// hash is never returned to the caller.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return apperror.New(apperror.Validation, "All fields are required", nil)
	}

	// Emails are stored lowercased so the unique login key is
	// case-insensitive.
	email = strings.ToLower(email)

	exists, err := s.repo.UserExists(ctx, email)
	if err != nil {
		return apperror.New(apperror.Internal, "Registration failed", err)
	}
	if exists {
		return apperror.New(apperror.Conflict, "User already exists", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.New(apperror.Internal, "Registration failed", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return apperror.New(apperror.Internal, "Registration failed", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed session token with
// a one-day expiry. An unknown email and a wrong password produce the
// same generic failure so user existence never leaks.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.New(apperror.Validation, "Invalid credentials", nil)
		}
		return "", apperror.New(apperror.Internal, "Login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", apperror.New(apperror.Validation, "Invalid credentials", nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.New(apperror.Internal, "Login failed", err)
	}
	return token, nil
}

// Authenticate validates a session token and returns the embedded user id.
// Fails with an Auth error for a missing, malformed, or expired token.
func (s *AuthService) Authenticate(token string) (string, error) {
	if token == "" {
		return "", apperror.New(apperror.Auth, "Unauthorized", nil)
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", apperror.New(apperror.Auth, "Unauthorized", err)
	}
	return userID, nil
}

// DeleteAccount removes every expense owned by userID, then the user
// record itself. The user delete does not signal not-found, so deleting
// an already-gone account still reports success.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.expenses.DeleteExpensesByUser(ctx, userID); err != nil {
		return apperror.New(apperror.Internal, "Delete failed", err)
	}
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return apperror.New(apperror.Internal, "Delete failed", err)
	}
	return nil
}
