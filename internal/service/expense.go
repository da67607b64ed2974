package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"expenso/internal/apperror"
	"expenso/internal/models"
)

// ExpenseRepository defines the persistence operations required by the
// expense service. Every operation scopes its predicate to the owning
// user, which is what prevents cross-user access by construction.
type ExpenseRepository interface {
	GetExpensesByUser(ctx context.Context, userID string) ([]models.Expense, error)
	GetExpenseByID(ctx context.Context, userID, id string) (*models.Expense, error)
	CreateExpense(ctx context.Context, exp models.Expense) error
	UpdateExpense(ctx context.Context, exp models.Expense) (int64, error)
	DeleteExpense(ctx context.Context, userID, id string) (int64, error)
	DeleteExpensesByUser(ctx context.Context, userID string) error
}

// ExpenseService implements expense CRUD scoped to the authenticated owner.
type ExpenseService struct {
	repo ExpenseRepository
}

// NewExpenseService constructs an ExpenseService using the provided repository.
func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// List returns all expenses owned by userID in store iteration order,
// an empty slice when there are none.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	expenses, err := s.repo.GetExpensesByUser(ctx, userID)
	if err != nil {
		return nil, apperror.New(apperror.Internal, "Server error", err)
	}
	return expenses, nil
}

// Create persists a new expense owned by userID. The title is the only
// required field; the amount is an unconstrained number and the
// category is free-form.
func (s *ExpenseService) Create(ctx context.Context, userID, title string, amount float64, category string) (*models.Expense, error) {
	if title == "" {
		return nil, apperror.New(apperror.Validation, "Invalid data", nil)
	}

	exp := models.Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   amount,
		Category: category,
		UserID:   userID,
	}
	if err := s.repo.CreateExpense(ctx, exp); err != nil {
		return nil, apperror.New(apperror.Validation, "Invalid data", err)
	}
	return &exp, nil
}

// Update partially updates an owned expense. A zero-value input field
// (empty title, zero amount, empty category) leaves the stored field
// unchanged, so setting an amount to exactly 0 is unreachable through
// this path. Fails with NotFound when no expense with that id is owned
// by userID.
func (s *ExpenseService) Update(ctx context.Context, id, userID, title string, amount float64, category string) (*models.Expense, error) {
	exp, err := s.repo.GetExpenseByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.NotFound, "Expense not found", nil)
		}
		return nil, apperror.New(apperror.Internal, "Server error", err)
	}

	if title != "" {
		exp.Title = title
	}
	if amount != 0 {
		exp.Amount = amount
	}
	if category != "" {
		exp.Category = category
	}

	if _, err := s.repo.UpdateExpense(ctx, *exp); err != nil {
		return nil, apperror.New(apperror.Internal, "Server error", err)
	}
	return exp, nil
}

// Delete removes an owned expense by id. Fails with NotFound when no
// matching owned expense exists.
func (s *ExpenseService) Delete(ctx context.Context, id, userID string) error {
	rows, err := s.repo.DeleteExpense(ctx, userID, id)
	if err != nil {
		return apperror.New(apperror.Internal, "Server error", err)
	}
	if rows == 0 {
		return apperror.New(apperror.NotFound, "Expense not found", nil)
	}
	return nil
}
