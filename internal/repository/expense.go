// Package repository provides persistence for expense records
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"expenso/internal/models"
)

// PostgresExpenseRepository implements expense persistence against a PostgreSQL database.
// Every query carries the owning user id in its predicate, so one user can
// never observe or mutate another's expenses.
type PostgresExpenseRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{DB: db}
}

// GetExpensesByUser fetches all expenses for the specified user.
//
//	ctx:    context for cancellation and deadlines
//	userID: identifier of the owning user
//
// Returns a non-nil slice (empty when the user has no expenses) or an
// error if the query or scanning fails.
func (s *PostgresExpenseRepository) GetExpensesByUser(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, amount, category, user_id FROM expenses WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("GetExpensesByUser: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.Title, &exp.Amount, &exp.Category, &exp.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		expenses = append(expenses, exp)
	}
	return expenses, rows.Err()
}

// GetExpenseByID retrieves a single expense by id for the given user.
// Returns sql.ErrNoRows when no expense with that id is owned by userID.
func (s *PostgresExpenseRepository) GetExpenseByID(ctx context.Context, userID, id string) (*models.Expense, error) {
	var exp models.Expense
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, title, amount, category, user_id FROM expenses
		WHERE user_id = $1 AND id = $2
	`, userID, id).Scan(&exp.ID, &exp.Title, &exp.Amount, &exp.Category, &exp.UserID)
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// CreateExpense persists a new expense record.
func (s *PostgresExpenseRepository) CreateExpense(ctx context.Context, exp models.Expense) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, title, amount, category)
		VALUES ($1, $2, $3, $4, $5)
	`, exp.ID, exp.UserID, exp.Title, exp.Amount, exp.Category)
	if err != nil {
		return fmt.Errorf("CreateExpense: %w", err)
	}
	return nil
}

// UpdateExpense replaces the stored title, amount, and category of an
// owned expense. Returns the number of rows matched so the caller can
// distinguish a missing or foreign expense.
func (s *PostgresExpenseRepository) UpdateExpense(ctx context.Context, exp models.Expense) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE expenses SET title = $1, amount = $2, category = $3
		WHERE user_id = $4 AND id = $5
	`, exp.Title, exp.Amount, exp.Category, exp.UserID, exp.ID)
	if err != nil {
		return 0, fmt.Errorf("UpdateExpense: %w", err)
	}
	return res.RowsAffected()
}

// DeleteExpense removes an owned expense by id. Returns the number of
// rows deleted (zero when no owned expense matched).
func (s *PostgresExpenseRepository) DeleteExpense(ctx context.Context, userID, id string) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM expenses WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpense: %w", err)
	}
	return res.RowsAffected()
}

// DeleteExpensesByUser removes every expense owned by the given user.
// A no-op when the user owns none.
func (s *PostgresExpenseRepository) DeleteExpensesByUser(ctx context.Context, userID string) error {
	_, err := s.DB.ExecContext(ctx, `
		DELETE FROM expenses WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("DeleteExpensesByUser: %w", err)
	}
	return nil
}
