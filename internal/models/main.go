// Package models defines the core data structures for users and expenses.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the display name chosen by the user.
	Name string `json:"name"`
	// Email is the unique login key.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash []byte `json:"-"`
}

// Expense represents a single expense record owned by a user.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`
	// Title describes what the money was spent on.
	Title string `json:"title"`
	// Amount is the spent amount. The server does not constrain its sign or range.
	Amount float64 `json:"amount"`
	// Category is a free-form grouping label. The well-known set
	// (Food, Travel, Bills, Shopping) is a client-side convention only.
	Category string `json:"category,omitempty"`
	// UserID is the identifier of the owning user. Every read and write
	// is filtered by this field.
	UserID string `json:"user_id"`
}
