// Package http provides HTTP handlers for user authentication
// and expense management.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"expenso/internal/middleware"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user from name, email, and password.
	Register(ctx context.Context, name, email, password string) error
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
	// DeleteAccount removes the user and every expense it owns.
	DeleteAccount(ctx context.Context, userID string) error
}

// AuthHandler handles HTTP requests for registration, login, and
// account deletion.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
// It expects a JSON body with name, email, and password. Field
// validation and the duplicate-email check live in the service; both
// map to a 400 response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /auth/login.
// On success it returns the session token; on bad credentials it
// returns the same generic failure whether the email is unknown or the
// password is wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// DeleteAccount handles DELETE /auth/delete.
// The owning user comes from the bearer-token gate. Expenses are
// removed before the user record; the operation reports success even
// when the user row was already gone.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	if err := h.AuthService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
