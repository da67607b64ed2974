package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"expenso/internal/middleware"
	"expenso/internal/models"
)

// ExpenseService defines the interface for expense operations required
// by the ExpenseHandler. Every operation is scoped to the owning user.
type ExpenseService interface {
	List(ctx context.Context, userID string) ([]models.Expense, error)
	Create(ctx context.Context, userID, title string, amount float64, category string) (*models.Expense, error)
	Update(ctx context.Context, id, userID, title string, amount float64, category string) (*models.Expense, error)
	Delete(ctx context.Context, id, userID string) error
}

// ExpenseHandler handles HTTP requests for expense CRUD.
type ExpenseHandler struct {
	ExpenseService ExpenseService
}

// ExpenseRequest represents the JSON payload for creating or updating
// an expense. On update, a zero-value field leaves the stored field
// unchanged.
type ExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// List handles GET /expenses. Responds with all expenses owned by the
// authenticated user, an empty array when there are none.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	expenses, err := h.ExpenseService.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// Create handles POST /expenses. Responds with the created expense.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}

	exp, err := h.ExpenseService.Create(r.Context(), userID, req.Title, req.Amount, req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, exp)
}

// Update handles PUT /expenses/{id}. Responds with the updated expense,
// or 404 when the expense is absent or owned by another user.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}

	exp, err := h.ExpenseService.Update(r.Context(), id, userID, req.Title, req.Amount, req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exp)
}

// Delete handles DELETE /expenses/{id}. Responds with a confirmation
// message, or 404 when the expense is absent or owned by another user.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.ExpenseService.Delete(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Expense deleted successfully")
}
