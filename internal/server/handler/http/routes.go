// Package http provides HTTP routing and middleware configuration
// for the expense tracker service.
package http

import (
	"net/http"

	"expenso/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// expense tracker API. It applies JSON content-type enforcement and
// request logging, and gates the expense and account-deletion routes
// behind bearer-token authentication.
//
// Routes:
//
//	GET    /                → liveness banner
//	POST   /auth/register   → authHandler.Register
//	POST   /auth/login      → authHandler.Login
//	DELETE /auth/delete     → authHandler.DeleteAccount (protected)
//	GET    /expenses        → expenseHandler.List       (protected)
//	POST   /expenses        → expenseHandler.Create     (protected)
//	PUT    /expenses/{id}   → expenseHandler.Update     (protected)
//	DELETE /expenses/{id}   → expenseHandler.Delete     (protected)
func NewRouter(
	authHandler *AuthHandler,
	expenseHandler *ExpenseHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Expense Tracker Backend Running"))
	})

	// Public endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier))
			r.Delete("/delete", authHandler.DeleteAccount)
		})
	})

	// Protected group: every expense route runs the token gate first
	r.Route("/expenses", func(r chi.Router) {
		r.Use(middleware.BearerAuth(verifier))
		r.Get("/", expenseHandler.List)
		r.Post("/", expenseHandler.Create)
		r.Put("/{id}", expenseHandler.Update)
		r.Delete("/{id}", expenseHandler.Delete)
	})

	return r
}
