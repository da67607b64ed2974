// Package main initializes and starts the expense tracker HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"expenso/internal/config"
	"expenso/internal/db"
	"expenso/internal/logger"
	"expenso/internal/repository"
	"expenso/internal/server/handler/http"
	"expenso/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Token issuance and verification cannot function without a secret.
	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is not set")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Sweep expenses left behind by interrupted account deletions.
	db.StartOrphanCleaner(context.Background(), postgresDB,
		options.CleanerInterval,
		zapLogger,
	)

	// Initialize repositories for users and expenses.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	expenseRepo := repository.NewPostgresExpenseRepository(postgresDB)

	// Initialize business-logic services.
	tokens := service.NewTokenManager(options.JWTSecret)
	authService := service.NewAuthService(authRepo, expenseRepo, tokens)
	expenseService := service.NewExpenseService(expenseRepo)

	// Create HTTP handlers for auth and expense endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	expenseHandler := &http.ExpenseHandler{ExpenseService: expenseService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, expenseHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
