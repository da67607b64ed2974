package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Expenses reference their owner by id without a foreign-key constraint,
// matching the document-store semantics of the data model: account deletion
// removes expenses first and the user row second, and a crash in between
// may leave orphans. StartOrphanCleaner compensates.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash BYTEA NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    category TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS expenses_user_id_idx ON expenses (user_id);
`

func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
