// Command migrate creates the contact_submissions table for the PostgreSQL
// backend. The DynamoDB backend needs no schema; its table is provisioned
// outside this repository.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pathsdata/contact-backend/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
    contact_id     TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL,
    company        TEXT NOT NULL,
    interest       TEXT NOT NULL,
    interest_label TEXT NOT NULL,
    message        TEXT NOT NULL,
    created_at     TEXT NOT NULL,
    status         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS contact_submissions_created_at_idx
    ON contact_submissions (created_at DESC);
`

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logging.Fatal("migration failed", "error", err)
	}
	slog.Info("contact_submissions table ready")
}
