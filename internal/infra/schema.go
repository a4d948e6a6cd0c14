package infra

import (
	"context"
	"database/sql"
)

// InitSchema creates the three record collections on first start. Safe to run
// on every boot.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			telegram_id   BIGINT PRIMARY KEY,
			username      TEXT NOT NULL DEFAULT '',
			first_name    TEXT NOT NULL DEFAULT '',
			last_name     TEXT NOT NULL DEFAULT '',
			plan_key      TEXT,
			selected_plan TEXT,
			start_at      TIMESTAMPTZ,
			end_at        TIMESTAMPTZ,
			status        TEXT NOT NULL DEFAULT 'none',
			reminded_3d   BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_status_end_at ON users (status, end_at)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id            UUID PRIMARY KEY,
			telegram_id   BIGINT NOT NULL REFERENCES users (telegram_id),
			plan_key      TEXT NOT NULL,
			proof_file_id TEXT NOT NULL,
			proof_url     TEXT,
			status        TEXT NOT NULL DEFAULT 'pending',
			created_at    TIMESTAMPTZ NOT NULL,
			decided_at    TIMESTAMPTZ,
			decided_by    BIGINT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_pending ON payments (created_at) WHERE status = 'pending'`,
		`CREATE TABLE IF NOT EXISTS tickets (
			id          BIGSERIAL PRIMARY KEY,
			telegram_id BIGINT NOT NULL,
			message     TEXT NOT NULL,
			status      TEXT NOT NULL DEFAULT 'open',
			created_at  TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
