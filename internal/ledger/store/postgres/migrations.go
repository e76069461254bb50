package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema notes: amounts are BIGINT; the ledger's unsigned values fit
// comfortably since write volume is bounded by administrative action
// rates. ledger_totals and governance are single-row tables keyed by a
// constant.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tax_payments (
		principal TEXT NOT NULL,
		idx BIGINT NOT NULL,
		amount BIGINT NOT NULL,
		ts BIGINT NOT NULL,
		status SMALLINT NOT NULL,
		PRIMARY KEY (principal, idx)
	)`,
	`CREATE TABLE IF NOT EXISTS citizen_records (
		principal TEXT PRIMARY KEY,
		payment_count BIGINT NOT NULL DEFAULT 0,
		total_paid BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS expenditures (
		id BIGINT PRIMARY KEY,
		ts BIGINT NOT NULL,
		amount BIGINT NOT NULL,
		purpose TEXT NOT NULL,
		status SMALLINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenditure_details (
		id BIGINT PRIMARY KEY REFERENCES expenditures(id),
		details TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_totals (
		singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
		total_collected BIGINT NOT NULL DEFAULT 0,
		total_spent BIGINT NOT NULL DEFAULT 0
	)`,
	`INSERT INTO ledger_totals (singleton) VALUES (TRUE) ON CONFLICT DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS governance (
		singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
		government TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auditors (
		principal TEXT PRIMARY KEY,
		enabled BOOLEAN NOT NULL
	)`,
}

// Migrate applies the schema. Idempotent; safe to run at every boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
