// Package postgres implements the ledger store on PostgreSQL. Each
// mutating call runs in one transaction so a store call is atomic on its
// own, matching the contract the service's single-writer lock builds on.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the postgres driver.
	_ "github.com/lib/pq"

	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
)

// Store is a PostgreSQL-backed ledger store.
type Store struct {
	db *sql.DB
}

// New creates a store on an open database handle. The caller runs
// Migrate first.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database, applies migrations, and seeds the
// government wallet if the governance row does not exist yet.
func Open(ctx context.Context, url string, government id.Principal) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO governance (singleton, government) VALUES (TRUE, $1) ON CONFLICT DO NOTHING`,
		government.String(),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seed government wallet: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) AppendTaxPayment(ctx context.Context, principal id.Principal, payment models.TaxPayment) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var index uint64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO citizen_records (principal, payment_count, total_paid)
		 VALUES ($1, 1, $2)
		 ON CONFLICT (principal) DO UPDATE SET
			payment_count = citizen_records.payment_count + 1,
			total_paid = citizen_records.total_paid + EXCLUDED.total_paid
		 RETURNING payment_count - 1`,
		principal.String(), int64(payment.Amount),
	).Scan(&index)
	if err != nil {
		return 0, fmt.Errorf("bump citizen record: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tax_payments (principal, idx, amount, ts, status) VALUES ($1, $2, $3, $4, $5)`,
		principal.String(), int64(index), int64(payment.Amount), payment.Timestamp, int16(payment.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("insert tax payment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE ledger_totals SET total_collected = total_collected + $1`,
		int64(payment.Amount),
	)
	if err != nil {
		return 0, fmt.Errorf("bump total collected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tax payment: %w", err)
	}
	return index, nil
}

func (s *Store) TaxPayment(ctx context.Context, principal id.Principal, index uint64) (models.TaxPayment, bool, error) {
	var (
		amount int64
		ts     int64
		status int16
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT amount, ts, status FROM tax_payments WHERE principal = $1 AND idx = $2`,
		principal.String(), int64(index),
	).Scan(&amount, &ts, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TaxPayment{}, false, nil
	}
	if err != nil {
		return models.TaxPayment{}, false, fmt.Errorf("select tax payment: %w", err)
	}
	return models.TaxPayment{
		Amount:    uint64(amount),
		Timestamp: ts,
		Status:    models.PaymentStatus(status),
	}, true, nil
}

func (s *Store) CitizenRecord(ctx context.Context, principal id.Principal) (models.CitizenTaxRecord, error) {
	rec := models.CitizenTaxRecord{Principal: principal}
	var (
		count int64
		total int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payment_count, total_paid FROM citizen_records WHERE principal = $1`,
		principal.String(),
	).Scan(&count, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, nil
	}
	if err != nil {
		return models.CitizenTaxRecord{}, fmt.Errorf("select citizen record: %w", err)
	}
	rec.PaymentCount = uint64(count)
	rec.TotalPaid = uint64(total)
	return rec, nil
}

func (s *Store) AppendExpenditure(ctx context.Context, exp models.Expenditure, detail string) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var expID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id) + 1, 0) FROM expenditures`,
	).Scan(&expID)
	if err != nil {
		return 0, fmt.Errorf("allocate expenditure id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenditures (id, ts, amount, purpose, status) VALUES ($1, $2, $3, $4, $5)`,
		int64(expID), exp.Timestamp, int64(exp.Amount), exp.Purpose, int16(exp.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("insert expenditure: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenditure_details (id, details) VALUES ($1, $2)`,
		int64(expID), detail,
	)
	if err != nil {
		return 0, fmt.Errorf("insert expenditure details: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE ledger_totals SET total_spent = total_spent + $1`,
		int64(exp.Amount),
	)
	if err != nil {
		return 0, fmt.Errorf("bump total spent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit expenditure: %w", err)
	}
	return expID, nil
}

func (s *Store) Expenditure(ctx context.Context, expID uint64) (models.Expenditure, string, bool, error) {
	var (
		ts      int64
		amount  int64
		purpose string
		status  int16
		details string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT e.ts, e.amount, e.purpose, e.status, d.details
		 FROM expenditures e JOIN expenditure_details d ON d.id = e.id
		 WHERE e.id = $1`,
		int64(expID),
	).Scan(&ts, &amount, &purpose, &status, &details)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expenditure{}, "", false, nil
	}
	if err != nil {
		return models.Expenditure{}, "", false, fmt.Errorf("select expenditure: %w", err)
	}
	return models.Expenditure{
		Timestamp: ts,
		Amount:    uint64(amount),
		Purpose:   purpose,
		Status:    models.ExpenditureStatus(status),
	}, details, true, nil
}

func (s *Store) ExpenditureCount(ctx context.Context) (uint64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenditures`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count expenditures: %w", err)
	}
	return uint64(count), nil
}

func (s *Store) Totals(ctx context.Context) (models.LedgerTotals, error) {
	var collected, spent int64
	err := s.db.QueryRowContext(ctx,
		`SELECT total_collected, total_spent FROM ledger_totals`,
	).Scan(&collected, &spent)
	if err != nil {
		return models.LedgerTotals{}, fmt.Errorf("select totals: %w", err)
	}
	return models.LedgerTotals{
		TotalCollected: uint64(collected),
		TotalSpent:     uint64(spent),
	}, nil
}

func (s *Store) Government(ctx context.Context) (id.Principal, error) {
	var gov string
	if err := s.db.QueryRowContext(ctx, `SELECT government FROM governance`).Scan(&gov); err != nil {
		return "", fmt.Errorf("select government: %w", err)
	}
	return id.Principal(gov), nil
}

func (s *Store) SetGovernment(ctx context.Context, p id.Principal) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE governance SET government = $1`, p.String()); err != nil {
		return fmt.Errorf("update government: %w", err)
	}
	return nil
}

func (s *Store) IsAuditor(ctx context.Context, p id.Principal) (bool, error) {
	var enabled bool
	err := s.db.QueryRowContext(ctx,
		`SELECT enabled FROM auditors WHERE principal = $1`, p.String(),
	).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select auditor: %w", err)
	}
	return enabled, nil
}

func (s *Store) SetAuditor(ctx context.Context, p id.Principal, enabled bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO auditors (principal, enabled) VALUES ($1, $2)
		 ON CONFLICT (principal) DO UPDATE SET enabled = EXCLUDED.enabled`,
		p.String(), enabled,
	)
	if err != nil {
		return fmt.Errorf("upsert auditor: %w", err)
	}
	return nil
}
