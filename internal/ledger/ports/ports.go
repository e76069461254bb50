// Package ports declares the interfaces the ledger service consumes. The
// service owns invariants; stores own durability; settlement owns funds
// custody. Keeping these as small interfaces lets tests swap gomock
// doubles for any collaborator.
package ports

import (
	"context"

	"fisc/internal/events"
	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=../service/mocks/mocks.go -package=mocks

// Settlement is the external funds-transfer collaborator. Its reported
// balance is ground truth for disbursement decisions; the ledger totals
// are only a derived audit trail.
type Settlement interface {
	// Deposit moves amount from the payer into the treasury's custody.
	// Used by the tax-payment path, where deposit and record form one
	// indivisible operation.
	Deposit(ctx context.Context, from id.Principal, amount uint64) error
	// Transfer moves amount out of treasury custody to the recipient.
	// Atomic: it either fully succeeds or reports failure with no funds
	// moved.
	Transfer(ctx context.Context, to id.Principal, amount uint64) error
	// Balance returns the treasury's current custodied funds.
	Balance(ctx context.Context) (uint64, error)
}

// EventSink re-exports the events sink for mock generation alongside the
// other service collaborators.
type EventSink = events.Sink

// Store persists the ledger aggregate. Each method is atomic on its own;
// cross-method atomicity (check, settle, commit) is the service's job and
// is guaranteed by its single-writer lock.
type Store interface {
	// AppendTaxPayment records a payment at the principal's next index and
	// bumps the lifetime total and TotalCollected. Returns the index.
	AppendTaxPayment(ctx context.Context, principal id.Principal, payment models.TaxPayment) (uint64, error)
	// TaxPayment returns the payment at index. ok is false when the index
	// has never been written.
	TaxPayment(ctx context.Context, principal id.Principal, index uint64) (models.TaxPayment, bool, error)
	// CitizenRecord returns the derived per-citizen view; zero-valued for a
	// principal who never paid.
	CitizenRecord(ctx context.Context, principal id.Principal) (models.CitizenTaxRecord, error)

	// AppendExpenditure commits an expenditure and its detail text at the
	// next sequential id and bumps TotalSpent. Returns the id.
	AppendExpenditure(ctx context.Context, exp models.Expenditure, detail string) (uint64, error)
	// Expenditure returns the record and detail at id. ok is false when the
	// id has never been committed.
	Expenditure(ctx context.Context, expID uint64) (models.Expenditure, string, bool, error)
	// ExpenditureCount returns the number of committed expenditures.
	ExpenditureCount(ctx context.Context) (uint64, error)

	// Totals returns the aggregate counters.
	Totals(ctx context.Context) (models.LedgerTotals, error)

	// Government returns the current government wallet.
	Government(ctx context.Context) (id.Principal, error)
	// SetGovernment atomically replaces the government wallet.
	SetGovernment(ctx context.Context, p id.Principal) error
	// IsAuditor reports auditor membership; false is the default for any
	// principal never granted.
	IsAuditor(ctx context.Context, p id.Principal) (bool, error)
	// SetAuditor sets auditor membership. Idempotent.
	SetAuditor(ctx context.Context, p id.Principal, enabled bool) error
}
