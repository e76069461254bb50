// Package models holds the persisted record types of the fiscal ledger.
// Every record is written once and never mutated; the only mutable state in
// the whole system is the governance pointer set (government wallet and
// auditor membership).
package models

import (
	id "fisc/pkg/domain"
)

// PaymentStatus is the lifecycle state of a tax payment. Payments are
// recorded atomically with the funds deposit, so every persisted payment is
// Processed; Unprocessed exists only as the zero value of the enum.
type PaymentStatus uint8

const (
	PaymentUnprocessed PaymentStatus = iota
	PaymentProcessed
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentProcessed:
		return "processed"
	default:
		return "unprocessed"
	}
}

// TaxPayment is one tax payment in a citizen's history. Immutable once
// stored. Timestamp is unix seconds.
type TaxPayment struct {
	Amount    uint64
	Timestamp int64
	Status    PaymentStatus
}

// ExpenditureStatus is the lifecycle state of an expenditure. The current
// design commits every expenditure directly in Completed; Pending, Approved
// and Rejected are declared states with no transition into them. They are
// kept so stored status values stay stable if an approval flow is ever
// added.
type ExpenditureStatus uint8

const (
	ExpenditurePending ExpenditureStatus = iota
	ExpenditureApproved
	ExpenditureRejected
	ExpenditureCompleted
)

func (s ExpenditureStatus) String() string {
	switch s {
	case ExpenditureApproved:
		return "approved"
	case ExpenditureRejected:
		return "rejected"
	case ExpenditureCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// Expenditure is one disbursement from the treasury, keyed by a 0-based
// monotonic id in the global sequence. The free-text detail record lives
// beside it under the same id rather than inside it, keeping bulk text out
// of the hot record.
type Expenditure struct {
	Timestamp int64
	Amount    uint64
	Purpose   string
	Status    ExpenditureStatus
}

// CitizenTaxRecord is the derived per-citizen view: payment count and
// lifetime total.
type CitizenTaxRecord struct {
	Principal    id.Principal
	PaymentCount uint64
	TotalPaid    uint64
}

// LedgerTotals are the aggregate audit-trail counters. The treasury
// invariant binds TotalCollected - TotalSpent to the settlement
// collaborator's custodied balance at all times.
type LedgerTotals struct {
	TotalCollected uint64
	TotalSpent     uint64
}

// GovernanceState is the full administrative state: exactly one government
// wallet plus boolean auditor membership per principal. Auditor membership
// is tracked and published but grants no capability beyond the public read
// API; that gap is inherited from the original design and deliberately not
// papered over here.
type GovernanceState struct {
	Government id.Principal
	Auditors   map[id.Principal]bool
}
