// Package memory implements the ledger store as in-process maps. This is
// the primary store: the ledger's working set is bounded by administrative
// and citizen action rates, not throughput. For durable deployments use
// the postgres store instead.
package memory

import (
	"context"
	"sync"

	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
)

// Store holds the whole ledger aggregate behind one RWMutex. Records are
// append-only; the governance pointers are the only values ever
// overwritten.
type Store struct {
	mu sync.RWMutex

	payments map[id.Principal][]models.TaxPayment
	records  map[id.Principal]models.CitizenTaxRecord

	expenditures []models.Expenditure
	details      []string

	totals models.LedgerTotals

	government id.Principal
	auditors   map[id.Principal]bool
}

// New creates an empty ledger store with the given initial government
// wallet.
func New(government id.Principal) *Store {
	return &Store{
		payments: make(map[id.Principal][]models.TaxPayment),
		records:  make(map[id.Principal]models.CitizenTaxRecord),
		auditors: make(map[id.Principal]bool),

		government: government,
	}
}

func (s *Store) AppendTaxPayment(ctx context.Context, principal id.Principal, payment models.TaxPayment) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := uint64(len(s.payments[principal]))
	s.payments[principal] = append(s.payments[principal], payment)

	rec := s.records[principal]
	rec.Principal = principal
	rec.PaymentCount++
	rec.TotalPaid += payment.Amount
	s.records[principal] = rec

	s.totals.TotalCollected += payment.Amount
	return index, nil
}

func (s *Store) TaxPayment(ctx context.Context, principal id.Principal, index uint64) (models.TaxPayment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.payments[principal]
	if index >= uint64(len(history)) {
		return models.TaxPayment{}, false, nil
	}
	return history[index], true, nil
}

func (s *Store) CitizenRecord(ctx context.Context, principal id.Principal) (models.CitizenTaxRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec := s.records[principal]
	rec.Principal = principal
	return rec, nil
}

func (s *Store) AppendExpenditure(ctx context.Context, exp models.Expenditure, detail string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expID := uint64(len(s.expenditures))
	s.expenditures = append(s.expenditures, exp)
	s.details = append(s.details, detail)
	s.totals.TotalSpent += exp.Amount
	return expID, nil
}

func (s *Store) Expenditure(ctx context.Context, expID uint64) (models.Expenditure, string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if expID >= uint64(len(s.expenditures)) {
		return models.Expenditure{}, "", false, nil
	}
	return s.expenditures[expID], s.details[expID], true, nil
}

func (s *Store) ExpenditureCount(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.expenditures)), nil
}

func (s *Store) Totals(ctx context.Context) (models.LedgerTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals, nil
}

func (s *Store) Government(ctx context.Context) (id.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.government, nil
}

func (s *Store) SetGovernment(ctx context.Context, p id.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.government = p
	return nil
}

func (s *Store) IsAuditor(ctx context.Context, p id.Principal) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auditors[p], nil
}

func (s *Store) SetAuditor(ctx context.Context, p id.Principal, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditors[p] = enabled
	return nil
}
