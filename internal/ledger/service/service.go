// Package service implements the accounting and authorization engine of
// the fiscal ledger. All invariants live here: role gating, amount
// validation, the funds-custody check, and the atomicity of settle-then-
// commit. Stores persist, settlement moves funds, sinks observe; this
// package decides.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fisc/internal/events"
	"fisc/internal/ledger/metrics"
	"fisc/internal/ledger/models"
	"fisc/internal/ledger/ports"
	id "fisc/pkg/domain"
	dErrors "fisc/pkg/domain-errors"
	"fisc/pkg/requestcontext"
)

// Service is the single aggregate every operation goes through. One mutex
// serializes all mutating operations end to end (check, settle, commit,
// emit), reproducing the all-or-nothing, no-interleaving execution model
// the design assumes. Reads bypass the lock; the stores are internally
// consistent per call, so a read observes some fully committed prefix of
// the write history.
type Service struct {
	mu sync.Mutex

	store      ports.Store
	settlement ports.Settlement
	sink       events.Sink
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithEventSink(sink events.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func New(store ports.Store, settlement ports.Settlement, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("ledger store is required")
	}
	if settlement == nil {
		return nil, fmt.Errorf("settlement collaborator is required")
	}

	svc := &Service{
		store:      store,
		settlement: settlement,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// PayTax records a tax payment from caller. The deposit into treasury
// custody and the ledger append happen inside one critical section with no
// fallible step between them, so a payment is never recorded without funds
// having arrived and funds never arrive unrecorded. Returns the stored
// payment and its index in the caller's history.
func (s *Service) PayTax(ctx context.Context, caller id.Principal, amount uint64) (models.TaxPayment, uint64, error) {
	if caller.IsZero() {
		return models.TaxPayment{}, 0, dErrors.New(dErrors.CodeInvalidAddress, "caller principal is required")
	}
	if amount == 0 {
		return models.TaxPayment{}, 0, dErrors.New(dErrors.CodeInvalidAmount, "tax amount must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := requestcontext.Now(ctx)

	if err := s.settlement.Deposit(ctx, caller, amount); err != nil {
		return models.TaxPayment{}, 0, dErrors.Wrap(err, dErrors.CodeTransferFailed, "tax deposit was not accepted")
	}

	payment := models.TaxPayment{
		Amount:    amount,
		Timestamp: now.Unix(),
		Status:    models.PaymentProcessed,
	}
	index, err := s.store.AppendTaxPayment(ctx, caller, payment)
	if err != nil {
		// Funds already arrived; compensate so custody and ledger stay
		// bound even when the store rejects the append.
		if refundErr := s.settlement.Transfer(ctx, caller, amount); refundErr != nil {
			s.logger.ErrorContext(ctx, "tax refund after failed append also failed; custody and ledger diverge",
				"request_id", requestcontext.RequestID(ctx),
				"principal", caller,
				"amount", amount,
				"error", refundErr,
			)
		}
		return models.TaxPayment{}, 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record tax payment")
	}

	if s.metrics != nil {
		s.metrics.RecordTaxPayment(amount)
	}

	s.emit(ctx, events.Event{
		Kind:      events.KindTaxPaid,
		Timestamp: now,
		RequestID: requestcontext.RequestID(ctx),
		Principal: caller,
		Amount:    amount,
		Status:    payment.Status.String(),
	})

	return payment, index, nil
}

// RecordExpenditure disburses amount to recipient and commits the
// expenditure record. The custody check and the settlement transfer
// together guarantee the treasury can never be overdrawn: the expenditure
// id is allocated only at commit, so a failed transfer consumes nothing
// and leaves no trace.
func (s *Service) RecordExpenditure(ctx context.Context, caller, recipient id.Principal, amount uint64, purpose, detail string) (uint64, models.Expenditure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Gate under the lock so a concurrent wallet handoff cannot race the
	// role check.
	if err := s.requireGovernment(ctx, caller); err != nil {
		return 0, models.Expenditure{}, err
	}
	if recipient.IsZero() {
		return 0, models.Expenditure{}, dErrors.New(dErrors.CodeInvalidAddress, "recipient principal is required")
	}
	if amount == 0 {
		return 0, models.Expenditure{}, dErrors.New(dErrors.CodeInvalidAmount, "expenditure amount must be greater than zero")
	}

	now := requestcontext.Now(ctx)

	// The collaborator's balance is ground truth, not the derived totals.
	balance, err := s.settlement.Balance(ctx)
	if err != nil {
		return 0, models.Expenditure{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query treasury balance")
	}
	if amount > balance {
		return 0, models.Expenditure{}, dErrors.Newf(dErrors.CodeInsufficientFunds, "expenditure of %d exceeds treasury balance of %d", amount, balance)
	}

	if err := s.settlement.Transfer(ctx, recipient, amount); err != nil {
		if s.metrics != nil {
			s.metrics.RecordTransferFailure()
		}
		s.logger.WarnContext(ctx, "settlement rejected disbursement",
			"request_id", requestcontext.RequestID(ctx),
			"recipient", recipient,
			"amount", amount,
			"error", err,
		)
		if dErrors.HasCode(err, dErrors.CodeTransferFailed) {
			return 0, models.Expenditure{}, err
		}
		return 0, models.Expenditure{}, dErrors.Wrap(err, dErrors.CodeTransferFailed, fmt.Sprintf("transfer to %s was rejected", recipient))
	}

	exp := models.Expenditure{
		Timestamp: now.Unix(),
		Amount:    amount,
		Purpose:   purpose,
		Status:    models.ExpenditureCompleted,
	}
	expID, err := s.store.AppendExpenditure(ctx, exp, detail)
	if err != nil {
		s.logger.ErrorContext(ctx, "expenditure commit failed after settlement succeeded; funds moved but unrecorded",
			"request_id", requestcontext.RequestID(ctx),
			"recipient", recipient,
			"amount", amount,
			"error", err,
		)
		return 0, models.Expenditure{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit expenditure")
	}

	if s.metrics != nil {
		s.metrics.RecordExpenditure(amount)
		s.metrics.SetTreasuryBalance(balance - amount)
	}

	s.emit(ctx, events.Event{
		Kind:          events.KindExpenditureCreated,
		Timestamp:     now,
		RequestID:     requestcontext.RequestID(ctx),
		Principal:     recipient,
		Amount:        amount,
		ExpenditureID: expID,
		Purpose:       purpose,
		Status:        exp.Status.String(),
	})

	return expID, exp, nil
}

// SetAuditor grants or revokes auditor membership for target. Idempotent:
// re-applying the current status succeeds and re-emits the notification.
func (s *Service) SetAuditor(ctx context.Context, caller, target id.Principal, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireGovernment(ctx, caller); err != nil {
		return err
	}
	if target.IsZero() {
		return dErrors.New(dErrors.CodeInvalidAddress, "auditor principal is required")
	}

	if err := s.store.SetAuditor(ctx, target, enabled); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update auditor status")
	}

	now := requestcontext.Now(ctx)
	s.emit(ctx, events.Event{
		Kind:      events.KindAuditorStatusChanged,
		Timestamp: now,
		RequestID: requestcontext.RequestID(ctx),
		Principal: target,
		Enabled:   enabled,
	})
	return nil
}

// ChangeGovernmentWallet hands the government role to newWallet. The
// handoff is a single irreversible swap: the old wallet loses every
// privileged capability the moment this returns.
func (s *Service) ChangeGovernmentWallet(ctx context.Context, caller, newWallet id.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.store.Government(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read government wallet")
	}
	if caller.IsZero() || caller != old {
		if s.metrics != nil {
			s.metrics.RecordUnauthorized()
		}
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the government wallet")
	}
	if newWallet.IsZero() {
		return dErrors.New(dErrors.CodeInvalidAddress, "new government principal is required")
	}
	if err := s.store.SetGovernment(ctx, newWallet); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to replace government wallet")
	}

	now := requestcontext.Now(ctx)
	s.logger.InfoContext(ctx, "government wallet changed",
		"request_id", requestcontext.RequestID(ctx),
		"old_wallet", old,
		"new_wallet", newWallet,
	)
	s.emit(ctx, events.Event{
		Kind:      events.KindGovernmentWalletChanged,
		Timestamp: now,
		RequestID: requestcontext.RequestID(ctx),
		OldWallet: old,
		NewWallet: newWallet,
	})
	return nil
}

// TaxPayment returns the payment at index in principal's history. Reads
// are permissive: an out-of-range index yields a zero-valued record, not
// an error, preserving the original read contract.
func (s *Service) TaxPayment(ctx context.Context, principal id.Principal, index uint64) (models.TaxPayment, error) {
	payment, _, err := s.store.TaxPayment(ctx, principal, index)
	if err != nil {
		return models.TaxPayment{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read tax payment")
	}
	return payment, nil
}

// CitizenRecord returns principal's derived tax view; zero-valued for a
// principal who never paid.
func (s *Service) CitizenRecord(ctx context.Context, principal id.Principal) (models.CitizenTaxRecord, error) {
	rec, err := s.store.CitizenRecord(ctx, principal)
	if err != nil {
		return models.CitizenTaxRecord{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read citizen record")
	}
	return rec, nil
}

// TotalTaxPaid returns principal's lifetime total; 0 if they never paid.
func (s *Service) TotalTaxPaid(ctx context.Context, principal id.Principal) (uint64, error) {
	rec, err := s.CitizenRecord(ctx, principal)
	if err != nil {
		return 0, err
	}
	return rec.TotalPaid, nil
}

// ExpenditureDetails returns the expenditure and its detail text for id,
// zero-valued when the id was never committed (same permissive policy as
// TaxPayment).
func (s *Service) ExpenditureDetails(ctx context.Context, expID uint64) (models.Expenditure, string, error) {
	exp, detail, _, err := s.store.Expenditure(ctx, expID)
	if err != nil {
		return models.Expenditure{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read expenditure")
	}
	return exp, detail, nil
}

// TotalExpenditures returns the number of committed expenditures.
func (s *Service) TotalExpenditures(ctx context.Context) (uint64, error) {
	count, err := s.store.ExpenditureCount(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count expenditures")
	}
	return count, nil
}

// Totals returns the aggregate audit-trail counters.
func (s *Service) Totals(ctx context.Context) (models.LedgerTotals, error) {
	totals, err := s.store.Totals(ctx)
	if err != nil {
		return models.LedgerTotals{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read ledger totals")
	}
	return totals, nil
}

// Balance returns the treasury's custodied funds from the settlement
// collaborator, the authoritative source.
func (s *Service) Balance(ctx context.Context) (uint64, error) {
	balance, err := s.settlement.Balance(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query treasury balance")
	}
	if s.metrics != nil {
		s.metrics.SetTreasuryBalance(balance)
	}
	return balance, nil
}

// Government returns the current government wallet.
func (s *Service) Government(ctx context.Context) (id.Principal, error) {
	gov, err := s.store.Government(ctx)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read government wallet")
	}
	return gov, nil
}

// IsGovernment reports whether p currently holds the government role.
func (s *Service) IsGovernment(ctx context.Context, p id.Principal) (bool, error) {
	gov, err := s.Government(ctx)
	if err != nil {
		return false, err
	}
	return !p.IsZero() && p == gov, nil
}

// IsAuditor reports auditor membership. Membership grants no capability
// beyond the public read API; the role is tracked and published only.
func (s *Service) IsAuditor(ctx context.Context, p id.Principal) (bool, error) {
	ok, err := s.store.IsAuditor(ctx, p)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read auditor status")
	}
	return ok, nil
}

// requireGovernment gates privileged operations.
func (s *Service) requireGovernment(ctx context.Context, caller id.Principal) error {
	gov, err := s.store.Government(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read government wallet")
	}
	if caller.IsZero() || caller != gov {
		if s.metrics != nil {
			s.metrics.RecordUnauthorized()
		}
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the government wallet")
	}
	return nil
}

// emit publishes a ledger event. Delivery is fire-and-forget: failures are
// logged and never fail the operation that produced the event.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event publish failed",
			"kind", event.Kind,
			"request_id", event.RequestID,
			"error", err,
		)
	}
}
