// Package memory provides an in-process implementation of the settlement
// collaborator: a custodial bank holding per-principal balances, with the
// treasury as one account. Transfers are atomic and synchronous, matching
// the contract the ledger service relies on. Production deployments swap
// in a real settlement backend behind the same port.
package memory

import (
	"context"
	"sync"

	id "fisc/pkg/domain"
	dErrors "fisc/pkg/domain-errors"
)

// Bank is a custodial account book. The treasury account receives tax
// deposits and is debited by disbursements.
type Bank struct {
	mu       sync.Mutex
	treasury id.Principal
	balances map[id.Principal]uint64
}

// NewBank creates a bank with the given treasury account and optional
// seeded balances (a development convenience; production balances arrive
// through deposits).
func NewBank(treasury id.Principal, seed map[id.Principal]uint64) *Bank {
	balances := make(map[id.Principal]uint64, len(seed))
	for p, amount := range seed {
		balances[p] = amount
	}
	return &Bank{treasury: treasury, balances: balances}
}

// Deposit moves amount from the payer into treasury custody. The payer
// account is not balance-checked: in this in-process bank the payer's
// funds are represented by the request itself, the way a value-attached
// call carries its own funds.
func (b *Bank) Deposit(ctx context.Context, from id.Principal, amount uint64) error {
	if from.IsZero() {
		return dErrors.New(dErrors.CodeInvalidAddress, "depositor is required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[b.treasury] += amount
	return nil
}

// Transfer moves amount from treasury custody to the recipient. Fails
// atomically when custody does not hold amount; no partial movement is
// possible.
func (b *Bank) Transfer(ctx context.Context, to id.Principal, amount uint64) error {
	if to.IsZero() {
		return dErrors.New(dErrors.CodeInvalidAddress, "recipient is required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	held := b.balances[b.treasury]
	if amount > held {
		return dErrors.Newf(dErrors.CodeTransferFailed, "treasury holds %d, cannot transfer %d to %s", held, amount, to)
	}
	b.balances[b.treasury] = held - amount
	b.balances[to] += amount
	return nil
}

// Balance returns the treasury's custodied funds.
func (b *Bank) Balance(ctx context.Context) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[b.treasury], nil
}

// AccountBalance returns any account's balance; used by tests and the
// development CLI to observe recipient credits.
func (b *Bank) AccountBalance(ctx context.Context, holder id.Principal) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[holder], nil
}
