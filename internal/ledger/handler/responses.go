package handler

import (
	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
)

// TaxPaymentResponse is the wire form of a tax payment.
type TaxPaymentResponse struct {
	Amount    uint64 `json:"amount"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
}

func fromTaxPayment(p models.TaxPayment) TaxPaymentResponse {
	return TaxPaymentResponse{
		Amount:    p.Amount,
		Timestamp: p.Timestamp,
		Status:    p.Status.String(),
	}
}

// PayTaxResponse confirms a recorded payment and its index in the caller's
// history.
type PayTaxResponse struct {
	Index   uint64             `json:"index"`
	Payment TaxPaymentResponse `json:"payment"`
}

// CitizenResponse is the derived per-citizen view.
type CitizenResponse struct {
	Principal    id.Principal `json:"principal"`
	PaymentCount uint64       `json:"payment_count"`
	TotalPaid    uint64       `json:"total_paid"`
}

// ExpenditureResponse is the wire form of an expenditure with its detail
// text.
type ExpenditureResponse struct {
	ID        uint64 `json:"id"`
	Amount    uint64 `json:"amount"`
	Timestamp int64  `json:"timestamp"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
	Details   string `json:"details"`
}

func fromExpenditure(expID uint64, e models.Expenditure, details string) ExpenditureResponse {
	return ExpenditureResponse{
		ID:        expID,
		Amount:    e.Amount,
		Timestamp: e.Timestamp,
		Purpose:   e.Purpose,
		Status:    e.Status.String(),
		Details:   details,
	}
}

// ExpenditureCountResponse carries the committed expenditure count and the
// aggregate totals.
type ExpenditureCountResponse struct {
	Count          uint64 `json:"count"`
	TotalCollected uint64 `json:"total_collected"`
	TotalSpent     uint64 `json:"total_spent"`
}

// BalanceResponse is the treasury's custodied balance.
type BalanceResponse struct {
	Balance uint64 `json:"balance"`
}

// GovernanceResponse names the current government wallet.
type GovernanceResponse struct {
	Government id.Principal `json:"government"`
}

// AuditorResponse reports auditor membership for one principal.
type AuditorResponse struct {
	Principal id.Principal `json:"principal"`
	Auditor   bool         `json:"auditor"`
}
