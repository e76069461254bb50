package handler

import (
	id "fisc/pkg/domain"
)

// PayTaxRequest is the body of POST /v1/taxes.
type PayTaxRequest struct {
	Amount uint64 `json:"amount"`
}

// RecordExpenditureRequest is the body of POST /v1/expenditures.
type RecordExpenditureRequest struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
	Purpose   string `json:"purpose"`
	Details   string `json:"details"`
}

// ParsedRecipient validates the recipient address. The zero value is
// returned on malformed input; the service rejects it with the proper
// domain code.
func (r RecordExpenditureRequest) ParsedRecipient() id.Principal {
	p, err := id.ParsePrincipal(r.Recipient)
	if err != nil {
		return ""
	}
	return p
}

// SetAuditorRequest is the body of POST /v1/governance/auditors.
type SetAuditorRequest struct {
	Principal string `json:"principal"`
	Enabled   bool   `json:"enabled"`
}

func (r SetAuditorRequest) ParsedPrincipal() id.Principal {
	p, err := id.ParsePrincipal(r.Principal)
	if err != nil {
		return ""
	}
	return p
}

// ChangeWalletRequest is the body of POST /v1/governance/wallet.
type ChangeWalletRequest struct {
	NewWallet string `json:"new_wallet"`
}

func (r ChangeWalletRequest) ParsedNewWallet() id.Principal {
	p, err := id.ParsePrincipal(r.NewWallet)
	if err != nil {
		return ""
	}
	return p
}
