// Package handler wires the ledger's public HTTP surface to the service.
// Handlers stay thin: decode, delegate, translate errors, log.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"fisc/internal/ledger/models"
	id "fisc/pkg/domain"
	dErrors "fisc/pkg/domain-errors"
	"fisc/pkg/platform/httputil"
	"fisc/pkg/requestcontext"
)

// Service defines the ledger operations the HTTP layer consumes.
type Service interface {
	PayTax(ctx context.Context, caller id.Principal, amount uint64) (models.TaxPayment, uint64, error)
	RecordExpenditure(ctx context.Context, caller, recipient id.Principal, amount uint64, purpose, detail string) (uint64, models.Expenditure, error)
	SetAuditor(ctx context.Context, caller, target id.Principal, enabled bool) error
	ChangeGovernmentWallet(ctx context.Context, caller, newWallet id.Principal) error

	TaxPayment(ctx context.Context, principal id.Principal, index uint64) (models.TaxPayment, error)
	CitizenRecord(ctx context.Context, principal id.Principal) (models.CitizenTaxRecord, error)
	ExpenditureDetails(ctx context.Context, expID uint64) (models.Expenditure, string, error)
	TotalExpenditures(ctx context.Context) (uint64, error)
	Totals(ctx context.Context) (models.LedgerTotals, error)
	Balance(ctx context.Context) (uint64, error)
	Government(ctx context.Context) (id.Principal, error)
	IsAuditor(ctx context.Context, p id.Principal) (bool, error)
}

// Handler wires ledger endpoints to the ledger service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a ledger handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterPublic mounts the open read endpoints.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/v1/taxes/{principal}", h.HandleCitizenRecord)
	r.Get("/v1/taxes/{principal}/payments/{index}", h.HandleTaxPayment)
	r.Get("/v1/expenditures", h.HandleExpenditureCount)
	r.Get("/v1/expenditures/{id}", h.HandleExpenditure)
	r.Get("/v1/treasury/balance", h.HandleBalance)
	r.Get("/v1/governance", h.HandleGovernment)
	r.Get("/v1/governance/auditors/{principal}", h.HandleAuditorStatus)
}

// RegisterAuthenticated mounts the write endpoints; the router wraps these
// in the auth middleware so a caller principal is always present.
func (h *Handler) RegisterAuthenticated(r chi.Router) {
	r.Post("/v1/taxes", h.HandlePayTax)
	r.Post("/v1/expenditures", h.HandleRecordExpenditure)
	r.Post("/v1/governance/auditors", h.HandleSetAuditor)
	r.Post("/v1/governance/wallet", h.HandleChangeWallet)
}

// HandlePayTax handles POST /v1/taxes.
func (h *Handler) HandlePayTax(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	caller := requestcontext.Principal(ctx)

	req, ok := httputil.Decode[PayTaxRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	payment, index, err := h.service.PayTax(ctx, caller, req.Amount)
	if err != nil {
		h.logger.WarnContext(ctx, "tax payment rejected",
			"request_id", requestID,
			"principal", caller,
			"amount", req.Amount,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "tax payment recorded",
		"request_id", requestID,
		"principal", caller,
		"amount", humanize.Comma(int64(payment.Amount)),
		"index", index,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, PayTaxResponse{
		Index:   index,
		Payment: fromTaxPayment(payment),
	})
}

// HandleRecordExpenditure handles POST /v1/expenditures.
func (h *Handler) HandleRecordExpenditure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	caller := requestcontext.Principal(ctx)

	req, ok := httputil.Decode[RecordExpenditureRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	expID, exp, err := h.service.RecordExpenditure(ctx, caller, req.ParsedRecipient(), req.Amount, req.Purpose, req.Details)
	if err != nil {
		h.logger.WarnContext(ctx, "expenditure rejected",
			"request_id", requestID,
			"caller", caller,
			"recipient", req.Recipient,
			"amount", req.Amount,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "expenditure recorded",
		"request_id", requestID,
		"expenditure_id", expID,
		"recipient", req.Recipient,
		"amount", humanize.Comma(int64(exp.Amount)),
		"purpose", exp.Purpose,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, fromExpenditure(expID, exp, req.Details))
}

// HandleSetAuditor handles POST /v1/governance/auditors.
func (h *Handler) HandleSetAuditor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller := requestcontext.Principal(ctx)

	req, ok := httputil.Decode[SetAuditorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.SetAuditor(ctx, caller, req.ParsedPrincipal(), req.Enabled); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "auditor status changed",
		"request_id", requestID,
		"principal", req.Principal,
		"enabled", req.Enabled,
	)

	httputil.WriteJSON(w, http.StatusOK, AuditorResponse{
		Principal: req.ParsedPrincipal(),
		Auditor:   req.Enabled,
	})
}

// HandleChangeWallet handles POST /v1/governance/wallet.
func (h *Handler) HandleChangeWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller := requestcontext.Principal(ctx)

	req, ok := httputil.Decode[ChangeWalletRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.ChangeGovernmentWallet(ctx, caller, req.ParsedNewWallet()); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, GovernanceResponse{Government: req.ParsedNewWallet()})
}

// HandleCitizenRecord handles GET /v1/taxes/{principal}.
func (h *Handler) HandleCitizenRecord(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.pathPrincipal(w, r)
	if !ok {
		return
	}

	rec, err := h.service.CitizenRecord(r.Context(), principal)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CitizenResponse{
		Principal:    rec.Principal,
		PaymentCount: rec.PaymentCount,
		TotalPaid:    rec.TotalPaid,
	})
}

// HandleTaxPayment handles GET /v1/taxes/{principal}/payments/{index}.
// Out-of-range indexes return a zero-valued record, preserving the
// ledger's permissive read contract.
func (h *Handler) HandleTaxPayment(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.pathPrincipal(w, r)
	if !ok {
		return
	}
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "index must be a non-negative integer"))
		return
	}

	payment, err := h.service.TaxPayment(r.Context(), principal, index)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromTaxPayment(payment))
}

// HandleExpenditureCount handles GET /v1/expenditures.
func (h *Handler) HandleExpenditureCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	count, err := h.service.TotalExpenditures(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	totals, err := h.service.Totals(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ExpenditureCountResponse{
		Count:          count,
		TotalCollected: totals.TotalCollected,
		TotalSpent:     totals.TotalSpent,
	})
}

// HandleExpenditure handles GET /v1/expenditures/{id}. Same permissive
// read policy as tax payments.
func (h *Handler) HandleExpenditure(w http.ResponseWriter, r *http.Request) {
	expID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "id must be a non-negative integer"))
		return
	}

	exp, details, err := h.service.ExpenditureDetails(r.Context(), expID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromExpenditure(expID, exp, details))
}

// HandleBalance handles GET /v1/treasury/balance.
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Balance(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
}

// HandleGovernment handles GET /v1/governance.
func (h *Handler) HandleGovernment(w http.ResponseWriter, r *http.Request) {
	gov, err := h.service.Government(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, GovernanceResponse{Government: gov})
}

// HandleAuditorStatus handles GET /v1/governance/auditors/{principal}.
func (h *Handler) HandleAuditorStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.pathPrincipal(w, r)
	if !ok {
		return
	}
	auditor, err := h.service.IsAuditor(r.Context(), principal)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AuditorResponse{Principal: principal, Auditor: auditor})
}

func (h *Handler) pathPrincipal(w http.ResponseWriter, r *http.Request) (id.Principal, bool) {
	principal, err := id.ParsePrincipal(chi.URLParam(r, "principal"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return principal, true
}
