package handler_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "fisc/internal/http"
	"fisc/internal/jwtprincipal"
	"fisc/internal/ledger/handler"
	"fisc/internal/ledger/service"
	storememory "fisc/internal/ledger/store/memory"
	bankmemory "fisc/internal/settlement/memory"
	id "fisc/pkg/domain"
	"fisc/pkg/testutil"
)

var (
	gov      = id.MustParsePrincipal("0x" + strings.Repeat("aa", 20))
	alice    = id.MustParsePrincipal("0x" + strings.Repeat("bb", 20))
	vendor   = id.MustParsePrincipal("0x" + strings.Repeat("cc", 20))
	treasury = id.MustParsePrincipal("0x" + strings.Repeat("fe", 20))
)

type fixture struct {
	router http.Handler
	tokens *jwtprincipal.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storememory.New(gov)
	bank := bankmemory.NewBank(treasury, map[id.Principal]uint64{
		alice: 1_000_000,
	})
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	svc, err := service.New(store, bank, service.WithLogger(logger))
	require.NoError(t, err)

	tokens := jwtprincipal.New("test-signing-key", "fisc", "fisc-api")
	h := handler.New(svc, logger)
	router := httpapi.NewRouter(h, tokens, logger)

	return &fixture{router: router, tokens: tokens}
}

func (f *fixture) authed(t *testing.T, req *http.Request, principal id.Principal) *http.Request {
	t.Helper()
	token, err := f.tokens.Mint(principal, time.Minute)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestWriteEndpointsRequireToken(t *testing.T) {
	f := newFixture(t)

	paths := []string{"/v1/taxes", "/v1/expenditures", "/v1/governance/auditors", "/v1/governance/wallet"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, path, map[string]any{})
			rr := testutil.DoRequest(f.router, req)
			testutil.AssertStatus(t, rr, http.StatusUnauthorized)
		})
	}
}

func TestReadEndpointsAreOpen(t *testing.T) {
	f := newFixture(t)

	paths := []string{
		"/v1/taxes/" + alice.String(),
		"/v1/taxes/" + alice.String() + "/payments/0",
		"/v1/expenditures",
		"/v1/expenditures/0",
		"/v1/treasury/balance",
		"/v1/governance",
		"/v1/governance/auditors/" + alice.String(),
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, path))
			testutil.AssertStatus(t, rr, http.StatusOK)
		})
	}
}

func TestPayTaxFlow(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/taxes", handler.PayTaxRequest{Amount: 2500}), alice)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	created := testutil.UnmarshalResponse[handler.PayTaxResponse](t, rr)
	assert.Equal(t, uint64(0), created.Index)
	assert.Equal(t, uint64(2500), created.Payment.Amount)
	assert.Equal(t, "processed", created.Payment.Status)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/taxes/"+alice.String()))
	testutil.AssertStatus(t, rr, http.StatusOK)
	record := testutil.UnmarshalResponse[handler.CitizenResponse](t, rr)
	assert.Equal(t, uint64(1), record.PaymentCount)
	assert.Equal(t, uint64(2500), record.TotalPaid)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/treasury/balance"))
	balance := testutil.UnmarshalResponse[handler.BalanceResponse](t, rr)
	assert.Equal(t, uint64(2500), balance.Balance)
}

func TestPayTaxRejectsZeroAmount(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/taxes", handler.PayTaxRequest{Amount: 0}), alice)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertErrorCode(t, rr, "invalid_amount")
}

func TestExpenditureFlow(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/taxes", handler.PayTaxRequest{Amount: 10_000}), alice)
	testutil.AssertStatus(t, testutil.DoRequest(f.router, req), http.StatusCreated)

	req = f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/expenditures", handler.RecordExpenditureRequest{
		Recipient: vendor.String(),
		Amount:    4_000,
		Purpose:   "road maintenance",
		Details:   "resurfacing contract, district 4",
	}), gov)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	created := testutil.UnmarshalResponse[handler.ExpenditureResponse](t, rr)
	assert.Equal(t, uint64(0), created.ID)
	assert.Equal(t, uint64(4_000), created.Amount)
	assert.Equal(t, "completed", created.Status)
	assert.Equal(t, "resurfacing contract, district 4", created.Details)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/expenditures"))
	summary := testutil.UnmarshalResponse[handler.ExpenditureCountResponse](t, rr)
	assert.Equal(t, uint64(1), summary.Count)
	assert.Equal(t, uint64(10_000), summary.TotalCollected)
	assert.Equal(t, uint64(4_000), summary.TotalSpent)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/treasury/balance"))
	balance := testutil.UnmarshalResponse[handler.BalanceResponse](t, rr)
	assert.Equal(t, uint64(6_000), balance.Balance)
}

func TestExpenditureRequiresGovernment(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/expenditures", handler.RecordExpenditureRequest{
		Recipient: vendor.String(),
		Amount:    100,
		Purpose:   "unauthorized attempt",
	}), alice)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusForbidden)
	testutil.AssertErrorCode(t, rr, "unauthorized")
}

func TestExpenditureInsufficientFunds(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/expenditures", handler.RecordExpenditureRequest{
		Recipient: vendor.String(),
		Amount:    1,
		Purpose:   "nothing collected yet",
	}), gov)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
	testutil.AssertErrorCode(t, rr, "insufficient_funds")
}

func TestGovernanceEndpoints(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/governance/auditors", handler.SetAuditorRequest{
		Principal: alice.String(),
		Enabled:   true,
	}), gov)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/governance/auditors/"+alice.String()))
	status := testutil.UnmarshalResponse[handler.AuditorResponse](t, rr)
	assert.True(t, status.Auditor)

	newGov := id.MustParsePrincipal("0x" + strings.Repeat("dd", 20))
	req = f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/governance/wallet", handler.ChangeWalletRequest{
		NewWallet: newGov.String(),
	}), gov)
	rr = testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/governance"))
	governance := testutil.UnmarshalResponse[handler.GovernanceResponse](t, rr)
	assert.Equal(t, newGov, governance.Government)

	// The old wallet lost its authority with the handover.
	req = f.authed(t, testutil.NewJSONRequest(t, http.MethodPost, "/v1/governance/auditors", handler.SetAuditorRequest{
		Principal: vendor.String(),
		Enabled:   true,
	}), gov)
	rr = testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusForbidden)
}

func TestOutOfRangeReadsReturnZeroValues(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/taxes/"+alice.String()+"/payments/99"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	payment := testutil.UnmarshalResponse[handler.TaxPaymentResponse](t, rr)
	assert.Equal(t, uint64(0), payment.Amount)
	assert.Equal(t, "unprocessed", payment.Status)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/expenditures/99"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	exp := testutil.UnmarshalResponse[handler.ExpenditureResponse](t, rr)
	assert.Equal(t, uint64(0), exp.Amount)
	assert.Equal(t, "", exp.Details)
}

func TestMalformedJSONRejected(t *testing.T) {
	f := newFixture(t)

	req := f.authed(t, testutil.NewRequestWithBody(t, http.MethodPost, "/v1/taxes", `{"amount":`), alice)
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestMalformedPathPrincipalRejected(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/v1/taxes/not-an-address"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertErrorCode(t, rr, "invalid_address")
}
