package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TaxPaymentsTotal      prometheus.Counter
	TaxCollectedTotal     prometheus.Counter
	ExpendituresTotal     prometheus.Counter
	ExpenditureSpentTotal prometheus.Counter
	TransferFailuresTotal prometheus.Counter
	UnauthorizedTotal     prometheus.Counter
	TreasuryBalance       prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		TaxPaymentsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_tax_payments_total",
			Help: "Total number of tax payments recorded",
		}),
		TaxCollectedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_tax_collected_total",
			Help: "Total amount of tax collected",
		}),
		ExpendituresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_expenditures_total",
			Help: "Total number of committed expenditures",
		}),
		ExpenditureSpentTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_expenditure_spent_total",
			Help: "Total amount disbursed from the treasury",
		}),
		TransferFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_transfer_failures_total",
			Help: "Total number of settlement transfers rejected by the collaborator",
		}),
		UnauthorizedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fisc_unauthorized_total",
			Help: "Total number of privileged calls rejected for lack of role",
		}),
		TreasuryBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fisc_treasury_balance",
			Help: "Current custodied treasury balance as reported by settlement",
		}),
	}
}

func (m *Metrics) RecordTaxPayment(amount uint64) {
	m.TaxPaymentsTotal.Inc()
	m.TaxCollectedTotal.Add(float64(amount))
}

func (m *Metrics) RecordExpenditure(amount uint64) {
	m.ExpendituresTotal.Inc()
	m.ExpenditureSpentTotal.Add(float64(amount))
}

func (m *Metrics) RecordTransferFailure() {
	m.TransferFailuresTotal.Inc()
}

func (m *Metrics) RecordUnauthorized() {
	m.UnauthorizedTotal.Inc()
}

func (m *Metrics) SetTreasuryBalance(balance uint64) {
	m.TreasuryBalance.Set(float64(balance))
}
