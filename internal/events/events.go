// Package events defines the ledger's notification model and the sinks
// that deliver it. Emissions are fire-and-forget: the ledger emits inside
// its critical section so sinks observe events in commit order, but a sink
// failure never fails the operation that produced the event.
package events

import (
	"context"
	"log/slog"
	"time"

	id "fisc/pkg/domain"
)

// Kind identifies the notification type.
type Kind string

const (
	KindTaxPaid                 Kind = "tax_paid"
	KindExpenditureCreated      Kind = "expenditure_created"
	KindAuditorStatusChanged    Kind = "auditor_status_changed"
	KindGovernmentWalletChanged Kind = "government_wallet_changed"
)

// Event is a single ledger notification. Only the fields relevant to the
// kind are populated.
type Event struct {
	Kind      Kind         `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
	RequestID string       `json:"request_id,omitempty"`
	Principal id.Principal `json:"principal,omitempty"`

	// Tax payment and expenditure fields.
	Amount        uint64 `json:"amount,omitempty"`
	ExpenditureID uint64 `json:"expenditure_id,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	Status        string `json:"status,omitempty"`

	// Governance fields.
	Enabled   bool         `json:"enabled,omitempty"`
	OldWallet id.Principal `json:"old_wallet,omitempty"`
	NewWallet id.Principal `json:"new_wallet,omitempty"`
}

// Sink accepts ledger events. Implementations must not block on delivery
// longer than the passed context allows.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout delivers each event to every sink, collecting nothing: delivery
// is best-effort per sink and failures are the emitter's to log.
type Fanout []Sink

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var first error
	for _, s := range f {
		if err := s.Publish(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// LogSink writes events to the structured log. It is always configured so
// a ledger with no external sinks still has a visible event trail.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "ledger event",
		"kind", event.Kind,
		"timestamp", event.Timestamp.Unix(),
		"request_id", event.RequestID,
		"principal", event.Principal,
		"amount", event.Amount,
		"expenditure_id", event.ExpenditureID,
	)
	return nil
}
