package events_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fisc/internal/events"
)

type countingSink struct {
	published []events.Event
	err       error
}

func (s *countingSink) Publish(_ context.Context, event events.Event) error {
	s.published = append(s.published, event)
	return s.err
}

func TestFanoutDeliversToAllSinks(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	fanout := events.Fanout{a, b}

	event := events.Event{Kind: events.KindTaxPaid, Amount: 100, Timestamp: time.Now()}
	require.NoError(t, fanout.Publish(context.Background(), event))

	assert.Len(t, a.published, 1)
	assert.Len(t, b.published, 1)
	assert.Equal(t, events.KindTaxPaid, a.published[0].Kind)
}

func TestFanoutFailedSinkDoesNotBlockOthers(t *testing.T) {
	failing := &countingSink{err: errors.New("broker down")}
	healthy := &countingSink{}
	fanout := events.Fanout{failing, healthy}

	err := fanout.Publish(context.Background(), events.Event{Kind: events.KindExpenditureCreated})
	assert.Error(t, err)
	assert.Len(t, healthy.published, 1, "later sinks still receive the event")
}

func TestLogSinkWritesEventFields(t *testing.T) {
	var buf bytes.Buffer
	sink := events.NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sink.Publish(context.Background(), events.Event{
		Kind:          events.KindExpenditureCreated,
		Timestamp:     time.Unix(1700000000, 0),
		ExpenditureID: 7,
		Amount:        4000,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "expenditure_created")
	assert.Contains(t, out, `"expenditure_id":7`)
	assert.Contains(t, out, `"amount":4000`)
}
