// Package redisstream appends ledger events to a Redis stream via XADD.
// Stream ids give consumers the same total order the ledger committed in.
package redisstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fisc/internal/events"
	platformredis "fisc/internal/platform/redis"
)

// Sink is a Redis-stream-backed event sink.
type Sink struct {
	client *platformredis.Client
	stream string
}

func New(client *platformredis.Client, stream string) *Sink {
	return &Sink{client: client, stream: stream}
}

func (s *Sink) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"kind":    string(event.Kind),
			"payload": payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd event: %w", err)
	}
	return nil
}
