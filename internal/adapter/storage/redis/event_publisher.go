package redis

import (
	"context"
	"encoding/json"

	"roulette-table-service/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// EventPublisher implements ports.EventPublisher over Redis pub/sub.
// Delivery is strictly fire-and-forget: a publish failure is logged and
// swallowed, never surfaced to the settlement path.
type EventPublisher struct {
	client  *goredis.Client
	channel string
	log     zerolog.Logger
}

// NewEventPublisher creates a Redis-backed event publisher.
func NewEventPublisher(client *goredis.Client, channel string, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Publish emits one event on the pub/sub channel.
func (p *EventPublisher) Publish(ctx context.Context, event ports.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Str("kind", event.Kind).Msg("marshal event")
		return
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn().Err(err).Str("kind", event.Kind).Msg("publish event")
	}
}
