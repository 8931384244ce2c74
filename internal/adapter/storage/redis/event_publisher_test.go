package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"roulette-table-service/internal/adapter/storage/redis"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	log := logger.New("error", false)
	pub := redis.NewEventPublisher(client, "table.events", log)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "table.events")
	defer sub.Close()
	_, err := sub.Receive(ctx) // wait for subscription confirmation
	require.NoError(t, err)

	pub.Publish(ctx, ports.Event{
		Kind:    "round.settled",
		At:      time.Now().UTC(),
		Payload: map[string]any{"winning_number": 7},
	})

	select {
	case msg := <-sub.Channel():
		var event ports.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, "round.settled", event.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a published event")
	}
}

func TestEventPublisher_PublishFailureIsSwallowed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	log := logger.New("error", false)
	pub := redis.NewEventPublisher(client, "table.events", log)

	mr.Close()
	client.Close()

	// Publish against a dead connection must not panic or return anything.
	pub.Publish(context.Background(), ports.Event{Kind: "bet.placed", At: time.Now()})
}
