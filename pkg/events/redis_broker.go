package events

import (
	"context"
	"encoding/json"
	"fmt"

	"pulse-chat/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisBroker implements Broker on Redis pub/sub. Delivery is
// fire-and-forget: there is no acknowledgment and no retry.
type RedisBroker struct {
	Client *redis.Client
}

func NewRedisBroker(addr, password string, db int) *RedisBroker {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisBroker{Client: rdb}
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.Client.Publish(ctx, channel, data).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context, channel string, handler Handler) error {
	pubsub := b.Client.Subscribe(ctx, channel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					if l := logger.GetGlobalLogger(); l != nil {
						l.Errorf("unmarshaling event on %s: %v", channel, err)
					}
					continue
				}
				if err := handler(ctx, event); err != nil {
					if l := logger.GetGlobalLogger(); l != nil {
						l.Errorf("handling event on %s: %v", channel, err)
					}
				}
			}
		}
	}()

	return nil
}

func (b *RedisBroker) Close() error {
	return b.Client.Close()
}
