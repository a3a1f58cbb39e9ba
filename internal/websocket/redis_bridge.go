package websocket

import (
	"context"
	"encoding/json"

	"pulse-chat/pkg/events"
)

// RedisBridge forwards broker events into the hub so notifications fan out
// to clients connected to any process.
type RedisBridge struct {
	subscriber events.Subscriber
	hub        *Hub
}

func NewRedisBridge(subscriber events.Subscriber, hub *Hub) *RedisBridge {
	return &RedisBridge{subscriber: subscriber, hub: hub}
}

func (b *RedisBridge) Run(ctx context.Context, channels ...string) error {
	for _, channel := range channels {
		channel := channel
		err := b.subscriber.Subscribe(ctx, channel, func(ctx context.Context, event events.Event) error {
			data, err := json.Marshal(event)
			if err != nil {
				return err
			}
			b.hub.Broadcast(channel, data)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
