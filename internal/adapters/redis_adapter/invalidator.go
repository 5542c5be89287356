// internal/adapters/redis_adapter/invalidator.go
package redis_a

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// Invalidator broadcasts store invalidations between API replicas over
// a Redis pub/sub channel. Delivery is best effort; a missed message
// only delays a store until its next periodic refresh.
type Invalidator struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger

	mu  sync.Mutex
	sub *redis.PubSub
}

// Statically assert that *Invalidator implements the StoreInvalidator port.
var _ ports.StoreInvalidator = (*Invalidator)(nil)

// NewInvalidator creates a new invalidator publishing on the given channel
func NewInvalidator(client *redis.Client, channel string, logger *slog.Logger) *Invalidator {
	return &Invalidator{
		client:  client,
		channel: channel,
		logger:  logger.With(slog.String("component", "invalidator")),
	}
}

// Publish announces that stores of the given kind are stale.
func (i *Invalidator) Publish(ctx context.Context, kind ports.EntityKind) error {
	if err := i.client.Publish(ctx, i.channel, string(kind)).Err(); err != nil {
		i.logger.ErrorContext(ctx, "failed to publish invalidation",
			slog.String("kind", string(kind)),
			slog.String("err", err.Error()))
		return fmt.Errorf("redis publish error: %w", err)
	}

	i.logger.DebugContext(ctx, "invalidation published",
		slog.String("kind", string(kind)))

	return nil
}

// Subscribe starts consuming invalidations and hands each kind to the
// handler on a dedicated goroutine. It returns once the subscription is
// confirmed; the consumer runs until Close or context cancellation.
func (i *Invalidator) Subscribe(ctx context.Context, handler func(kind ports.EntityKind)) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.sub != nil {
		return fmt.Errorf("already subscribed to %s", i.channel)
	}

	sub := i.client.Subscribe(ctx, i.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", i.channel, err)
	}
	i.sub = sub

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				i.logger.DebugContext(ctx, "invalidation received",
					slog.String("kind", msg.Payload))
				handler(ports.EntityKind(msg.Payload))
			}
		}
	}()

	i.logger.InfoContext(ctx, "subscribed to invalidations",
		slog.String("channel", i.channel))

	return nil
}

// Close stops the subscription, if any. The Redis client itself is
// owned by the caller.
func (i *Invalidator) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.sub == nil {
		return nil
	}
	err := i.sub.Close()
	i.sub = nil
	return err
}
