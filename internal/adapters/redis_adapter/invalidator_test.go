// internal/adapters/redis_adapter/invalidator_test.go
package redis_a_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/acardosi/stockroom-be/internal/adapters/redis_adapter"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/test/helpers"
)

func TestInvalidator_PublishReachesSubscriber(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	subscriber := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	defer subscriber.Close()

	var mu sync.Mutex
	var received []ports.EntityKind
	err := subscriber.Subscribe(ctx, func(kind ports.EntityKind) {
		mu.Lock()
		received = append(received, kind)
		mu.Unlock()
	})
	require.NoError(t, err)

	publisher := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	require.NoError(t, publisher.Publish(ctx, ports.KindProducts))
	require.NoError(t, publisher.Publish(ctx, ports.KindOrders))

	helpers.AssertEventuallyWithTimeout(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 2
	}, 3*time.Second, "expected both invalidations to arrive")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []ports.EntityKind{ports.KindProducts, ports.KindOrders}, received)
}

func TestInvalidator_ChannelsAreIsolated(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	subscriber := redis_a.NewInvalidator(tr.Client, "other:channel", helpers.TestLogger())
	defer subscriber.Close()

	got := make(chan ports.EntityKind, 1)
	err := subscriber.Subscribe(ctx, func(kind ports.EntityKind) {
		got <- kind
	})
	require.NoError(t, err)

	publisher := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	require.NoError(t, publisher.Publish(ctx, ports.KindUsers))

	select {
	case kind := <-got:
		t.Fatalf("unexpected invalidation %q on unrelated channel", kind)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestInvalidator_SecondSubscribeRejected(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	inv := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	defer inv.Close()

	require.NoError(t, inv.Subscribe(ctx, func(ports.EntityKind) {}))
	assert.Error(t, inv.Subscribe(ctx, func(ports.EntityKind) {}))
}

func TestInvalidator_CloseStopsConsumer(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	inv := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	require.NoError(t, inv.Subscribe(ctx, func(ports.EntityKind) {}))
	require.NoError(t, inv.Close())

	// Close is idempotent and a fresh subscription is allowed again.
	require.NoError(t, inv.Close())
	require.NoError(t, inv.Subscribe(ctx, func(ports.EntityKind) {}))
	require.NoError(t, inv.Close())
}

func TestInvalidator_PublishAfterServerGone(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	inv := redis_a.NewInvalidator(tr.Client, "test:invalidate", helpers.TestLogger())
	tr.Server.Close()

	err := inv.Publish(ctx, ports.KindLocations)
	assert.Error(t, err)
}
