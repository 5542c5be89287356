// internal/workers/refresh_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// RefreshProcessor periodically broadcasts store invalidations so every
// API replica reloads its in-memory stores. The stores self-heal on the
// next refresh anyway; this bounds how stale a replica can get when an
// invalidation message was lost.
type RefreshProcessor struct {
	invalidator ports.StoreInvalidator
	logger      *slog.Logger
}

// NewRefreshProcessor creates a new refresh processor
func NewRefreshProcessor(invalidator ports.StoreInvalidator, logger *slog.Logger) *RefreshProcessor {
	return &RefreshProcessor{
		invalidator: invalidator,
		logger:      logger.With(slog.String("processor", "refresh")),
	}
}

// RefreshStores publishes an invalidation for every cached entity kind.
func (p *RefreshProcessor) RefreshStores(ctx context.Context, t *asynq.Task) error {
	kinds := []ports.EntityKind{
		ports.KindUsers,
		ports.KindProducts,
		ports.KindLocations,
		ports.KindOrders,
	}

	for _, kind := range kinds {
		if err := p.invalidator.Publish(ctx, kind); err != nil {
			return fmt.Errorf("publish %s invalidation: %w", kind, err)
		}
	}

	p.logger.InfoContext(ctx, "store refresh broadcast",
		slog.Int("kinds", len(kinds)))

	return nil
}
