// internal/workers/purge_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/pkg/config"
)

// PurgeProcessor hard-deletes soft-deleted rows once they age past the
// configured retention window.
type PurgeProcessor struct {
	db     *db.Database
	config *config.Config
	logger *slog.Logger
}

// NewPurgeProcessor creates a new purge processor
func NewPurgeProcessor(database *db.Database, cfg *config.Config, logger *slog.Logger) *PurgeProcessor {
	return &PurgeProcessor{
		db:     database,
		config: cfg,
		logger: logger.With(slog.String("processor", "purge")),
	}
}

// PurgeTombstones removes tombstoned rows older than the retention
// window. Rows still referenced by live data are left in place; the next
// run picks them up once the referencing rows are gone.
func (p *PurgeProcessor) PurgeTombstones(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().UTC().Add(-p.config.Asynq.PurgeRetention)

	p.logger.InfoContext(ctx, "purging tombstones",
		slog.Time("cutoff", cutoff))

	var total int64

	// Orders first: their line items go with them, and purged orders
	// unblock partner and location purges below. An order with movement
	// history keeps its items and waits; the movement rows reference it.
	if _, err := p.db.Exec(ctx,
		`DELETE FROM order_items WHERE order_id IN (
			SELECT id FROM orders o
			WHERE o.deleted_at IS NOT NULL AND o.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM inventory_movements m WHERE m.order_id = o.id))`,
		cutoff); err != nil {
		return fmt.Errorf("purge order items: %w", err)
	}
	n, err := p.purge(ctx, `DELETE FROM orders o
		WHERE o.deleted_at IS NOT NULL AND o.deleted_at < $1
		AND NOT EXISTS (SELECT 1 FROM inventory_movements m WHERE m.order_id = o.id)`, cutoff)
	if err != nil {
		return fmt.Errorf("purge orders: %w", err)
	}
	total += n

	steps := []struct {
		table string
		query string
	}{
		{"products", `DELETE FROM products p
			WHERE p.deleted_at IS NOT NULL AND p.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.product_id = p.id)
			AND NOT EXISTS (SELECT 1 FROM inventory i WHERE i.product_id = p.id)
			AND NOT EXISTS (SELECT 1 FROM inventory_movements m WHERE m.product_id = p.id)`},
		{"categories", `DELETE FROM categories c
			WHERE c.deleted_at IS NOT NULL AND c.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM products p WHERE p.category_id = c.id)`},
		{"suppliers", `DELETE FROM suppliers s
			WHERE s.deleted_at IS NOT NULL AND s.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.supplier_id = s.id)
			AND NOT EXISTS (SELECT 1 FROM products p WHERE p.supplier_id = s.id)`},
		{"customers", `DELETE FROM customers c
			WHERE c.deleted_at IS NOT NULL AND c.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = c.id)`},
		{"locations", `DELETE FROM locations l
			WHERE l.deleted_at IS NOT NULL AND l.deleted_at < $1
			AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.location_id = l.id)
			AND NOT EXISTS (SELECT 1 FROM inventory i WHERE i.location_id = l.id)
			AND NOT EXISTS (SELECT 1 FROM inventory_movements m WHERE m.location_id = l.id)`},
		{"users", `DELETE FROM users WHERE deleted_at IS NOT NULL AND deleted_at < $1`},
	}

	for _, step := range steps {
		n, err := p.purge(ctx, step.query, cutoff)
		if err != nil {
			return fmt.Errorf("purge %s: %w", step.table, err)
		}
		total += n
	}

	p.logger.InfoContext(ctx, "tombstone purge completed",
		slog.Int64("rows_deleted", total))

	return nil
}

func (p *PurgeProcessor) purge(ctx context.Context, query string, cutoff time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
