// internal/core/ports/invalidator.go
package ports

import "context"

// EntityKind names one cached entity family for invalidation fan-out.
type EntityKind string

// Entity kind constants
const (
	KindUsers     EntityKind = "users"
	KindProducts  EntityKind = "products"
	KindLocations EntityKind = "locations"
	KindOrders    EntityKind = "orders"
)

// StoreInvalidator broadcasts store invalidations between API replicas.
// A replica publishes after a successful write; subscribers react by
// triggering a refresh of the named store. Delivery is best effort: the
// in-memory stores self-heal on the next full refresh regardless.
type StoreInvalidator interface {
	Publish(ctx context.Context, kind EntityKind) error
	Subscribe(ctx context.Context, handler func(kind EntityKind)) error
	Close() error
}
