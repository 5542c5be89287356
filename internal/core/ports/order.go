// internal/core/ports/order.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// OrderRepository is the persistence port for orders and their items.
// Save and Update persist the header and line items atomically.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Order, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Order, error)
	List(ctx context.Context, params OrderListParams) ([]domain.Order, int64, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	NumberExists(ctx context.Context, number string, excludeID int64) (bool, error)
}

// OrderItemParams carries one line item of an order write. Any supplied
// total is discarded; totals are always recomputed.
type OrderItemParams struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderParams carries input for creating an order. New orders
// always start in draft.
type CreateOrderParams struct {
	Type         domain.OrderType  `json:"type"`
	SupplierID   *int64            `json:"supplier_id,omitempty"`
	CustomerID   *int64            `json:"customer_id,omitempty"`
	LocationID   int64             `json:"location_id"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Notes        string            `json:"notes"`
	Items        []OrderItemParams `json:"items"`
}

// UpdateOrderParams carries input for updating a draft order.
type UpdateOrderParams struct {
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Notes        string            `json:"notes"`
	Items        []OrderItemParams `json:"items"`
}

// OrderService is the facade exposed to the UI layer for orders.
type OrderService interface {
	Create(ctx context.Context, params CreateOrderParams) Result[domain.Order]
	Update(ctx context.Context, id int64, params UpdateOrderParams) Result[domain.Order]
	GetByID(ctx context.Context, id int64, includeDeleted bool) Result[domain.Order]
	List(ctx context.Context, params OrderListParams) Result[Page[domain.Order]]
	GetAllActive(ctx context.Context) Result[[]domain.Order]
	ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) Result[domain.Order]
	SoftDelete(ctx context.Context, id int64) Result[Unit]
	Restore(ctx context.Context, id int64) Result[domain.Order]
	HardDelete(ctx context.Context, id int64) Result[Unit]
	BulkSoftDelete(ctx context.Context, ids []int64) Result[Unit]
	BulkRestore(ctx context.Context, ids []int64) Result[Unit]

	CachedByID(id int64) (domain.Order, bool)
	CachedByStatus(status domain.OrderStatus) []domain.Order
	CachedByType(orderType domain.OrderType) []domain.Order
	CachedCount() int
	RefreshCache()
}
