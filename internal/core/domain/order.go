// internal/core/domain/order.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderType distinguishes purchase orders (from suppliers) from sales
// orders (to customers).
type OrderType string

// Order type constants
const (
	OrderPurchase OrderType = "purchase"
	OrderSale     OrderType = "sale"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order status constants
const (
	StatusDraft     OrderStatus = "draft"
	StatusActive    OrderStatus = "active"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusDraft, StatusActive, StatusFulfilled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the only source of legal lifecycle moves.
// Completed and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusFulfilled, StatusCancelled},
	StatusFulfilled: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionError explains why a particular status move is rejected.
// Inventory side effects make most reversals unsafe, so the messages
// spell out the reason instead of a generic "invalid transition".
func TransitionError(from, to OrderStatus) error {
	if !ValidStatus(to) {
		return fmt.Errorf("unknown order status %q", to)
	}
	if CanTransition(from, to) {
		return nil
	}
	switch {
	case from == StatusCompleted:
		return fmt.Errorf("completed orders are final and cannot change to %s", to)
	case from == StatusCancelled:
		return fmt.Errorf("cancelled orders are final and cannot change to %s", to)
	case from == StatusFulfilled && to != StatusCompleted:
		return fmt.Errorf("fulfilled orders cannot revert to %s: inventory already adjusted", to)
	case from == StatusDraft && to == StatusFulfilled:
		return fmt.Errorf("draft orders must be activated before fulfillment")
	case from == StatusDraft && to == StatusCompleted:
		return fmt.Errorf("draft orders must be activated and fulfilled before completion")
	case from == StatusActive && to == StatusCompleted:
		return fmt.Errorf("active orders must be fulfilled before completion")
	default:
		return fmt.Errorf("orders cannot change from %s to %s", from, to)
	}
}

// OrderItem is one product line on an order. TotalPrice is derived from
// Quantity and UnitPrice on every write, never taken from input.
type OrderItem struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Recalculate derives TotalPrice from quantity and unit price.
func (it OrderItem) Recalculate() OrderItem {
	it.TotalPrice = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	return it
}

// Validate returns the list of violated rules.
func (it OrderItem) Validate() []string {
	var violations []string
	if it.ProductID <= 0 {
		violations = append(violations, "product_id is required")
	}
	if it.Quantity <= 0 {
		violations = append(violations, "quantity must be positive")
	}
	if it.UnitPrice.IsNegative() {
		violations = append(violations, "unit_price cannot be negative")
	}
	return violations
}

// Order is a purchase or sales order with its line items.
// Exactly one of SupplierID/CustomerID is set, matched to Type.
type Order struct {
	ID           int64           `json:"id"`
	Number       string          `json:"number"`
	Type         OrderType       `json:"type"`
	Status       OrderStatus     `json:"status"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	CustomerID   *int64          `json:"customer_id,omitempty"`
	LocationID   int64           `json:"location_id"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the order has been soft deleted.
func (o Order) IsDeleted() bool {
	return o.DeletedAt != nil
}

// Recalculate derives every line total and the order total.
func (o Order) Recalculate() Order {
	items := make([]OrderItem, len(o.Items))
	total := decimal.Zero
	for i, it := range o.Items {
		items[i] = it.Recalculate()
		total = total.Add(items[i].TotalPrice)
	}
	o.Items = items
	o.Total = total
	return o
}

// WithStatus derives a copy in the new status. Legality is checked by the
// order service via TransitionError before the copy is persisted.
func (o Order) WithStatus(status OrderStatus) Order {
	o.Status = status
	o.UpdatedAt = time.Now()
	return o
}

// WithDetails derives a copy with updated delivery date and notes.
func (o Order) WithDetails(deliveryDate *time.Time, notes string) Order {
	o.DeliveryDate = deliveryDate
	o.Notes = notes
	o.UpdatedAt = time.Now()
	return o
}

// WithItems derives a copy with replaced line items and recomputed totals.
func (o Order) WithItems(items []OrderItem) Order {
	o.Items = items
	o.UpdatedAt = time.Now()
	return o.Recalculate()
}

// AsDeleted derives a soft-deleted copy.
func (o Order) AsDeleted(at time.Time) Order {
	o.DeletedAt = &at
	o.UpdatedAt = at
	return o
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (o Order) AsRestored() Order {
	o.DeletedAt = nil
	o.UpdatedAt = time.Now()
	return o
}

// Validate returns the list of violated rules, covering the counterparty
// exclusivity invariant and every line item.
func (o Order) Validate() []string {
	var violations []string
	switch o.Type {
	case OrderPurchase:
		if o.SupplierID == nil {
			violations = append(violations, "purchase orders require supplier_id")
		}
		if o.CustomerID != nil {
			violations = append(violations, "purchase orders cannot have customer_id")
		}
	case OrderSale:
		if o.CustomerID == nil {
			violations = append(violations, "sale orders require customer_id")
		}
		if o.SupplierID != nil {
			violations = append(violations, "sale orders cannot have supplier_id")
		}
	default:
		violations = append(violations, "type must be purchase or sale")
	}
	if !ValidStatus(o.Status) {
		violations = append(violations, "status is not a known order status")
	}
	if o.LocationID <= 0 {
		violations = append(violations, "location_id is required")
	}
	if len(o.Items) == 0 {
		violations = append(violations, "at least one item is required")
	}
	for i, it := range o.Items {
		for _, v := range it.Validate() {
			violations = append(violations, fmt.Sprintf("item %d: %s", i+1, v))
		}
	}
	return violations
}
