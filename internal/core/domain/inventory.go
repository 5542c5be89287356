// internal/core/domain/inventory.go
package domain

import "time"

// Inventory tracks stock for one product at one location.
type Inventory struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	LocationID    int64     `json:"location_id"`
	CurrentStock  int       `json:"current_stock"`
	ReservedStock int       `json:"reserved_stock"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AvailableStock is always derived, never stored.
func (i Inventory) AvailableStock() int {
	return i.CurrentStock - i.ReservedStock
}

// MovementType classifies an inventory movement.
type MovementType string

// Movement type constants
const (
	MovementInbound    MovementType = "inbound"
	MovementOutbound   MovementType = "outbound"
	MovementAdjustment MovementType = "adjustment"
)

// InventoryMovement is the immutable audit record of a stock change.
// Movements are append-only; they are what makes hard deletion of
// referenced products and locations unsafe.
type InventoryMovement struct {
	ID         int64        `json:"id"`
	ProductID  int64        `json:"product_id"`
	LocationID int64        `json:"location_id"`
	OrderID    *int64       `json:"order_id,omitempty"`
	Type       MovementType `json:"type"`
	Quantity   int          `json:"quantity"`
	Reference  string       `json:"reference,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Validate returns the list of violated rules.
func (m InventoryMovement) Validate() []string {
	var violations []string
	if m.ProductID <= 0 {
		violations = append(violations, "product_id is required")
	}
	if m.LocationID <= 0 {
		violations = append(violations, "location_id is required")
	}
	if m.Quantity == 0 {
		violations = append(violations, "quantity cannot be zero")
	}
	switch m.Type {
	case MovementInbound, MovementOutbound, MovementAdjustment:
	default:
		violations = append(violations, "type must be one of inbound, outbound, adjustment")
	}
	return violations
}
