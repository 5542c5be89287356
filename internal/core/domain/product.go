// internal/core/domain/product.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product.
type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   int64           `json:"category_id"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderLevel int             `json:"reorder_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the product has been soft deleted.
func (p Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

// WithDetails derives a copy with updated descriptive fields.
func (p Product) WithDetails(name, description string, categoryID int64) Product {
	p.Name = name
	p.Description = description
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	return p
}

// WithPricing derives a copy with updated price and cost.
func (p Product) WithPricing(unitPrice, unitCost decimal.Decimal) Product {
	p.UnitPrice = unitPrice
	p.UnitCost = unitCost
	p.UpdatedAt = time.Now()
	return p
}

// AsDeleted derives a soft-deleted copy.
func (p Product) AsDeleted(at time.Time) Product {
	p.DeletedAt = &at
	p.UpdatedAt = at
	return p
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (p Product) AsRestored() Product {
	p.DeletedAt = nil
	p.UpdatedAt = time.Now()
	return p
}

// Validate returns the list of violated rules.
func (p Product) Validate() []string {
	var violations []string
	if p.SKU == "" {
		violations = append(violations, "sku is required")
	}
	if p.Name == "" {
		violations = append(violations, "name is required")
	}
	if p.CategoryID <= 0 {
		violations = append(violations, "category_id is required")
	}
	if p.UnitPrice.IsNegative() {
		violations = append(violations, "unit_price cannot be negative")
	}
	if p.UnitCost.IsNegative() {
		violations = append(violations, "unit_cost cannot be negative")
	}
	if p.ReorderLevel < 0 {
		violations = append(violations, "reorder_level cannot be negative")
	}
	return violations
}
