// internal/core/domain/order_test.go
package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

func TestCanTransition(t *testing.T) {
	allowed := map[domain.OrderStatus][]domain.OrderStatus{
		domain.StatusDraft:     {domain.StatusActive, domain.StatusCancelled},
		domain.StatusActive:    {domain.StatusFulfilled, domain.StatusCancelled},
		domain.StatusFulfilled: {domain.StatusCompleted},
		domain.StatusCompleted: {},
		domain.StatusCancelled: {},
	}
	all := []domain.OrderStatus{
		domain.StatusDraft, domain.StatusActive, domain.StatusFulfilled,
		domain.StatusCompleted, domain.StatusCancelled,
	}

	for from, tos := range allowed {
		legal := make(map[domain.OrderStatus]bool)
		for _, to := range tos {
			legal[to] = true
		}
		for _, to := range all {
			got := domain.CanTransition(from, to)
			assert.Equal(t, legal[to], got, "%s -> %s", from, to)
			if legal[to] {
				assert.NoError(t, domain.TransitionError(from, to))
			} else {
				assert.Error(t, domain.TransitionError(from, to))
			}
		}
	}
}

func TestTransitionError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		from, to domain.OrderStatus
		contains string
	}{
		{"fulfilled_cannot_revert", domain.StatusFulfilled, domain.StatusActive, "inventory already adjusted"},
		{"completed_is_terminal", domain.StatusCompleted, domain.StatusActive, "final"},
		{"cancelled_is_terminal", domain.StatusCancelled, domain.StatusDraft, "final"},
		{"draft_cannot_skip_to_fulfilled", domain.StatusDraft, domain.StatusFulfilled, "activated"},
		{"active_cannot_skip_to_completed", domain.StatusActive, domain.StatusCompleted, "fulfilled"},
		{"unknown_status", domain.StatusDraft, domain.OrderStatus("shipped"), "unknown order status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.TransitionError(tt.from, tt.to)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestOrderItem_Recalculate_IgnoresSuppliedTotal(t *testing.T) {
	item := domain.OrderItem{
		ProductID:  1,
		Quantity:   3,
		UnitPrice:  decimal.NewFromFloat(10.00),
		TotalPrice: decimal.NewFromFloat(999.99), // supplied total is never trusted
	}

	got := item.Recalculate()
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromFloat(30.00)),
		"expected 30.00, got %s", got.TotalPrice)
}

func TestOrder_Recalculate(t *testing.T) {
	customerID := int64(7)
	order := domain.Order{
		Type:       domain.OrderSale,
		Status:     domain.StatusDraft,
		CustomerID: &customerID,
		LocationID: 5,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(10.00)},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(5.00)},
		},
	}

	got := order.Recalculate()
	require.Len(t, got.Items, 2)
	assert.True(t, got.Items[0].TotalPrice.Equal(decimal.NewFromFloat(20.00)))
	assert.True(t, got.Items[1].TotalPrice.Equal(decimal.NewFromFloat(5.00)))
	assert.True(t, got.Total.Equal(decimal.NewFromFloat(25.00)),
		"expected 25.00, got %s", got.Total)
	assert.Empty(t, got.Validate())
}

func TestOrder_Validate_CounterpartyExclusivity(t *testing.T) {
	supplierID := int64(3)
	customerID := int64(7)

	tests := []struct {
		name     string
		mutate   func(*domain.Order)
		contains string
	}{
		{
			name:     "purchase_requires_supplier",
			mutate:   func(o *domain.Order) { o.Type = domain.OrderPurchase; o.SupplierID = nil },
			contains: "require supplier_id",
		},
		{
			name: "purchase_rejects_customer",
			mutate: func(o *domain.Order) {
				o.Type = domain.OrderPurchase
				o.SupplierID = &supplierID
				o.CustomerID = &customerID
			},
			contains: "cannot have customer_id",
		},
		{
			name:     "sale_requires_customer",
			mutate:   func(o *domain.Order) { o.CustomerID = nil },
			contains: "require customer_id",
		},
		{
			name: "sale_rejects_supplier",
			mutate: func(o *domain.Order) {
				o.SupplierID = &supplierID
			},
			contains: "cannot have supplier_id",
		},
		{
			name:     "zero_quantity_item",
			mutate:   func(o *domain.Order) { o.Items[0].Quantity = 0 },
			contains: "quantity must be positive",
		},
		{
			name:     "no_items",
			mutate:   func(o *domain.Order) { o.Items = nil },
			contains: "at least one item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cid := customerID
			order := domain.Order{
				Type:       domain.OrderSale,
				Status:     domain.StatusDraft,
				CustomerID: &cid,
				LocationID: 5,
				Items: []domain.OrderItem{
					{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
				},
			}
			tt.mutate(&order)

			violations := order.Validate()
			require.NotEmpty(t, violations)
			assert.Contains(t, strings.Join(violations, "; "), tt.contains)
		})
	}
}

func TestOrder_SoftDeleteCopies(t *testing.T) {
	customerID := int64(7)
	order := domain.Order{
		ID:         42,
		Type:       domain.OrderSale,
		Status:     domain.StatusDraft,
		CustomerID: &customerID,
		LocationID: 5,
	}

	now := time.Now()
	deleted := order.AsDeleted(now)
	assert.True(t, deleted.IsDeleted())
	assert.False(t, order.IsDeleted(), "original must be untouched")

	restored := deleted.AsRestored()
	assert.False(t, restored.IsDeleted())
	assert.True(t, deleted.IsDeleted(), "deleted copy must be untouched")
}
