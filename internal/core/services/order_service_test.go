// internal/core/services/order_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

type orderServiceMocks struct {
	repo      *mocks.MockOrderRepository
	suppliers *mocks.MockSupplierRepository
	customers *mocks.MockCustomerRepository
	locations *mocks.MockLocationRepository
	products  *mocks.MockProductRepository
	inventory *mocks.MockInventoryService
}

func newOrderService(t *testing.T) (*services.OrderService, orderServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderServiceMocks{
		repo:      mocks.NewMockOrderRepository(ctrl),
		suppliers: mocks.NewMockSupplierRepository(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		locations: mocks.NewMockLocationRepository(ctrl),
		products:  mocks.NewMockProductRepository(ctrl),
		inventory: mocks.NewMockInventoryService(ctrl),
	}
	svc := services.NewOrderService(
		m.repo, m.suppliers, m.customers, m.locations, m.products, m.inventory,
		nil, helpers.TestLogger())
	return svc, m
}

func saleOrder(id int64, status domain.OrderStatus) *domain.Order {
	customerID := int64(10)
	o := &domain.Order{
		ID:         id,
		Number:     "SO-TEST0001",
		Type:       domain.OrderSale,
		Status:     status,
		CustomerID: &customerID,
		LocationID: 1,
		Items: []domain.OrderItem{
			{ID: 1, OrderID: id, ProductID: 100, Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
		},
	}
	*o = o.Recalculate()
	return o
}

func TestOrderService_Create(t *testing.T) {
	customerID := int64(10)
	params := ports.CreateOrderParams{
		Type:       domain.OrderSale,
		CustomerID: &customerID,
		LocationID: 1,
		Items: []ports.OrderItemParams{
			{ProductID: 100, Quantity: 2, UnitPrice: decimal.RequireFromString("24.99")},
			{ProductID: 101, Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}

	t.Run("draft_created_with_recomputed_totals", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.locations.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(&domain.Location{ID: 1}, nil)
		m.customers.EXPECT().FindByID(gomock.Any(), int64(10), false).Return(&domain.Customer{ID: 10}, nil)
		m.products.EXPECT().FindByID(gomock.Any(), int64(100), false).Return(&domain.Product{ID: 100}, nil)
		m.products.EXPECT().FindByID(gomock.Any(), int64(101), false).Return(&domain.Product{ID: 101}, nil)
		m.repo.EXPECT().NumberExists(gomock.Any(), gomock.Any(), int64(0)).Return(false, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *domain.Order) error {
				o.ID = 42
				return nil
			})

		res := svc.Create(context.Background(), params)

		require.True(t, res.Success, res.ErrorMessage)
		assert.Equal(t, domain.StatusDraft, res.Data.Status)
		assert.Contains(t, res.Data.Number, "SO-")
		assert.True(t, res.Data.Total.Equal(decimal.RequireFromString("54.98")),
			"total must be 2*24.99 + 1*5.00, got %s", res.Data.Total)
	})

	t.Run("counterparty_mismatch_rejected", func(t *testing.T) {
		svc, _ := newOrderService(t)
		supplierID := int64(3)
		bad := params
		bad.SupplierID = &supplierID

		res := svc.Create(context.Background(), bad)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeValidationFailure, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "sale orders cannot have supplier_id")
	})

	t.Run("missing_product_rejected", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.locations.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(&domain.Location{ID: 1}, nil)
		m.customers.EXPECT().FindByID(gomock.Any(), int64(10), false).Return(&domain.Customer{ID: 10}, nil)
		m.products.EXPECT().FindByID(gomock.Any(), int64(100), false).Return(nil, nil)

		res := svc.Create(context.Background(), params)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeForeignKeyViolation, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "product 100")
	})
}

func TestOrderService_Update_OnlyDrafts(t *testing.T) {
	svc, m := newOrderService(t)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(saleOrder(1, domain.StatusActive), nil)

	res := svc.Update(context.Background(), 1, ports.UpdateOrderParams{
		Items: []ports.OrderItemParams{{ProductID: 100, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "only draft orders can be edited")
}

func TestOrderService_ChangeStatus(t *testing.T) {
	t.Run("activate_sale_reserves_stock", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusDraft)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.inventory.EXPECT().ReserveForOrder(gomock.Any(), gomock.Any()).Return(ports.OkUnit())
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusActive).Return(nil)

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusActive)

		require.True(t, res.Success, res.ErrorMessage)
		assert.Equal(t, domain.StatusActive, res.Data.Status)
	})

	t.Run("insufficient_stock_blocks_activation", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusDraft)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.inventory.EXPECT().ReserveForOrder(gomock.Any(), gomock.Any()).
			Return(ports.Fail[ports.Unit](ports.CodeConstraintViolation, "product 100 at location 1: insufficient stock"))

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusActive)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "insufficient stock")
	})

	t.Run("fulfill_applies_stock_consequences", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusActive)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.inventory.EXPECT().FulfillOrder(gomock.Any(), gomock.Any()).Return(ports.OkUnit())
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusFulfilled).Return(nil)

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusFulfilled)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("cancel_active_sale_releases_reservation", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusActive)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.inventory.EXPECT().ReleaseForOrder(gomock.Any(), gomock.Any()).Return(ports.OkUnit())
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusCancelled).Return(nil)

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusCancelled)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("cancel_draft_touches_no_stock", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusDraft)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusCancelled).Return(nil)

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusCancelled)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("illegal_transition_rejected_before_side_effects", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusFulfilled)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		// No inventory nor UpdateStatus expectations: nothing else may run.

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusCancelled)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeValidationFailure, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "inventory already adjusted")
	})

	t.Run("reservation_released_when_status_write_fails", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := saleOrder(1, domain.StatusDraft)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(order, nil)
		m.inventory.EXPECT().ReserveForOrder(gomock.Any(), gomock.Any()).Return(ports.OkUnit())
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusActive).
			Return(assert.AnError)
		m.inventory.EXPECT().ReleaseForOrder(gomock.Any(), gomock.Any()).Return(ports.OkUnit())

		res := svc.ChangeStatus(context.Background(), 1, domain.StatusActive)
		require.False(t, res.Success)
	})
}

func TestOrderService_SoftDelete_BlockedWhileHoldingInventory(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.OrderStatus
		blocked bool
	}{
		{name: "draft_deletable", status: domain.StatusDraft},
		{name: "cancelled_deletable", status: domain.StatusCancelled},
		{name: "completed_deletable", status: domain.StatusCompleted},
		{name: "active_blocked", status: domain.StatusActive, blocked: true},
		{name: "fulfilled_blocked", status: domain.StatusFulfilled, blocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			m.repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(saleOrder(1, tt.status), nil)
			if !tt.blocked {
				m.repo.EXPECT().SoftDelete(gomock.Any(), int64(1), gomock.Any()).Return(nil)
			}

			res := svc.SoftDelete(context.Background(), 1)

			if tt.blocked {
				require.False(t, res.Success)
				assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
			} else {
				require.True(t, res.Success, res.ErrorMessage)
			}
		})
	}
}

func TestOrderService_CachedReads(t *testing.T) {
	svc, m := newOrderService(t)
	orders := []domain.Order{
		*saleOrder(1, domain.StatusDraft),
		*saleOrder(2, domain.StatusActive),
		*saleOrder(3, domain.StatusActive),
	}
	m.repo.EXPECT().FindAll(gomock.Any(), false).Return(orders, nil)
	require.True(t, svc.GetAllActive(context.Background()).Success)

	active := svc.CachedByStatus(domain.StatusActive)
	require.Len(t, active, 2)
	assert.Equal(t, int64(2), active[0].ID)

	assert.Len(t, svc.CachedByType(domain.OrderSale), 3)
	assert.Empty(t, svc.CachedByType(domain.OrderPurchase))
	assert.Equal(t, 3, svc.CachedCount())
}
