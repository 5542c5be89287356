// internal/core/services/inventory_service_test.go
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

func newInventoryService(t *testing.T) (*services.InventoryService, *mocks.MockInventoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	return services.NewInventoryService(repo, helpers.TestLogger()), repo
}

func twoLineSaleOrder() domain.Order {
	customerID := int64(7)
	o := domain.Order{
		ID:         20,
		Number:     "SO-AAAA1111",
		Type:       domain.OrderSale,
		Status:     domain.StatusActive,
		CustomerID: &customerID,
		LocationID: 2,
		Items: []domain.OrderItem{
			{ProductID: 100, Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
			{ProductID: 101, Quantity: 1, UnitPrice: decimal.NewFromInt(4)},
		},
	}
	return o.Recalculate()
}

func TestInventoryService_GetStock(t *testing.T) {
	t.Run("derives_available_stock", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		repo.EXPECT().FindByProductLocation(gomock.Any(), int64(100), int64(2)).
			Return(&domain.Inventory{ProductID: 100, LocationID: 2, CurrentStock: 8, ReservedStock: 3}, nil)

		res := svc.GetStock(context.Background(), 100, 2)

		require.True(t, res.Success, res.ErrorMessage)
		assert.Equal(t, 5, res.Data.AvailableStock)
	})

	t.Run("missing_row_not_found", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		repo.EXPECT().FindByProductLocation(gomock.Any(), int64(100), int64(2)).Return(nil, nil)

		res := svc.GetStock(context.Background(), 100, 2)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeNotFound, res.ErrorCode)
	})
}

func TestInventoryService_AdjustStock(t *testing.T) {
	t.Run("positive_adjustment_upserts_and_records_movement", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().AdjustStock(gomock.Any(), int64(100), int64(2), 5).Return(nil)
		repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, m *domain.InventoryMovement) error {
				assert.Equal(t, domain.MovementAdjustment, m.Type)
				assert.Equal(t, 5, m.Quantity)
				assert.Equal(t, "stocktake", m.Reference)
				assert.Nil(t, m.OrderID)
				return nil
			})
		repo.EXPECT().FindByProductLocation(gomock.Any(), int64(100), int64(2)).
			Return(&domain.Inventory{ProductID: 100, LocationID: 2, CurrentStock: 5}, nil)

		res := svc.AdjustStock(context.Background(), 100, 2, 5, "stocktake")

		require.True(t, res.Success, res.ErrorMessage)
		assert.Equal(t, 5, res.Data.AvailableStock)
	})

	t.Run("negative_adjustment_guarded", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		repo.EXPECT().AdjustStock(gomock.Any(), int64(100), int64(2), -10).
			Return(ports.ErrInsufficientStock)

		res := svc.AdjustStock(context.Background(), 100, 2, -10, "shrinkage")

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "product 100 at location 2")
	})

	t.Run("zero_delta_rejected", func(t *testing.T) {
		svc, _ := newInventoryService(t)

		res := svc.AdjustStock(context.Background(), 100, 2, 0, "noop")

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeInvalidInput, res.ErrorCode)
	})
}

func TestInventoryService_ReserveForOrder(t *testing.T) {
	t.Run("reserves_every_line", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		order := twoLineSaleOrder()
		repo.EXPECT().Reserve(gomock.Any(), int64(100), int64(2), 3).Return(nil)
		repo.EXPECT().Reserve(gomock.Any(), int64(101), int64(2), 1).Return(nil)

		res := svc.ReserveForOrder(context.Background(), order)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("failure_rolls_back_earlier_holds", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		order := twoLineSaleOrder()
		repo.EXPECT().Reserve(gomock.Any(), int64(100), int64(2), 3).Return(nil)
		repo.EXPECT().Reserve(gomock.Any(), int64(101), int64(2), 1).Return(ports.ErrInsufficientStock)
		repo.EXPECT().Release(gomock.Any(), int64(100), int64(2), 3).Return(nil)

		res := svc.ReserveForOrder(context.Background(), order)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "product 101 at location 2")
	})

	t.Run("purchase_orders_reserve_nothing", func(t *testing.T) {
		svc, _ := newInventoryService(t)
		supplierID := int64(5)
		order := domain.Order{Type: domain.OrderPurchase, SupplierID: &supplierID, LocationID: 2,
			Items: []domain.OrderItem{{ProductID: 100, Quantity: 3}}}

		res := svc.ReserveForOrder(context.Background(), order)
		require.True(t, res.Success)
	})
}

func TestInventoryService_FulfillOrder(t *testing.T) {
	t.Run("sale_decrements_releases_and_records_outbound", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		order := twoLineSaleOrder()

		for _, it := range order.Items {
			repo.EXPECT().Release(gomock.Any(), it.ProductID, int64(2), it.Quantity).Return(nil)
			repo.EXPECT().AdjustStock(gomock.Any(), it.ProductID, int64(2), -it.Quantity).Return(nil)
		}
		repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(ctx context.Context, m *domain.InventoryMovement) error {
				assert.Equal(t, domain.MovementOutbound, m.Type)
				require.NotNil(t, m.OrderID)
				assert.Equal(t, int64(20), *m.OrderID)
				assert.Equal(t, "SO-AAAA1111", m.Reference)
				return nil
			})

		res := svc.FulfillOrder(context.Background(), order)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("purchase_increments_and_records_inbound", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		supplierID := int64(5)
		order := domain.Order{
			ID: 30, Number: "PO-BBBB2222", Type: domain.OrderPurchase, Status: domain.StatusActive,
			SupplierID: &supplierID, LocationID: 4,
			Items: []domain.OrderItem{{ProductID: 200, Quantity: 12, UnitPrice: decimal.NewFromInt(3)}},
		}

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().AdjustStock(gomock.Any(), int64(200), int64(4), 12).Return(nil)
		repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, m *domain.InventoryMovement) error {
				assert.Equal(t, domain.MovementInbound, m.Type)
				assert.Equal(t, 12, m.Quantity)
				return nil
			})

		res := svc.FulfillOrder(context.Background(), order)
		require.True(t, res.Success, res.ErrorMessage)
	})

	t.Run("guarded_failure_stops_fulfillment", func(t *testing.T) {
		svc, repo := newInventoryService(t)
		order := twoLineSaleOrder()
		repo.EXPECT().Release(gomock.Any(), int64(100), int64(2), 3).Return(nil)
		repo.EXPECT().AdjustStock(gomock.Any(), int64(100), int64(2), -3).
			Return(ports.ErrInsufficientStock)

		res := svc.FulfillOrder(context.Background(), order)

		require.False(t, res.Success)
		assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
	})
}

func TestInventoryService_ReleaseForOrder(t *testing.T) {
	svc, repo := newInventoryService(t)
	order := twoLineSaleOrder()
	repo.EXPECT().Release(gomock.Any(), int64(100), int64(2), 3).Return(nil)
	repo.EXPECT().Release(gomock.Any(), int64(101), int64(2), 1).Return(nil)

	res := svc.ReleaseForOrder(context.Background(), order)
	require.True(t, res.Success, res.ErrorMessage)
}
