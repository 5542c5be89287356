//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/test/helpers"
)

type OrderRepositorySuite struct {
	suite.Suite
	testDB     *helpers.TestDB
	repo       ports.OrderRepository
	products   ports.ProductRepository
	categories ports.CategoryRepository
	locations  ports.LocationRepository
	suppliers  ports.SupplierRepository
	ctx        context.Context

	supplierID int64
	locationID int64
	productID  int64
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.repo = db.NewOrderRepository(s.testDB.Database, logger)
	s.products = db.NewProductRepository(s.testDB.Database, logger)
	s.categories = db.NewCategoryRepository(s.testDB.Database, logger)
	s.locations = db.NewLocationRepository(s.testDB.Database, logger)
	s.suppliers = db.NewSupplierRepository(s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *OrderRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	category := helpers.CreateTestCategory()
	s.Require().NoError(s.categories.Save(s.ctx, category))

	product := helpers.CreateTestProduct(category.ID)
	s.Require().NoError(s.products.Save(s.ctx, product))
	s.productID = product.ID

	location := helpers.CreateTestLocation()
	s.Require().NoError(s.locations.Save(s.ctx, location))
	s.locationID = location.ID

	supplier := helpers.CreateTestSupplier()
	s.Require().NoError(s.suppliers.Save(s.ctx, supplier))
	s.supplierID = supplier.ID
}

func (s *OrderRepositorySuite) newOrder() *domain.Order {
	return helpers.CreateTestOrder(domain.OrderPurchase, s.supplierID, s.locationID, s.productID)
}

func (s *OrderRepositorySuite) TestSavePersistsHeaderAndItems() {
	order := s.newOrder()

	s.Require().NoError(s.repo.Save(s.ctx, order))
	s.NotZero(order.ID)
	s.Require().Len(order.Items, 1)
	s.NotZero(order.Items[0].ID)
	s.Equal(order.ID, order.Items[0].OrderID)

	found, err := s.repo.FindByID(s.ctx, order.ID, false)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(order.Number, found.Number)
	s.Require().Len(found.Items, 1)
	s.Equal(s.productID, found.Items[0].ProductID)
	s.True(found.Total.Equal(decimal.NewFromFloat(49.98)))
}

func (s *OrderRepositorySuite) TestSaveRejectsMissingCounterparty() {
	order := s.newOrder()
	order.SupplierID = nil

	err := s.repo.Save(s.ctx, order)
	s.Require().Error(err)

	var pgErr *pgconn.PgError
	s.Require().True(errors.As(err, &pgErr))
	// check_violation from the counterparty constraint
	s.Equal("23514", pgErr.Code)

	// The failed transaction must leave nothing behind.
	orders, err := s.repo.FindAll(s.ctx, true)
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *OrderRepositorySuite) TestSaveRejectsDuplicateNumber() {
	first := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, first))

	second := s.newOrder()
	err := s.repo.Save(s.ctx, second)
	s.Require().Error(err)

	var pgErr *pgconn.PgError
	s.Require().True(errors.As(err, &pgErr))
	s.Equal("23505", pgErr.Code)
}

func (s *OrderRepositorySuite) TestUpdateReplacesItems() {
	order := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, order))
	firstItemID := order.Items[0].ID

	updated := order.WithItems([]domain.OrderItem{
		{ProductID: s.productID, Quantity: 5, UnitPrice: decimal.NewFromFloat(19.99)},
	})
	s.Require().NoError(s.repo.Update(s.ctx, &updated))

	found, err := s.repo.FindByID(s.ctx, order.ID, false)
	s.Require().NoError(err)
	s.Require().Len(found.Items, 1)
	s.NotEqual(firstItemID, found.Items[0].ID)
	s.Equal(5, found.Items[0].Quantity)
	s.True(found.Total.Equal(decimal.NewFromFloat(99.95)))
}

func (s *OrderRepositorySuite) TestUpdateStatus() {
	order := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, order))

	s.Require().NoError(s.repo.UpdateStatus(s.ctx, order.ID, domain.StatusActive))

	found, err := s.repo.FindByID(s.ctx, order.ID, false)
	s.Require().NoError(err)
	s.Equal(domain.StatusActive, found.Status)
}

func (s *OrderRepositorySuite) TestUpdateStatusMissingOrder() {
	err := s.repo.UpdateStatus(s.ctx, 9999, domain.StatusActive)
	s.Require().Error(err)
	s.True(errors.Is(err, pgx.ErrNoRows))
}

func (s *OrderRepositorySuite) TestSoftDeleteHidesFromActiveReads() {
	order := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, order))

	s.Require().NoError(s.repo.SoftDelete(s.ctx, order.ID, time.Now()))

	found, err := s.repo.FindByID(s.ctx, order.ID, false)
	s.Require().NoError(err)
	s.Nil(found)

	found, err = s.repo.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.True(found.IsDeleted())

	// A tombstoned number is free for reuse.
	exists, err := s.repo.NumberExists(s.ctx, order.Number, 0)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *OrderRepositorySuite) TestTombstonedNumberIsReusable() {
	first := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, first))
	s.Require().NoError(s.repo.SoftDelete(s.ctx, first.ID, time.Now()))

	// Same number, new active order. The unique index only covers
	// active rows, so this insert succeeds.
	second := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, second))
	s.NotEqual(first.ID, second.ID)

	// Restoring the tombstone would put two active rows on the same
	// number, which the index rejects.
	err := s.repo.Restore(s.ctx, first.ID)
	s.Require().Error(err)

	var pgErr *pgconn.PgError
	s.Require().True(errors.As(err, &pgErr))
	s.Equal("23505", pgErr.Code)
}

func (s *OrderRepositorySuite) TestRestoreRequiresTombstone() {
	order := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, order))

	err := s.repo.Restore(s.ctx, order.ID)
	s.Require().Error(err)
	s.True(errors.Is(err, pgx.ErrNoRows))

	s.Require().NoError(s.repo.SoftDelete(s.ctx, order.ID, time.Now()))
	s.Require().NoError(s.repo.Restore(s.ctx, order.ID))

	found, err := s.repo.FindByID(s.ctx, order.ID, false)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.False(found.IsDeleted())
}

func (s *OrderRepositorySuite) TestDeleteRemovesItems() {
	order := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, order))

	s.Require().NoError(s.repo.Delete(s.ctx, order.ID))

	found, err := s.repo.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Nil(found)

	var count int
	err = s.testDB.PgxPool.QueryRow(s.ctx, "SELECT COUNT(*) FROM order_items").Scan(&count)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *OrderRepositorySuite) TestListFiltersByStatus() {
	draft := s.newOrder()
	s.Require().NoError(s.repo.Save(s.ctx, draft))

	active := helpers.CreateTestOrder(domain.OrderPurchase, s.supplierID, s.locationID, s.productID, func(o *domain.Order) {
		o.Number = "PO-TEST0002"
	})
	s.Require().NoError(s.repo.Save(s.ctx, active))
	s.Require().NoError(s.repo.UpdateStatus(s.ctx, active.ID, domain.StatusActive))

	orders, total, err := s.repo.List(s.ctx, ports.OrderListParams{
		PageParams: ports.PageParams{Page: 1, PageSize: 10},
		Status:     domain.StatusActive,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(orders, 1)
	s.Equal(active.ID, orders[0].ID)
	s.Len(orders[0].Items, 1)
}

func TestOrderRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositorySuite))
}
