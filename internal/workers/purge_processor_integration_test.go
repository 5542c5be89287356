//go:build integration
// +build integration

package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/workers"
	"github.com/acardosi/stockroom-be/test/helpers"
)

type PurgeProcessorSuite struct {
	suite.Suite
	testDB    *helpers.TestDB
	processor *workers.PurgeProcessor
	orders    ports.OrderRepository
	users     ports.UserRepository
	inventory ports.InventoryRepository
	ctx       context.Context

	supplierID int64
	locationID int64
	productID  int64
}

func (s *PurgeProcessorSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()

	cfg := helpers.LoadTestConfig()
	cfg.Asynq.PurgeRetention = 24 * time.Hour

	s.processor = workers.NewPurgeProcessor(s.testDB.Database, cfg, logger)
	s.orders = db.NewOrderRepository(s.testDB.Database, logger)
	s.users = db.NewUserRepository(s.testDB.Database, logger)
	s.inventory = db.NewInventoryRepository(s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *PurgeProcessorSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	logger := helpers.TestLogger()
	categories := db.NewCategoryRepository(s.testDB.Database, logger)
	products := db.NewProductRepository(s.testDB.Database, logger)
	locations := db.NewLocationRepository(s.testDB.Database, logger)
	suppliers := db.NewSupplierRepository(s.testDB.Database, logger)

	category := helpers.CreateTestCategory()
	s.Require().NoError(categories.Save(s.ctx, category))

	product := helpers.CreateTestProduct(category.ID)
	s.Require().NoError(products.Save(s.ctx, product))
	s.productID = product.ID

	location := helpers.CreateTestLocation()
	s.Require().NoError(locations.Save(s.ctx, location))
	s.locationID = location.ID

	supplier := helpers.CreateTestSupplier()
	s.Require().NoError(suppliers.Save(s.ctx, supplier))
	s.supplierID = supplier.ID
}

func (s *PurgeProcessorSuite) runPurge() {
	err := s.processor.PurgeTombstones(s.ctx, workers.NewPurgeTombstonesTask())
	s.Require().NoError(err)
}

func (s *PurgeProcessorSuite) TestPurgeRemovesExpiredTombstones() {
	order := helpers.CreateTestOrder(domain.OrderPurchase, s.supplierID, s.locationID, s.productID)
	s.Require().NoError(s.orders.Save(s.ctx, order))
	s.Require().NoError(s.orders.SoftDelete(s.ctx, order.ID, time.Now().Add(-48*time.Hour)))

	s.runPurge()

	found, err := s.orders.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *PurgeProcessorSuite) TestPurgeKeepsFreshTombstones() {
	order := helpers.CreateTestOrder(domain.OrderPurchase, s.supplierID, s.locationID, s.productID)
	s.Require().NoError(s.orders.Save(s.ctx, order))
	s.Require().NoError(s.orders.SoftDelete(s.ctx, order.ID, time.Now()))

	s.runPurge()

	found, err := s.orders.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.True(found.IsDeleted())
}

func (s *PurgeProcessorSuite) TestPurgeSkipsOrderWithMovementHistory() {
	order := helpers.CreateTestOrder(domain.OrderPurchase, s.supplierID, s.locationID, s.productID)
	s.Require().NoError(s.orders.Save(s.ctx, order))

	// A fulfilled order leaves movement rows behind.
	s.Require().NoError(s.inventory.SaveMovement(s.ctx, &domain.InventoryMovement{
		ProductID:  s.productID,
		LocationID: s.locationID,
		OrderID:    &order.ID,
		Type:       domain.MovementInbound,
		Quantity:   5,
		Reference:  order.Number,
	}))
	s.Require().NoError(s.orders.SoftDelete(s.ctx, order.ID, time.Now().Add(-48*time.Hour)))

	// An unrelated tombstone further down the table list.
	user := helpers.CreateTestUser()
	s.Require().NoError(s.users.Save(s.ctx, user))
	s.Require().NoError(s.users.SoftDelete(s.ctx, user.ID, time.Now().Add(-48*time.Hour)))

	s.runPurge()

	// The referenced order waits, items intact, and the run still
	// reaches the tables after it.
	found, err := s.orders.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Len(found.Items, 1)

	gone, err := s.users.FindByID(s.ctx, user.ID, true)
	s.Require().NoError(err)
	s.Nil(gone)

	// Once the movement history is gone the next run collects it.
	_, err = s.testDB.PgxPool.Exec(s.ctx, "DELETE FROM inventory_movements WHERE order_id = $1", order.ID)
	s.Require().NoError(err)

	s.runPurge()

	found, err = s.orders.FindByID(s.ctx, order.ID, true)
	s.Require().NoError(err)
	s.Nil(found)
}

func TestPurgeProcessorSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PurgeProcessorSuite))
}
