// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests and
// runs the embedded migrations against it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_stockroom",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_stockroom",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_stockroom",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:                "localhost",
			Port:                "6379",
			DB:                  0,
			PoolSize:            10,
			InvalidationChannel: "test:invalidate",
		},
		Security: config.SecurityConfig{
			BcryptCost:        4,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestUser creates a test user
func CreateTestUser(overrides ...func(*domain.User)) *domain.User {
	now := time.Now()
	user := &domain.User{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		FullName:     "Jane Doe",
		Role:         domain.RoleClerk,
		PasswordHash: "$2a$04$testhashtesthashtesthash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateTestCategory creates a test category
func CreateTestCategory(overrides ...func(*domain.Category)) *domain.Category {
	now := time.Now()
	category := &domain.Category{
		Name:        "Electronics",
		Description: "Consumer electronics",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, override := range overrides {
		override(category)
	}
	return category
}

// CreateTestProduct creates a test product. The CategoryID must point
// at a persisted category before saving.
func CreateTestProduct(categoryID int64, overrides ...func(*domain.Product)) *domain.Product {
	now := time.Now()
	product := &domain.Product{
		SKU:          "SKU-0001",
		Name:         "Wireless Mouse",
		Description:  "Two-button wireless mouse",
		CategoryID:   categoryID,
		UnitPrice:    decimal.NewFromFloat(24.99),
		UnitCost:     decimal.NewFromFloat(11.50),
		ReorderLevel: 5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, override := range overrides {
		override(product)
	}
	return product
}

// CreateTestLocation creates a test location
func CreateTestLocation(overrides ...func(*domain.Location)) *domain.Location {
	now := time.Now()
	location := &domain.Location{
		Name:      "Main Warehouse",
		Address:   "1 Depot Road",
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, override := range overrides {
		override(location)
	}
	return location
}

// CreateTestSupplier creates a test supplier
func CreateTestSupplier(overrides ...func(*domain.Supplier)) *domain.Supplier {
	now := time.Now()
	supplier := &domain.Supplier{
		Name:        "Acme Wholesale",
		ContactName: "Sam Smith",
		Email:       "sales@acme.example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, override := range overrides {
		override(supplier)
	}
	return supplier
}

// CreateTestCustomer creates a test customer
func CreateTestCustomer(overrides ...func(*domain.Customer)) *domain.Customer {
	now := time.Now()
	customer := &domain.Customer{
		Name:      "Blue Retail Co",
		Email:     "orders@blueretail.example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, override := range overrides {
		override(customer)
	}
	return customer
}

// CreateTestOrder creates a draft test order referencing the given
// counterparty, location, and product.
func CreateTestOrder(orderType domain.OrderType, partnerID, locationID, productID int64, overrides ...func(*domain.Order)) *domain.Order {
	now := time.Now()
	order := domain.Order{
		Number:     "PO-TEST0001",
		Type:       orderType,
		Status:     domain.StatusDraft,
		LocationID: locationID,
		Items: []domain.OrderItem{
			{ProductID: productID, Quantity: 2, UnitPrice: decimal.NewFromFloat(24.99)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if orderType == domain.OrderPurchase {
		order.SupplierID = &partnerID
	} else {
		order.Number = "SO-TEST0001"
		order.CustomerID = &partnerID
	}
	order = order.Recalculate()

	for _, override := range overrides {
		override(&order)
	}
	return &order
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"inventory_movements",
		"inventory",
		"order_items",
		"orders",
		"products",
		"locations",
		"customers",
		"suppliers",
		"categories",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
