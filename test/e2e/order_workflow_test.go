//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	redis_a "github.com/acardosi/stockroom-be/internal/adapters/redis_adapter"
	"github.com/acardosi/stockroom-be/internal/adapters/security"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/internal/handlers"
	"github.com/acardosi/stockroom-be/test/helpers"
)

type OrderWorkflowSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis

	categoryID int64
	supplierID int64
	customerID int64
	locationID int64
	productID  int64
}

func (s *OrderWorkflowSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *OrderWorkflowSuite) TearDownSuite() {
	s.server.Close()
}

func (s *OrderWorkflowSuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	database := s.testDB.Database

	invalidator := redis_a.NewInvalidator(s.testRedis.Client, "test:invalidate", logger)

	userRepo := db.NewUserRepository(database, logger)
	categoryRepo := db.NewCategoryRepository(database, logger)
	productRepo := db.NewProductRepository(database, logger)
	locationRepo := db.NewLocationRepository(database, logger)
	supplierRepo := db.NewSupplierRepository(database, logger)
	customerRepo := db.NewCustomerRepository(database, logger)
	inventoryRepo := db.NewInventoryRepository(database, logger)
	orderRepo := db.NewOrderRepository(database, logger)

	hasher := security.NewBcryptHasher(4)

	userService := services.NewUserService(userRepo, hasher, invalidator, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	productService := services.NewProductService(productRepo, categoryRepo, inventoryRepo, invalidator, logger)
	locationService := services.NewLocationService(locationRepo, invalidator, logger)
	supplierService := services.NewSupplierService(supplierRepo, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, logger)
	orderService := services.NewOrderService(
		orderRepo, supplierRepo, customerRepo, locationRepo, productRepo,
		inventoryService, invalidator, logger)

	healthHandler := handlers.NewHealthHandler(database, s.testRedis.Client, nil, map[string]handlers.StoreCounter{
		"users":    userService,
		"products": productService,
		"orders":   orderService,
	}, helpers.LoadTestConfig(), logger)

	userHandler := handlers.NewUserHandler(userService, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	locationHandler := handlers.NewLocationHandler(locationService, logger)
	supplierHandler := handlers.NewSupplierHandler(supplierService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users", userHandler.Create)
	mux.HandleFunc("DELETE /api/v1/users/{id}", userHandler.Delete)
	mux.HandleFunc("POST /api/v1/users/{id}/restore", userHandler.Restore)
	mux.HandleFunc("POST /api/v1/categories", categoryHandler.Create)
	mux.HandleFunc("POST /api/v1/suppliers", supplierHandler.Create)
	mux.HandleFunc("POST /api/v1/customers", customerHandler.Create)
	mux.HandleFunc("POST /api/v1/locations", locationHandler.Create)
	mux.HandleFunc("POST /api/v1/products", productHandler.Create)
	mux.HandleFunc("GET /api/v1/inventory/{productID}/{locationID}", inventoryHandler.GetStock)
	mux.HandleFunc("POST /api/v1/inventory/adjust", inventoryHandler.AdjustStock)
	mux.HandleFunc("POST /api/v1/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.Get)
	mux.HandleFunc("POST /api/v1/orders/{id}/status", orderHandler.ChangeStatus)
	mux.HandleFunc("DELETE /api/v1/orders/{id}", orderHandler.Delete)
	mux.HandleFunc("GET /health", healthHandler.Health)

	return httptest.NewServer(mux)
}

func (s *OrderWorkflowSuite) makeRequest(method, path string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *OrderWorkflowSuite) decodeID(resp *http.Response) int64 {
	defer resp.Body.Close()
	var payload struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Require().NotZero(payload.ID)
	return payload.ID
}

func (s *OrderWorkflowSuite) Test01_SetupCatalog() {
	resp := s.makeRequest("POST", "/categories", map[string]any{
		"name": "Beverages", "description": "drinks",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.categoryID = s.decodeID(resp)

	resp = s.makeRequest("POST", "/suppliers", map[string]any{
		"name": "Acme Wholesale", "contact_name": "Jo Acme",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.supplierID = s.decodeID(resp)

	resp = s.makeRequest("POST", "/customers", map[string]any{
		"name": "Corner Cafe",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.customerID = s.decodeID(resp)

	resp = s.makeRequest("POST", "/locations", map[string]any{
		"name": "Warehouse A", "address": "1 Dock Rd",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.locationID = s.decodeID(resp)

	resp = s.makeRequest("POST", "/products", map[string]any{
		"sku":           "BEV-100",
		"name":          "Cola 330ml",
		"category_id":   s.categoryID,
		"supplier_id":   s.supplierID,
		"unit_price":    "0.90",
		"unit_cost":     "0.40",
		"reorder_level": 24,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.productID = s.decodeID(resp)
}

func (s *OrderWorkflowSuite) Test02_StockInbound() {
	resp := s.makeRequest("POST", "/inventory/adjust", map[string]any{
		"product_id":  s.productID,
		"location_id": s.locationID,
		"delta":       50,
		"reference":   "initial delivery",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	level := s.getStock()
	s.Equal(50, level.CurrentStock)
	s.Equal(50, level.AvailableStock)
}

func (s *OrderWorkflowSuite) Test03_SaleOrderLifecycle() {
	resp := s.makeRequest("POST", "/orders", map[string]any{
		"type":        "sale",
		"customer_id": s.customerID,
		"location_id": s.locationID,
		"items": []map[string]any{
			{"product_id": s.productID, "quantity": 30, "unit_price": "0.90"},
		},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	orderID := s.decodeID(resp)

	// Activation reserves stock.
	resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": "active"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	level := s.getStock()
	s.Equal(50, level.CurrentStock)
	s.Equal(30, level.ReservedStock)
	s.Equal(20, level.AvailableStock)

	// Fulfilment ships the goods and drops the hold.
	resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": "fulfilled"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	level = s.getStock()
	s.Equal(20, level.CurrentStock)
	s.Equal(0, level.ReservedStock)

	resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": "completed"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Completed orders cannot move backwards.
	resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": "draft"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *OrderWorkflowSuite) Test04_Overselling() {
	resp := s.makeRequest("POST", "/orders", map[string]any{
		"type":        "sale",
		"customer_id": s.customerID,
		"location_id": s.locationID,
		"items": []map[string]any{
			{"product_id": s.productID, "quantity": 500, "unit_price": "0.90"},
		},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	orderID := s.decodeID(resp)

	// Activating an order the stock cannot cover is rejected and the
	// order stays in draft.
	resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": "active"})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", fmt.Sprintf("/orders/%d", orderID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var order struct {
		Status string `json:"status"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()
	s.Equal("draft", order.Status)

	level := s.getStock()
	s.Equal(0, level.ReservedStock)

	// Draft orders can be discarded.
	resp = s.makeRequest("DELETE", fmt.Sprintf("/orders/%d", orderID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *OrderWorkflowSuite) Test05_PurchaseOrderReceiving() {
	resp := s.makeRequest("POST", "/orders", map[string]any{
		"type":        "purchase",
		"supplier_id": s.supplierID,
		"location_id": s.locationID,
		"items": []map[string]any{
			{"product_id": s.productID, "quantity": 100, "unit_price": "0.40"},
		},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	orderID := s.decodeID(resp)

	for _, status := range []string{"active", "fulfilled"} {
		resp = s.makeRequest("POST", fmt.Sprintf("/orders/%d/status", orderID), map[string]any{"status": status})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// Receiving a purchase order adds to stock on top of what the sale
	// workflow left behind.
	level := s.getStock()
	s.Equal(120, level.CurrentStock)
}

func (s *OrderWorkflowSuite) Test06_UserSoftDeleteAndRestore() {
	resp := s.makeRequest("POST", "/users", map[string]any{
		"username":  "temp.clerk",
		"email":     "temp.clerk@example.com",
		"full_name": "Temp Clerk",
		"role":      "clerk",
		"password":  "changeme-now",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	userID := s.decodeID(resp)

	resp = s.makeRequest("DELETE", fmt.Sprintf("/users/%d", userID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// A tombstoned username is free, so a new active account can claim it.
	resp = s.makeRequest("POST", "/users", map[string]any{
		"username":  "temp.clerk",
		"email":     "other@example.com",
		"full_name": "Other Clerk",
		"role":      "clerk",
		"password":  "changeme-now",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	otherID := s.decodeID(resp)

	// Restoring the original now collides with the active account.
	resp = s.makeRequest("POST", fmt.Sprintf("/users/%d/restore", userID), nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Once the conflicting account is gone the restore goes through.
	resp = s.makeRequest("DELETE", fmt.Sprintf("/users/%d", otherID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("POST", fmt.Sprintf("/users/%d/restore", userID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *OrderWorkflowSuite) Test07_HealthReportsStores() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var payload struct {
		Status   string                     `json:"status"`
		Services map[string]json.RawMessage `json:"services"`
		Stores   map[string]int             `json:"stores"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

	s.Equal("healthy", payload.Status)
	s.Contains(payload.Services, "database")
	s.Contains(payload.Services, "redis")

	// The earlier tests pushed users, products and orders through the
	// write path, so each store holds at least one entry.
	s.GreaterOrEqual(payload.Stores["users"], 1)
	s.GreaterOrEqual(payload.Stores["products"], 1)
	s.GreaterOrEqual(payload.Stores["orders"], 1)
}

type stockResponse struct {
	CurrentStock   int
	ReservedStock  int
	AvailableStock int
}

func (s *OrderWorkflowSuite) getStock() stockResponse {
	resp := s.makeRequest("GET", fmt.Sprintf("/inventory/%d/%d", s.productID, s.locationID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var payload struct {
		Inventory struct {
			CurrentStock  int `json:"current_stock"`
			ReservedStock int `json:"reserved_stock"`
		} `json:"inventory"`
		AvailableStock int `json:"available_stock"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

	return stockResponse{
		CurrentStock:   payload.Inventory.CurrentStock,
		ReservedStock:  payload.Inventory.ReservedStock,
		AvailableStock: payload.Inventory.AvailableStock,
	}
}

func TestOrderWorkflowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(OrderWorkflowSuite))
}
