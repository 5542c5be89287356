package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/handlers"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

func TestInventoryHandler_GetStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)
	service.EXPECT().
		GetStock(gomock.Any(), int64(10), int64(2)).
		Return(ports.Ok(ports.StockLevel{
			Inventory:      domain.Inventory{ProductID: 10, LocationID: 2, CurrentStock: 25, ReservedStock: 5},
			AvailableStock: 20,
		}))

	handler := handlers.NewInventoryHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/inventory/10/2", nil)
	req.SetPathValue("productID", "10")
	req.SetPathValue("locationID", "2")
	w := httptest.NewRecorder()

	handler.GetStock(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var level ports.StockLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &level))
	assert.Equal(t, 25, level.Inventory.CurrentStock)
	assert.Equal(t, 20, level.AvailableStock)
}

func TestInventoryHandler_GetStock_InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		locationID string
	}{
		{"non_numeric_product", "abc", "2"},
		{"non_numeric_location", "10", "xyz"},
		{"zero_product", "0", "2"},
		{"negative_location", "10", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := handlers.NewInventoryHandler(mocks.NewMockInventoryService(ctrl), helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/inventory/x/y", nil)
			req.SetPathValue("productID", tt.productID)
			req.SetPathValue("locationID", tt.locationID)
			w := httptest.NewRecorder()

			handler.GetStock(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid product or location ID")
		})
	}
}

func TestInventoryHandler_AdjustStock(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockInventoryService)
		expectedStatus int
		checkBody      func(*testing.T, []byte)
	}{
		{
			name: "positive_adjustment",
			body: `{"product_id":10,"location_id":2,"delta":15,"reference":"delivery #88"}`,
			setupMock: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					AdjustStock(gomock.Any(), int64(10), int64(2), 15, "delivery #88").
					Return(ports.Ok(ports.StockLevel{
						Inventory:      domain.Inventory{ProductID: 10, LocationID: 2, CurrentStock: 40},
						AvailableStock: 40,
					}))
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var level ports.StockLevel
				require.NoError(t, json.Unmarshal(body, &level))
				assert.Equal(t, 40, level.Inventory.CurrentStock)
			},
		},
		{
			name: "insufficient_stock",
			body: `{"product_id":10,"location_id":2,"delta":-100,"reference":"correction"}`,
			setupMock: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					AdjustStock(gomock.Any(), int64(10), int64(2), -100, "correction").
					Return(ports.Fail[ports.StockLevel](ports.CodeConstraintViolation,
						"insufficient stock for adjustment"))
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "insufficient stock")
			},
		},
		{
			name:           "malformed_body",
			body:           `{"delta":`,
			setupMock:      func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "invalid request body")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockInventoryService(ctrl)
			tt.setupMock(service)

			handler := handlers.NewInventoryHandler(service, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/inventory/adjust", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.AdjustStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkBody(t, w.Body.Bytes())
		})
	}
}

func TestInventoryHandler_GetLocationStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)
	service.EXPECT().
		GetLocationStock(gomock.Any(), int64(3)).
		Return(ports.Ok([]ports.StockLevel{
			{Inventory: domain.Inventory{ProductID: 1, LocationID: 3, CurrentStock: 5}, AvailableStock: 5},
			{Inventory: domain.Inventory{ProductID: 2, LocationID: 3, CurrentStock: 9}, AvailableStock: 9},
		}))

	handler := handlers.NewInventoryHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/inventory/locations/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler.GetLocationStock(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var levels []ports.StockLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	assert.Len(t, levels, 2)
}

func TestInventoryHandler_ListMovements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)
	service.EXPECT().
		ListMovements(gomock.Any(), int64(10), int64(0), 25).
		Return(ports.Ok([]domain.InventoryMovement{
			{ID: 1, ProductID: 10, LocationID: 2, Type: domain.MovementAdjustment, Quantity: 5},
		}))

	handler := handlers.NewInventoryHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/inventory/movements?product_id=10&limit=25", nil)
	w := httptest.NewRecorder()

	handler.ListMovements(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":5`)
}
