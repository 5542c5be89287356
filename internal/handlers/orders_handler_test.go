package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/handlers"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

func TestOrderHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	supplierID := int64(3)

	service := mocks.NewMockOrderService(ctrl)
	service.EXPECT().
		Create(gomock.Any(), ports.CreateOrderParams{
			Type:       domain.OrderPurchase,
			SupplierID: &supplierID,
			LocationID: 1,
			Notes:      "restock",
			Items: []ports.OrderItemParams{
				{ProductID: 10, Quantity: 5, UnitPrice: decimal.RequireFromString("12.50")},
			},
		}).
		Return(ports.Ok(domain.Order{ID: 100, Type: domain.OrderPurchase, Status: domain.StatusDraft}))

	handler := handlers.NewOrderHandler(service, helpers.TestLogger())

	body := `{"type":"purchase","supplier_id":3,"location_id":1,"notes":"restock","items":[{"product_id":10,"quantity":5,"unit_price":"12.50"}]}`
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var order domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, domain.StatusDraft, order.Status)
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockOrderService)
		expectedStatus int
		checkBody      func(*testing.T, []byte)
	}{
		{
			name: "activates_draft",
			body: `{"status":"active"}`,
			setupMock: func(m *mocks.MockOrderService) {
				m.EXPECT().
					ChangeStatus(gomock.Any(), int64(100), domain.StatusActive).
					Return(ports.Ok(domain.Order{ID: 100, Status: domain.StatusActive}))
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"active"`)
			},
		},
		{
			name: "rejected_transition",
			body: `{"status":"draft"}`,
			setupMock: func(m *mocks.MockOrderService) {
				m.EXPECT().
					ChangeStatus(gomock.Any(), int64(100), domain.StatusDraft).
					Return(ports.Fail[domain.Order](ports.CodeValidationFailure,
						"cannot transition order from completed to draft"))
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "cannot transition")
			},
		},
		{
			name: "order_not_found",
			body: `{"status":"active"}`,
			setupMock: func(m *mocks.MockOrderService) {
				m.EXPECT().
					ChangeStatus(gomock.Any(), int64(100), domain.StatusActive).
					Return(ports.Fail[domain.Order](ports.CodeNotFound, "order 100 not found"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "not_found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockOrderService(ctrl)
			tt.setupMock(service)

			handler := handlers.NewOrderHandler(service, helpers.TestLogger())

			req := httptest.NewRequest("POST", "/api/v1/orders/100/status", bytes.NewBufferString(tt.body))
			req.SetPathValue("id", "100")
			w := httptest.NewRecorder()

			handler.ChangeStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkBody(t, w.Body.Bytes())
		})
	}
}

func TestOrderHandler_List_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockOrderService(ctrl)
	service.EXPECT().
		List(gomock.Any(), ports.OrderListParams{
			PageParams: ports.PageParams{Page: 1, PageSize: 20},
			Type:       domain.OrderSale,
			Status:     domain.StatusActive,
			LocationID: 4,
		}).
		Return(ports.Ok(ports.NewPage([]domain.Order{{ID: 1, Type: domain.OrderSale}},
			ports.PageParams{Page: 1, PageSize: 20}, 1)))

	handler := handlers.NewOrderHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/orders?page=1&page_size=20&type=sale&status=active&location_id=4", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page ports.Page[domain.Order]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestOrderHandler_Delete_DraftOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockOrderService(ctrl)
	service.EXPECT().
		SoftDelete(gomock.Any(), int64(55)).
		Return(ports.Fail[ports.Unit](ports.CodeValidationFailure,
			"only draft or cancelled orders can be deleted"))

	handler := handlers.NewOrderHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("DELETE", "/api/v1/orders/55", nil)
	req.SetPathValue("id", "55")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only draft or cancelled")
}

func TestOrderHandler_BulkRestore_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockOrderService(ctrl)
	service.EXPECT().
		BulkRestore(gomock.Any(), []int64{5, 6, 7}).
		Return(ports.Fail[ports.Unit](ports.CodePartialFailure, "1 of 3 operations failed"))

	handler := handlers.NewOrderHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("POST", "/api/v1/orders/bulk-restore", bytes.NewBufferString(`{"ids":[5,6,7]}`))
	w := httptest.NewRecorder()

	handler.BulkRestore(w, req)

	assert.Equal(t, http.StatusMultiStatus, w.Code)
	assert.Contains(t, w.Body.String(), "partial_failure")
}
