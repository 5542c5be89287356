// internal/handlers/orders.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// OrderHandler handles purchase and sales order HTTP requests
type OrderHandler struct {
	service ports.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service ports.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "orders")),
	}
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.CreateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), params))
}

// Update handles PUT /api/v1/orders/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var params ports.UpdateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, params))
}

// Get handles GET /api/v1/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	params := ports.OrderListParams{
		PageParams:     parsePageParams(r),
		Type:           domain.OrderType(r.URL.Query().Get("type")),
		Status:         domain.OrderStatus(r.URL.Query().Get("status")),
		LocationID:     parseInt64Query(r, "location_id"),
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	}

	respondResult(w, http.StatusOK, h.service.List(r.Context(), params))
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// ChangeStatus handles POST /api/v1/orders/{id}/status
func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.ChangeStatus(r.Context(), id, req.Status))
}

// Delete handles DELETE /api/v1/orders/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/orders/{id}/restore
func (h *OrderHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// Purge handles DELETE /api/v1/orders/{id}/purge
func (h *OrderHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.HardDelete(r.Context(), id))
}

// BulkDelete handles POST /api/v1/orders/bulk-delete
func (h *OrderHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkSoftDelete(r.Context(), ids))
}

// BulkRestore handles POST /api/v1/orders/bulk-restore
func (h *OrderHandler) BulkRestore(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkRestore(r.Context(), ids))
}
