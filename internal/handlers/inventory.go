// internal/handlers/inventory.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// InventoryHandler handles stock level and movement HTTP requests
type InventoryHandler struct {
	service ports.InventoryService
	logger  *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "inventory")),
	}
}

func parsePairParams(r *http.Request) (productID, locationID int64, ok bool) {
	productID, err := strconv.ParseInt(r.PathValue("productID"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, 0, false
	}
	locationID, err = strconv.ParseInt(r.PathValue("locationID"), 10, 64)
	if err != nil || locationID <= 0 {
		return 0, 0, false
	}
	return productID, locationID, true
}

// GetStock handles GET /api/v1/inventory/{productID}/{locationID}
func (h *InventoryHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	productID, locationID, ok := parsePairParams(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product or location ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.GetStock(r.Context(), productID, locationID))
}

// GetLocationStock handles GET /api/v1/inventory/locations/{id}
func (h *InventoryHandler) GetLocationStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.GetLocationStock(r.Context(), id))
}

// GetAllStock handles GET /api/v1/inventory
func (h *InventoryHandler) GetAllStock(w http.ResponseWriter, r *http.Request) {
	respondResult(w, http.StatusOK, h.service.GetAllStock(r.Context()))
}

type adjustStockRequest struct {
	ProductID  int64  `json:"product_id"`
	LocationID int64  `json:"location_id"`
	Delta      int    `json:"delta"`
	Reference  string `json:"reference"`
}

// AdjustStock handles POST /api/v1/inventory/adjust
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.service.AdjustStock(r.Context(), req.ProductID, req.LocationID, req.Delta, req.Reference)
	respondResult(w, http.StatusOK, res)
}

// ListMovements handles GET /api/v1/inventory/movements
func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	productID := parseInt64Query(r, "product_id")
	locationID := parseInt64Query(r, "location_id")

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	respondResult(w, http.StatusOK, h.service.ListMovements(r.Context(), productID, locationID, limit))
}
