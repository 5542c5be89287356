// internal/handlers/products.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// ProductHandler handles catalog product HTTP requests
type ProductHandler struct {
	service ports.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ports.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "products")),
	}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.CreateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), params))
}

// Update handles PUT /api/v1/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var params ports.UpdateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, params))
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := ports.ProductListParams{
		PageParams:     parsePageParams(r),
		CategoryID:     parseInt64Query(r, "category_id"),
		SupplierID:     parseInt64Query(r, "supplier_id"),
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	}

	respondResult(w, http.StatusOK, h.service.List(r.Context(), params))
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/products/{id}/restore
func (h *ProductHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// Purge handles DELETE /api/v1/products/{id}/purge
func (h *ProductHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.HardDelete(r.Context(), id))
}

// BulkDelete handles POST /api/v1/products/bulk-delete
func (h *ProductHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkSoftDelete(r.Context(), ids))
}

// BulkRestore handles POST /api/v1/products/bulk-restore
func (h *ProductHandler) BulkRestore(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkRestore(r.Context(), ids))
}
