// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/services"
)

// CategoryHandler handles product category HTTP requests
type CategoryHandler struct {
	service *services.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *services.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "categories")),
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), req.Name, req.Description))
}

// Update handles PUT /api/v1/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, req.Name, req.Description))
}

// Get handles GET /api/v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondResult(w, http.StatusOK, h.service.GetAllActive(r.Context()))
}

// Delete handles DELETE /api/v1/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/categories/{id}/restore
func (h *CategoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// SupplierHandler handles supplier HTTP requests
type SupplierHandler struct {
	service *services.SupplierService
	logger  *slog.Logger
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(service *services.SupplierService, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "suppliers")),
	}
}

// Create handles POST /api/v1/suppliers
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var supplier domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), supplier))
}

type supplierUpdateRequest struct {
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// Update handles PUT /api/v1/suppliers/{id}
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid supplier ID")
		return
	}

	var req supplierUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, req.ContactName, req.Email, req.Phone, req.Address))
}

// Get handles GET /api/v1/suppliers/{id}
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid supplier ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/suppliers
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	respondResult(w, http.StatusOK, h.service.GetAllActive(r.Context()))
}

// Delete handles DELETE /api/v1/suppliers/{id}
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid supplier ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/suppliers/{id}/restore
func (h *SupplierHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid supplier ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	service *services.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service *services.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "customers")),
	}
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), customer))
}

type customerUpdateRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Update handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var req customerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, req.Email, req.Phone, req.Address))
}

// Get handles GET /api/v1/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	respondResult(w, http.StatusOK, h.service.GetAllActive(r.Context()))
}

// Delete handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/customers/{id}/restore
func (h *CustomerHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}
