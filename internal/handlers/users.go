// internal/handlers/users.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// UserHandler handles user account HTTP requests
type UserHandler struct {
	service ports.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service ports.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "users")),
	}
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), params))
}

// Update handles PUT /api/v1/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var params ports.UpdateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, params))
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := ports.UserListParams{
		PageParams:     parsePageParams(r),
		Role:           domain.UserRole(r.URL.Query().Get("role")),
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	}

	respondResult(w, http.StatusOK, h.service.List(r.Context(), params))
}

// Delete handles DELETE /api/v1/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/users/{id}/restore
func (h *UserHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// Purge handles DELETE /api/v1/users/{id}/purge
func (h *UserHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.HardDelete(r.Context(), id))
}

// BulkDelete handles POST /api/v1/users/bulk-delete
func (h *UserHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkSoftDelete(r.Context(), ids))
}

// BulkRestore handles POST /api/v1/users/bulk-restore
func (h *UserHandler) BulkRestore(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkRestore(r.Context(), ids))
}
