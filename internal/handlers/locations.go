// internal/handlers/locations.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// LocationHandler handles stock location HTTP requests
type LocationHandler struct {
	service ports.LocationService
	logger  *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service ports.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "locations")),
	}
}

// Create handles POST /api/v1/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.CreateLocationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusCreated, h.service.Create(r.Context(), params))
}

// Update handles PUT /api/v1/locations/{id}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	var params ports.UpdateLocationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, http.StatusOK, h.service.Update(r.Context(), id, params))
}

// Get handles GET /api/v1/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	includeDeleted := parseBoolQuery(r, "include_deleted")
	respondResult(w, http.StatusOK, h.service.GetByID(r.Context(), id, includeDeleted))
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	params := ports.LocationListParams{
		PageParams:     parsePageParams(r),
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	}

	respondResult(w, http.StatusOK, h.service.List(r.Context(), params))
}

// Delete handles DELETE /api/v1/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.SoftDelete(r.Context(), id))
}

// Restore handles POST /api/v1/locations/{id}/restore
func (h *LocationHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.Restore(r.Context(), id))
}

// Purge handles DELETE /api/v1/locations/{id}/purge
func (h *LocationHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid location ID")
		return
	}

	respondResult(w, http.StatusOK, h.service.HardDelete(r.Context(), id))
}

// BulkDelete handles POST /api/v1/locations/bulk-delete
func (h *LocationHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkSoftDelete(r.Context(), ids))
}

// BulkRestore handles POST /api/v1/locations/bulk-restore
func (h *LocationHandler) BulkRestore(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeBulkRequest(w, r)
	if !ok {
		return
	}

	respondResult(w, http.StatusOK, h.service.BulkRestore(r.Context(), ids))
}
