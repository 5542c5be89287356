// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// respondJSON writes data as a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes an error message as a JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondResult maps a service result onto an HTTP response. Successful
// results render their data with the given status; failures render the
// error envelope with a status derived from the error code.
func respondResult[T any](w http.ResponseWriter, okStatus int, res ports.Result[T]) {
	if res.Success {
		respondJSON(w, okStatus, res.Data)
		return
	}
	respondJSON(w, statusForCode(res.ErrorCode), map[string]string{
		"error":      res.ErrorMessage,
		"error_code": string(res.ErrorCode),
	})
}

// statusForCode maps the service error taxonomy to HTTP statuses.
func statusForCode(code ports.ErrorCode) int {
	switch code {
	case ports.CodeInvalidInput, ports.CodeValidationFailure:
		return http.StatusBadRequest
	case ports.CodeNotFound:
		return http.StatusNotFound
	case ports.CodeDuplicateKey, ports.CodeForeignKeyViolation, ports.CodeConstraintViolation:
		return http.StatusConflict
	case ports.CodePartialFailure:
		return http.StatusMultiStatus
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam reads the {id} path value as an int64.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePageParams reads the shared pagination and sorting query
// parameters. Defaults are applied by the services.
func parsePageParams(r *http.Request) ports.PageParams {
	q := r.URL.Query()
	params := ports.PageParams{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Search:    q.Get("search"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil {
		params.PageSize = size
	}
	return params
}

func parseBoolQuery(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

func parseInt64Query(r *http.Request, name string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// bulkRequest is the body of every bulk soft-delete/restore endpoint.
type bulkRequest struct {
	IDs []int64 `json:"ids"`
}

// decodeBulkRequest parses and sanity-checks a bulk operation body.
func decodeBulkRequest(w http.ResponseWriter, r *http.Request) ([]int64, bool) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if len(req.IDs) == 0 {
		respondError(w, http.StatusBadRequest, "ids is required")
		return nil, false
	}
	return req.IDs, true
}
