// internal/handlers/exports.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"

	"github.com/acardosi/stockroom-be/internal/workers"
)

// ExportHandler enqueues background stock exports.
type ExportHandler struct {
	client *asynq.Client
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(client *asynq.Client, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		client: client,
		logger: logger.With(slog.String("handler", "exports")),
	}
}

type exportRequest struct {
	RequestedBy string `json:"requested_by"`
	LocationID  int64  `json:"location_id"`
}

type exportResponse struct {
	JobID  string `json:"job_id"`
	Queue  string `json:"queue"`
	Status string `json:"status"`
}

// ExportStock handles POST /api/v1/inventory/export. The export runs in
// the worker process; the response carries the task ID for follow-up.
func (h *ExportHandler) ExportStock(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	task, err := workers.NewExportStockTask(workers.ExportStockPayload{
		RequestedBy: req.RequestedBy,
		LocationID:  req.LocationID,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build export task",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "failed to build export task")
		return
	}

	info, err := h.client.EnqueueContext(r.Context(), task, asynq.Queue("low"))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to enqueue export task",
			slog.String("error", err.Error()))
		respondError(w, http.StatusServiceUnavailable, "failed to enqueue export task")
		return
	}

	h.logger.InfoContext(r.Context(), "stock export enqueued",
		slog.String("task_id", info.ID),
		slog.Int64("location_id", req.LocationID))

	respondJSON(w, http.StatusAccepted, exportResponse{
		JobID:  info.ID,
		Queue:  info.Queue,
		Status: "queued",
	})
}
