// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/pkg/config"
)

// StoreCounter exposes the size of an in-memory entity store. The
// health endpoint reports these counts so operators can see whether
// the warm-up ran.
type StoreCounter interface {
	CachedCount() int
}

// HealthHandler reports liveness and readiness of the API process and
// its backing services.
type HealthHandler struct {
	db        *db.Database
	redis     *redis.Client
	asynq     *asynq.Inspector
	stores    map[string]StoreCounter
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

func NewHealthHandler(
	database *db.Database,
	redisClient *redis.Client,
	asynqInspector *asynq.Inspector,
	stores map[string]StoreCounter,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		redis:     redisClient,
		asynq:     asynqInspector,
		stores:    stores,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

type healthResponse struct {
	Status      string                     `json:"status"`
	Version     string                     `json:"version"`
	Environment string                     `json:"environment"`
	Uptime      string                     `json:"uptime"`
	Timestamp   time.Time                  `json:"timestamp"`
	Services    map[string]componentStatus `json:"services"`
	Stores      map[string]int             `json:"stores,omitempty"`
}

type componentStatus struct {
	Status       string         `json:"status"`
	Message      string         `json:"message,omitempty"`
	ResponseTime string         `json:"response_time,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// Health handles GET /health. Any unhealthy backing service degrades
// the overall status and flips the response to 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:      "healthy",
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]componentStatus),
	}

	resp.Services["database"] = h.checkDatabase(ctx)
	resp.Services["redis"] = h.checkRedis(ctx)
	if h.asynq != nil {
		resp.Services["asynq"] = h.checkAsynq(ctx)
	}
	for _, svc := range resp.Services {
		if svc.Status != "healthy" {
			resp.Status = "degraded"
			break
		}
	}

	if len(h.stores) > 0 {
		resp.Stores = make(map[string]int, len(h.stores))
		for name, store := range h.stores {
			resp.Stores[name] = store.CachedCount()
		}
	}

	statusCode := http.StatusOK
	if resp.Status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}
	h.write(ctx, w, statusCode, resp)
}

// Readiness handles GET /ready. Ready means both stateful backends
// answer a ping; the asynq inspector is not required to serve traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	if err := h.db.Ping(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	} else {
		details["database"] = "ready"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		ready = false
		details["redis"] = "not ready"
	} else {
		details["redis"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	h.write(ctx, w, statusCode, map[string]any{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) componentStatus {
	start := time.Now()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database health check failed",
			slog.String("error", err.Error()))
		return componentStatus{Status: "unhealthy", Message: err.Error()}
	}

	return componentStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
		Details:      h.db.Health(ctx),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) componentStatus {
	start := time.Now()

	if err := h.redis.Ping(ctx).Err(); err != nil {
		h.logger.ErrorContext(ctx, "redis health check failed",
			slog.String("error", err.Error()))
		return componentStatus{Status: "unhealthy", Message: err.Error()}
	}

	poolStats := h.redis.PoolStats()
	return componentStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
		Details: map[string]any{
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
		},
	}
}

// checkAsynq reports per-queue backlog. The worker drains "default"
// and "low"; a growing retry count usually means the worker is down
// or the export directory is unwritable.
func (h *HealthHandler) checkAsynq(ctx context.Context) componentStatus {
	start := time.Now()

	queues, err := h.asynq.Queues()
	if err != nil {
		h.logger.ErrorContext(ctx, "asynq health check failed",
			slog.String("error", err.Error()))
		return componentStatus{Status: "unhealthy", Message: err.Error()}
	}

	backlog := make(map[string]any, len(queues))
	for _, queue := range queues {
		info, err := h.asynq.GetQueueInfo(queue)
		if err != nil {
			continue
		}
		backlog[queue] = map[string]int{
			"pending": info.Pending,
			"active":  info.Active,
			"retry":   info.Retry,
		}
	}

	return componentStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
		Details:      map[string]any{"queues": backlog},
	}
}

func (h *HealthHandler) write(ctx context.Context, w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}
