// internal/workers/tasks.go
package workers

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type identifiers
const (
	TypeRefreshStores   = "stores:refresh"
	TypePurgeTombstones = "tombstones:purge"
	TypeExportStock     = "inventory:export_stock"
)

// ExportStockPayload carries the parameters of a stock export task.
type ExportStockPayload struct {
	RequestedBy string `json:"requested_by,omitempty"`
	LocationID  int64  `json:"location_id,omitempty"`
}

// NewRefreshStoresTask builds the periodic store refresh task.
func NewRefreshStoresTask() *asynq.Task {
	return asynq.NewTask(TypeRefreshStores, nil)
}

// NewPurgeTombstonesTask builds the periodic tombstone purge task.
func NewPurgeTombstonesTask() *asynq.Task {
	return asynq.NewTask(TypePurgeTombstones, nil)
}

// NewExportStockTask builds a stock export task.
func NewExportStockTask(payload ExportStockPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportStock, data), nil
}
