// internal/workers/export_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// ExportProcessor writes stock level workbooks for offline review.
type ExportProcessor struct {
	service   ports.InventoryService
	exportDir string
	logger    *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(service ports.InventoryService, exportDir string, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		service:   service,
		exportDir: exportDir,
		logger:    logger.With(slog.String("processor", "export")),
	}
}

// ExportStock writes the current stock levels to an xlsx workbook in the
// export directory. A payload with a location ID narrows the export to
// that location.
func (p *ExportProcessor) ExportStock(ctx context.Context, t *asynq.Task) error {
	var payload ExportStockPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal export payload: %w", err)
		}
	}

	var res ports.Result[[]ports.StockLevel]
	if payload.LocationID > 0 {
		res = p.service.GetLocationStock(ctx, payload.LocationID)
	} else {
		res = p.service.GetAllStock(ctx)
	}
	if !res.Success {
		return fmt.Errorf("load stock levels: %s", res.ErrorMessage)
	}

	if err := os.MkdirAll(p.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(p.exportDir,
		fmt.Sprintf("stock_levels_%s.xlsx", time.Now().UTC().Format("20060102_150405")))

	if err := writeStockWorkbook(path, res.Data); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	p.logger.InfoContext(ctx, "stock export completed",
		slog.String("file", path),
		slog.Int("rows", len(res.Data)),
		slog.String("requested_by", payload.RequestedBy))

	return nil
}

func writeStockWorkbook(path string, levels []ports.StockLevel) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Stock Levels")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, title := range []string{"Product ID", "Location ID", "Current Stock", "Reserved Stock", "Available Stock", "Updated At"} {
		header.AddCell().SetString(title)
	}

	for _, level := range levels {
		row := sheet.AddRow()
		row.AddCell().SetInt64(level.Inventory.ProductID)
		row.AddCell().SetInt64(level.Inventory.LocationID)
		row.AddCell().SetInt(level.Inventory.CurrentStock)
		row.AddCell().SetInt(level.Inventory.ReservedStock)
		row.AddCell().SetInt(level.AvailableStock)
		row.AddCell().SetString(level.Inventory.UpdatedAt.UTC().Format(time.RFC3339))
	}

	return file.Save(path)
}
