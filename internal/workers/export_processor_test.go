package workers_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/workers"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

func TestExportProcessor_ExportStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)
	exportDir := t.TempDir()

	levels := []ports.StockLevel{
		{
			Inventory: domain.Inventory{
				ID:            1,
				ProductID:     10,
				LocationID:    20,
				CurrentStock:  15,
				ReservedStock: 5,
				UpdatedAt:     time.Now(),
			},
			AvailableStock: 10,
		},
		{
			Inventory: domain.Inventory{
				ID:            2,
				ProductID:     11,
				LocationID:    20,
				CurrentStock:  3,
				ReservedStock: 0,
				UpdatedAt:     time.Now(),
			},
			AvailableStock: 3,
		},
	}

	service.EXPECT().
		GetAllStock(gomock.Any()).
		Return(ports.Ok(levels))

	processor := workers.NewExportProcessor(service, exportDir, helpers.TestLogger())

	task := asynq.NewTask(workers.TypeExportStock, nil)

	err := processor.ExportStock(context.Background(), task)
	require.NoError(t, err)

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "stock_levels_")

	file, err := xlsx.OpenFile(filepath.Join(exportDir, entries[0].Name()))
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	// Header plus one row per stock level
	assert.Equal(t, 3, sheet.MaxRow)
}

func TestExportProcessor_ExportStock_FiltersByLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)
	exportDir := t.TempDir()

	service.EXPECT().
		GetLocationStock(gomock.Any(), int64(7)).
		Return(ports.Ok([]ports.StockLevel{}))

	processor := workers.NewExportProcessor(service, exportDir, helpers.TestLogger())

	task, err := workers.NewExportStockTask(workers.ExportStockPayload{LocationID: 7})
	require.NoError(t, err)

	err = processor.ExportStock(context.Background(), task)
	require.NoError(t, err)
}

func TestExportProcessor_ExportStock_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInventoryService(ctrl)

	service.EXPECT().
		GetAllStock(gomock.Any()).
		Return(ports.Fail[[]ports.StockLevel](ports.CodeUnexpectedError, "connection lost"))

	processor := workers.NewExportProcessor(service, t.TempDir(), helpers.TestLogger())

	err := processor.ExportStock(context.Background(), asynq.NewTask(workers.TypeExportStock, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestRefreshProcessor_RefreshStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidator := mocks.NewMockStoreInvalidator(ctrl)
	for _, kind := range []ports.EntityKind{ports.KindUsers, ports.KindProducts, ports.KindLocations, ports.KindOrders} {
		invalidator.EXPECT().Publish(gomock.Any(), kind).Return(nil)
	}

	processor := workers.NewRefreshProcessor(invalidator, helpers.TestLogger())

	err := processor.RefreshStores(context.Background(), workers.NewRefreshStoresTask())
	require.NoError(t, err)
}

func TestRefreshProcessor_RefreshStores_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidator := mocks.NewMockStoreInvalidator(ctrl)
	invalidator.EXPECT().
		Publish(gomock.Any(), ports.KindUsers).
		Return(errors.New("redis gone"))

	processor := workers.NewRefreshProcessor(invalidator, helpers.TestLogger())

	err := processor.RefreshStores(context.Background(), workers.NewRefreshStoresTask())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis gone")
}
