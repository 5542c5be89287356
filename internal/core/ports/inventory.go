// internal/core/ports/inventory.go
package ports

import (
	"context"
	"errors"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// Contract errors shared by inventory repository implementations.
var (
	// ErrInsufficientStock is returned by Reserve and AdjustStock when the
	// guarded update would drive stock or availability negative.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockNotFound is returned when no inventory row exists for the
	// (product, location) pair.
	ErrStockNotFound = errors.New("inventory record not found")
)

// InventoryRepository is the persistence port for stock levels and the
// append-only movement history.
type InventoryRepository interface {
	FindByProductLocation(ctx context.Context, productID, locationID int64) (*domain.Inventory, error)
	FindByLocation(ctx context.Context, locationID int64) ([]domain.Inventory, error)
	FindAll(ctx context.Context) ([]domain.Inventory, error)
	// Upsert creates the (product, location) row when absent.
	Upsert(ctx context.Context, inv *domain.Inventory) error
	// AdjustStock applies a delta to current stock; the update is guarded
	// so stock never goes negative (zero rows affected means rejection).
	AdjustStock(ctx context.Context, productID, locationID int64, delta int) error
	// Reserve/Release move quantity in and out of the reserved pool.
	// Reserve is guarded against exceeding available stock.
	Reserve(ctx context.Context, productID, locationID int64, quantity int) error
	Release(ctx context.Context, productID, locationID int64, quantity int) error
	SaveMovement(ctx context.Context, movement *domain.InventoryMovement) error
	FindMovements(ctx context.Context, productID, locationID int64, limit int) ([]domain.InventoryMovement, error)
	HasStockForProduct(ctx context.Context, productID int64) (bool, error)
	HasMovementsForProduct(ctx context.Context, productID int64) (bool, error)
}

// StockLevel pairs an inventory row with its derived availability, the
// shape handed to the UI and the export worker.
type StockLevel struct {
	Inventory      domain.Inventory `json:"inventory"`
	AvailableStock int              `json:"available_stock"`
}

// InventoryService performs stock mutations on behalf of the order
// lifecycle and exposes stock queries to the UI layer.
type InventoryService interface {
	GetStock(ctx context.Context, productID, locationID int64) Result[StockLevel]
	GetLocationStock(ctx context.Context, locationID int64) Result[[]StockLevel]
	GetAllStock(ctx context.Context) Result[[]StockLevel]
	AdjustStock(ctx context.Context, productID, locationID int64, delta int, reference string) Result[StockLevel]
	ListMovements(ctx context.Context, productID, locationID int64, limit int) Result[[]domain.InventoryMovement]

	// Order lifecycle side effects.
	ReserveForOrder(ctx context.Context, order domain.Order) Result[Unit]
	ReleaseForOrder(ctx context.Context, order domain.Order) Result[Unit]
	FulfillOrder(ctx context.Context, order domain.Order) Result[Unit]
}
