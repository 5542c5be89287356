// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

var inventoryColumns = []string{
	"id", "product_id", "location_id", "current_stock", "reserved_stock", "updated_at",
}

var movementColumns = []string{
	"id", "product_id", "location_id", "order_id", "type",
	"quantity", "reference", "notes", "created_at",
}

// inventoryRepository implements ports.InventoryRepository. Stock
// mutations are single guarded UPDATE statements; the WHERE clause
// carries the invariant, so concurrent writers can never drive stock
// or availability negative.
type inventoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

// FindByProductLocation retrieves the stock row for one product at one
// location. Returns ports.ErrStockNotFound when the row is absent.
func (r *inventoryRepository) FindByProductLocation(ctx context.Context, productID, locationID int64) (*domain.Inventory, error) {
	query, args, err := psql.Select(inventoryColumns...).
		From("inventory").
		Where(squirrel.Eq{"product_id": productID, "location_id": locationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	inv, err := scanInventoryRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("product %d at location %d: %w", productID, locationID, ports.ErrStockNotFound)
		}
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}
	return inv, nil
}

// FindByLocation retrieves every stock row at a location.
func (r *inventoryRepository) FindByLocation(ctx context.Context, locationID int64) ([]domain.Inventory, error) {
	query, args, err := psql.Select(inventoryColumns...).
		From("inventory").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("product_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryInventory(ctx, query, args)
}

// FindAll retrieves every stock row.
func (r *inventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	query, args, err := psql.Select(inventoryColumns...).
		From("inventory").
		OrderBy("location_id ASC", "product_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryInventory(ctx, query, args)
}

// Upsert creates the (product, location) row when absent. An existing
// row is left untouched so concurrent upserts cannot clobber stock.
func (r *inventoryRepository) Upsert(ctx context.Context, inv *domain.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, location_id, current_stock, reserved_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, location_id) DO UPDATE SET updated_at = inventory.updated_at
		RETURNING id, current_stock, reserved_stock, updated_at`

	err := r.db.QueryRow(ctx, query,
		inv.ProductID, inv.LocationID, inv.CurrentStock, inv.ReservedStock, time.Now(),
	).Scan(&inv.ID, &inv.CurrentStock, &inv.ReservedStock, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory: %w", err)
	}

	return nil
}

// AdjustStock applies a delta to current stock. The guard keeps the
// resulting stock at or above the reserved pool.
func (r *inventoryRepository) AdjustStock(ctx context.Context, productID, locationID int64, delta int) error {
	query := `
		UPDATE inventory SET
			current_stock = current_stock + $3, updated_at = $4
		WHERE product_id = $1 AND location_id = $2
		  AND current_stock + $3 >= 0
		  AND current_stock + $3 >= reserved_stock`

	tag, err := r.db.Exec(ctx, query, productID, locationID, delta, time.Now())
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.rejectStockWrite(ctx, productID, locationID)
	}

	r.logger.DebugContext(ctx, "stock adjusted",
		slog.Int64("product_id", productID),
		slog.Int64("location_id", locationID),
		slog.Int("delta", delta))

	return nil
}

// Reserve moves quantity into the reserved pool, guarded against
// exceeding available stock.
func (r *inventoryRepository) Reserve(ctx context.Context, productID, locationID int64, quantity int) error {
	query := `
		UPDATE inventory SET
			reserved_stock = reserved_stock + $3, updated_at = $4
		WHERE product_id = $1 AND location_id = $2
		  AND current_stock - reserved_stock >= $3`

	tag, err := r.db.Exec(ctx, query, productID, locationID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.rejectStockWrite(ctx, productID, locationID)
	}

	r.logger.DebugContext(ctx, "stock reserved",
		slog.Int64("product_id", productID),
		slog.Int64("location_id", locationID),
		slog.Int("quantity", quantity))

	return nil
}

// Release moves quantity out of the reserved pool, clamped at zero so a
// double release cannot leave the pool negative.
func (r *inventoryRepository) Release(ctx context.Context, productID, locationID int64, quantity int) error {
	query := `
		UPDATE inventory SET
			reserved_stock = GREATEST(reserved_stock - $3, 0), updated_at = $4
		WHERE product_id = $1 AND location_id = $2`

	tag, err := r.db.Exec(ctx, query, productID, locationID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d at location %d: %w", productID, locationID, ports.ErrStockNotFound)
	}

	r.logger.DebugContext(ctx, "stock released",
		slog.Int64("product_id", productID),
		slog.Int64("location_id", locationID),
		slog.Int("quantity", quantity))

	return nil
}

// SaveMovement appends one immutable movement record.
func (r *inventoryRepository) SaveMovement(ctx context.Context, movement *domain.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (
			product_id, location_id, order_id, type, quantity,
			reference, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		movement.ProductID, movement.LocationID, movement.OrderID, movement.Type,
		movement.Quantity, movement.Reference, movement.Notes, movement.CreatedAt,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}

	return nil
}

// FindMovements retrieves movement history, newest first. Zero IDs act
// as wildcards so one query serves the product, location, and global
// history views.
func (r *inventoryRepository) FindMovements(ctx context.Context, productID, locationID int64, limit int) ([]domain.InventoryMovement, error) {
	qb := psql.Select(movementColumns...).
		From("inventory_movements").
		OrderBy("created_at DESC", "id DESC")
	if productID > 0 {
		qb = qb.Where(squirrel.Eq{"product_id": productID})
	}
	if locationID > 0 {
		qb = qb.Where(squirrel.Eq{"location_id": locationID})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.InventoryMovement, 0)
	for rows.Next() {
		var m domain.InventoryMovement
		var orderID sql.NullInt64
		var reference, notes sql.NullString
		err := rows.Scan(
			&m.ID, &m.ProductID, &m.LocationID, &orderID, &m.Type,
			&m.Quantity, &reference, &notes, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		if orderID.Valid {
			m.OrderID = &orderID.Int64
		}
		m.Reference = reference.String
		m.Notes = notes.String
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movements: %w", err)
	}
	return movements, nil
}

// HasStockForProduct reports whether the product holds physical or
// reserved stock anywhere.
func (r *inventoryRepository) HasStockForProduct(ctx context.Context, productID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("inventory").
		Where(squirrel.Eq{"product_id": productID}).
		Where("(current_stock > 0 OR reserved_stock > 0)").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

// HasMovementsForProduct reports whether any movement history references
// the product.
func (r *inventoryRepository) HasMovementsForProduct(ctx context.Context, productID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("inventory_movements").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

// rejectStockWrite distinguishes a guard rejection from a missing row
// after a guarded update touched nothing.
func (r *inventoryRepository) rejectStockWrite(ctx context.Context, productID, locationID int64) error {
	query, args, err := psql.Select("1").
		From("inventory").
		Where(squirrel.Eq{"product_id": productID, "location_id": locationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build exists query: %w", err)
	}

	exists, err := r.db.Exists(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to check inventory row: %w", err)
	}
	if !exists {
		return fmt.Errorf("product %d at location %d: %w", productID, locationID, ports.ErrStockNotFound)
	}
	return fmt.Errorf("product %d at location %d: %w", productID, locationID, ports.ErrInsufficientStock)
}

func (r *inventoryRepository) queryInventory(ctx context.Context, query string, args []interface{}) ([]domain.Inventory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Inventory, 0)
	for rows.Next() {
		inv, err := scanInventoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		records = append(records, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}
	return records, nil
}

func scanInventoryRow(row pgx.Row) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.LocationID,
		&inv.CurrentStock, &inv.ReservedStock, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
