// internal/adapters/db/order_repository.go
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

var orderColumns = []string{
	"id", "number", "type", "status", "supplier_id", "customer_id",
	"location_id", "delivery_date", "notes", "total",
	"created_at", "updated_at", "deleted_at",
}

// orderRepository implements ports.OrderRepository. The header and its
// line items are written in one transaction; a torn order is never
// visible.
type orderRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *Database, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "orders")),
	}
}

// Save inserts the order header and its items atomically, filling in
// generated IDs.
func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (
				number, type, status, supplier_id, customer_id,
				location_id, delivery_date, notes, total,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			order.Number, order.Type, order.Status, order.SupplierID, order.CustomerID,
			order.LocationID, order.DeliveryDate, order.Notes, order.Total,
			order.CreatedAt, order.UpdatedAt,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to save order header: %w", err)
		}

		return insertOrderItems(ctx, tx, order)
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "order saved",
		slog.Int64("id", order.ID),
		slog.String("number", order.Number),
		slog.Int("items", len(order.Items)))

	return nil
}

// Update rewrites the header's mutable fields and replaces every line
// item in one transaction.
func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE orders SET
				delivery_date = $2, notes = $3, total = $4, updated_at = $5
			WHERE id = $1 AND deleted_at IS NULL`

		tag, err := tx.Exec(ctx, query,
			order.ID, order.DeliveryDate, order.Notes, order.Total, time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to update order header: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errNoRowsAffected("orders", order.ID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("failed to clear order items: %w", err)
		}

		return insertOrderItems(ctx, tx, order)
	})
}

// UpdateStatus moves an active order to a new lifecycle status. Legality
// is the order service's concern; this is a plain persisted write.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `
		UPDATE orders SET status = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("orders", id)
	}

	r.logger.DebugContext(ctx, "order status updated",
		slog.Int64("id", id),
		slog.String("status", string(status)))

	return nil
}

// FindByID retrieves an order with its items. Returns nil when no row
// matches.
func (r *orderRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Order, error) {
	qb := psql.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	order, err := ScanOne(r.db.QueryRow(ctx, query, args...), scanOrderRow)
	if err != nil || order == nil {
		return order, err
	}

	if err := r.loadItems(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// FindAll retrieves every order with items, ordered by ID.
func (r *orderRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Order, error) {
	qb := psql.Select(orderColumns...).
		From("orders").
		OrderBy("id ASC")
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryOrders(ctx, query, args)
}

// List retrieves orders with filtering and pagination. Items are loaded
// for the returned page only.
func (r *orderRepository) List(ctx context.Context, params ports.OrderListParams) ([]domain.Order, int64, error) {
	qb := psql.Select(orderColumns...).From("orders")
	if !params.IncludeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}
	if params.Type != "" {
		qb = qb.Where(squirrel.Eq{"type": params.Type})
	}
	if params.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": params.Status})
	}
	if params.LocationID > 0 {
		qb = qb.Where(squirrel.Eq{"location_id": params.LocationID})
	}
	if params.Search != "" {
		qb = qb.Where(squirrel.ILike{"number": "%" + params.Search + "%"})
	}

	total, err := countRemaining(ctx, r.db, qb)
	if err != nil {
		return nil, 0, err
	}

	orderBy := "id " + sortDirection(params.SortOrder)
	switch params.SortBy {
	case "number":
		orderBy = "number " + sortDirection(params.SortOrder)
	case "total":
		orderBy = "total " + sortDirection(params.SortOrder)
	case "created":
		orderBy = "created_at " + sortDirection(params.SortOrder)
	}
	qb = qb.OrderBy(orderBy).
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset()))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	orders, err := r.queryOrders(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "orders", id, at)
}

func (r *orderRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "orders", id)
}

// Delete permanently removes an order and its items. Movement history
// referencing the order rejects the delete through its foreign key.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errNoRowsAffected("orders", id)
		}
		return nil
	})
}

// NumberExists reports whether an active order carries the number.
func (r *orderRepository) NumberExists(ctx context.Context, number string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "orders", "number", number, excludeID)
}

// insertOrderItems batches the line item inserts inside the caller's
// transaction and fills in generated item IDs.
func insertOrderItems(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	if len(order.Items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		batch.Queue(query,
			order.ID, order.Items[i].ProductID, order.Items[i].Quantity,
			order.Items[i].UnitPrice, order.Items[i].TotalPrice,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for i := range order.Items {
		if err := br.QueryRow().Scan(&order.Items[i].ID); err != nil {
			return fmt.Errorf("failed to save order item %d: %w", i, err)
		}
	}
	return nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args []interface{}) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var refs []*domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		refs = append(refs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, len(refs))
	for i, o := range refs {
		orders[i] = *o
	}
	return orders, nil
}

// loadItems fetches line items for the given orders in one query and
// attaches them in item-ID order.
func (r *orderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		o.Items = []domain.OrderItem{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query, args, err := psql.Select(
		"id", "order_id", "product_id", "quantity", "unit_price", "total_price",
	).
		From("order_items").
		Where(squirrel.Eq{"order_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating order items: %w", err)
	}
	return nil
}

func scanOrderRow(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var supplierID, customerID sql.NullInt64
	var deliveryDate, deletedAt sql.NullTime
	var notes sql.NullString
	err := row.Scan(
		&o.ID, &o.Number, &o.Type, &o.Status, &supplierID, &customerID,
		&o.LocationID, &deliveryDate, &notes, &o.Total,
		&o.CreatedAt, &o.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID.Valid {
		o.SupplierID = &supplierID.Int64
	}
	if customerID.Valid {
		o.CustomerID = &customerID.Int64
	}
	if deliveryDate.Valid {
		o.DeliveryDate = &deliveryDate.Time
	}
	o.Notes = notes.String
	if deletedAt.Valid {
		o.DeletedAt = &deletedAt.Time
	}
	return &o, nil
}
