// internal/adapters/db/product_repository.go
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

var productColumns = []string{
	"id", "sku", "name", "description", "category_id", "supplier_id",
	"unit_price", "unit_cost", "reorder_level",
	"created_at", "updated_at", "deleted_at",
}

// productRepository implements ports.ProductRepository
type productRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *Database, logger *slog.Logger) ports.ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "products")),
	}
}

// Save inserts a new product and fills in the generated ID.
func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (
			sku, name, description, category_id, supplier_id,
			unit_price, unit_cost, reorder_level, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		product.SKU, product.Name, product.Description, product.CategoryID, product.SupplierID,
		product.UnitPrice, product.UnitCost, product.ReorderLevel,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	r.logger.DebugContext(ctx, "product saved",
		slog.Int64("id", product.ID),
		slog.String("sku", product.SKU))

	return nil
}

// Update rewrites the mutable fields of an active product. The SKU is
// immutable after creation and never touched here.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, category_id = $4,
			unit_price = $5, unit_cost = $6, reorder_level = $7,
			updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.UnitPrice, product.UnitCost, product.ReorderLevel,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("products", product.ID)
	}

	return nil
}

// FindByID retrieves a product by ID. Returns nil when no row matches.
func (r *productRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Product, error) {
	qb := psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanProductRow)
}

// FindAll retrieves every product, ordered by ID.
func (r *productRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Product, error) {
	qb := psql.Select(productColumns...).
		From("products").
		OrderBy("id ASC")
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return collectProducts(rows)
}

// List retrieves products with filtering and pagination.
func (r *productRepository) List(ctx context.Context, params ports.ProductListParams) ([]domain.Product, int64, error) {
	qb := psql.Select(productColumns...).From("products")
	if !params.IncludeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}
	if params.CategoryID > 0 {
		qb = qb.Where(squirrel.Eq{"category_id": params.CategoryID})
	}
	if params.SupplierID > 0 {
		qb = qb.Where(squirrel.Eq{"supplier_id": params.SupplierID})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"sku": pattern},
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	total, err := countRemaining(ctx, r.db, qb)
	if err != nil {
		return nil, 0, err
	}

	orderBy := "id " + sortDirection(params.SortOrder)
	switch params.SortBy {
	case "sku":
		orderBy = "sku " + sortDirection(params.SortOrder)
	case "name":
		orderBy = "name " + sortDirection(params.SortOrder)
	case "price":
		orderBy = "unit_price " + sortDirection(params.SortOrder)
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

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "products", id, at)
}

func (r *productRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "products", id)
}

// Delete permanently removes a product row. Movement history foreign
// keys reject the delete when history exists.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "products", id)
}

func (r *productRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "products", "sku", sku, excludeID)
}

func (r *productRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "products", "name", name, excludeID)
}

func scanProductRow(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var description sql.NullString
	var supplierID sql.NullInt64
	var deletedAt sql.NullTime
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &description, &p.CategoryID, &supplierID,
		&p.UnitPrice, &p.UnitCost, &p.ReorderLevel,
		&p.CreatedAt, &p.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	if supplierID.Valid {
		p.SupplierID = &supplierID.Int64
	}
	if deletedAt.Valid {
		p.DeletedAt = &deletedAt.Time
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
