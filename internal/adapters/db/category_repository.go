// internal/adapters/db/category_repository.go
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

var categoryColumns = []string{
	"id", "name", "description", "created_at", "updated_at", "deleted_at",
}

// categoryRepository implements ports.CategoryRepository
type categoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *Database, logger *slog.Logger) ports.CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "categories")),
	}
}

func (r *categoryRepository) Save(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	r.logger.DebugContext(ctx, "category saved",
		slog.Int64("id", category.ID),
		slog.String("name", category.Name))

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("categories", category.ID)
	}

	return nil
}

// FindByID retrieves a category by ID. Returns nil when no row matches.
func (r *categoryRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Category, error) {
	qb := psql.Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanCategoryRow)
}

// FindAll retrieves every category, ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Category, error) {
	qb := psql.Select(categoryColumns...).
		From("categories").
		OrderBy("name ASC")
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "categories", id, at)
}

func (r *categoryRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "categories", id)
}

func (r *categoryRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "categories", "name", name, excludeID)
}

// HasActiveProducts reports whether any non-deleted product still
// references the category.
func (r *categoryRepository) HasActiveProducts(ctx context.Context, categoryID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("products").
		Where(squirrel.Eq{"category_id": categoryID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

func scanCategoryRow(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	var description sql.NullString
	var deletedAt sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.Time
	}
	return &c, nil
}
