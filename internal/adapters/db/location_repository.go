// internal/adapters/db/location_repository.go
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

var locationColumns = []string{
	"id", "name", "address", "notes", "created_at", "updated_at", "deleted_at",
}

// locationRepository implements ports.LocationRepository
type locationRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *Database, logger *slog.Logger) ports.LocationRepository {
	return &locationRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "locations")),
	}
}

func (r *locationRepository) Save(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (name, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		location.Name, location.Address, location.Notes,
		location.CreatedAt, location.UpdatedAt,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	r.logger.DebugContext(ctx, "location saved",
		slog.Int64("id", location.ID),
		slog.String("name", location.Name))

	return nil
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations SET address = $2, notes = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		location.ID, location.Address, location.Notes, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("locations", location.ID)
	}

	return nil
}

// FindByID retrieves a location by ID. Returns nil when no row matches.
func (r *locationRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Location, error) {
	qb := psql.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanLocationRow)
}

// FindAll retrieves every location, ordered by name.
func (r *locationRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Location, error) {
	qb := psql.Select(locationColumns...).
		From("locations").
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
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return collectLocations(rows)
}

// List retrieves locations with filtering and pagination.
func (r *locationRepository) List(ctx context.Context, params ports.LocationListParams) ([]domain.Location, int64, error) {
	qb := psql.Select(locationColumns...).From("locations")
	if !params.IncludeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	total, err := countRemaining(ctx, r.db, qb)
	if err != nil {
		return nil, 0, err
	}

	orderBy := "name " + sortDirection(params.SortOrder)
	if params.SortBy == "created" {
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
		return nil, 0, fmt.Errorf("failed to query locations: %w", err)
	}

	locations, err := collectLocations(rows)
	if err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

func (r *locationRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "locations", id, at)
}

func (r *locationRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "locations", id)
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "locations", id)
}

func (r *locationRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "locations", "name", name, excludeID)
}

// HasStock reports whether the location holds any physical or reserved
// stock.
func (r *locationRepository) HasStock(ctx context.Context, locationID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("inventory").
		Where(squirrel.Eq{"location_id": locationID}).
		Where("(current_stock > 0 OR reserved_stock > 0)").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

// HasMovements reports whether any movement history references the
// location.
func (r *locationRepository) HasMovements(ctx context.Context, locationID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("inventory_movements").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

func scanLocationRow(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	var address, notes sql.NullString
	var deletedAt sql.NullTime
	err := row.Scan(&l.ID, &l.Name, &address, &notes, &l.CreatedAt, &l.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	l.Address = address.String
	l.Notes = notes.String
	if deletedAt.Valid {
		l.DeletedAt = &deletedAt.Time
	}
	return &l, nil
}

func collectLocations(rows pgx.Rows) ([]domain.Location, error) {
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		l, err := scanLocationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}
	return locations, nil
}
