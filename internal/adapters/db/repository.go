// internal/adapters/db/repository.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// psql is the shared statement builder; every repository renders
// through it so placeholders come out in postgres dollar form.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// sortDirection normalizes a user-supplied sort order.
func sortDirection(order string) string {
	if order == "desc" {
		return "DESC"
	}
	return "ASC"
}

// countRemaining runs the list query without pagination and returns the
// matching row count. Repositories pass the fully filtered builder in.
func countRemaining(ctx context.Context, db *Database, qb squirrel.SelectBuilder) (int64, error) {
	countSQL, countArgs, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM ("+countSQL+") AS c", countArgs...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return count, nil
}

// softDeleteRow stamps deleted_at on an active row of the given table.
func softDeleteRow(ctx context.Context, db *Database, table string, id int64, at time.Time) error {
	query, args, err := psql.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build soft delete query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to soft delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected(table, id)
	}
	return nil
}

// restoreRow clears deleted_at on a tombstoned row of the given table.
func restoreRow(ctx context.Context, db *Database, table string, id int64) error {
	query, args, err := psql.Update(table).
		Set("deleted_at", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NOT NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build restore query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore in %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected(table, id)
	}
	return nil
}

// deleteRow permanently removes a row. Foreign keys guard referenced
// rows; violations surface as pgconn errors for the caller to classify.
func deleteRow(ctx context.Context, db *Database, table string, id int64) error {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected(table, id)
	}
	return nil
}

// identityTaken checks whether another active row already claims the
// given column value. excludeID lets updates skip the row being edited.
// Tombstoned rows do not count: their identity is reusable, and restore
// re-checks for conflicts before clearing the mark.
func identityTaken(ctx context.Context, db *Database, table, column, value string, excludeID int64) (bool, error) {
	qb := psql.Select("1").
		From(table).
		Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", column), value).
		Where("deleted_at IS NULL")
	if excludeID > 0 {
		qb = qb.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return db.Exists(ctx, query, args...)
}

// errNoRowsAffected wraps pgx.ErrNoRows so guarded updates that touch
// nothing classify as not-found further up.
func errNoRowsAffected(table string, id int64) error {
	return fmt.Errorf("%s row %d: %w", table, id, pgx.ErrNoRows)
}
