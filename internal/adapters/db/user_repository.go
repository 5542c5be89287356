// internal/adapters/db/user_repository.go
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

var userColumns = []string{
	"id", "username", "email", "full_name", "role", "password_hash",
	"created_at", "updated_at", "deleted_at",
}

// userRepository implements ports.UserRepository
type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "users")),
	}
}

// Save inserts a new user and fills in the generated ID.
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			username, email, full_name, role, password_hash,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.FullName, user.Role, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	r.logger.DebugContext(ctx, "user saved",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username))

	return nil
}

// Update rewrites the mutable profile fields of an active user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			email = $2, full_name = $3, role = $4,
			password_hash = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.FullName, user.Role,
		user.PasswordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("users", user.ID)
	}

	return nil
}

// FindByID retrieves a user by ID. Returns nil when no row matches.
func (r *userRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.User, error) {
	qb := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanUserRow)
}

// FindByUsername retrieves an active user by username, case-insensitively.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where("LOWER(username) = LOWER(?)", username).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanUserRow)
}

// FindAll retrieves every user, ordered by ID.
func (r *userRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.User, error) {
	qb := psql.Select(userColumns...).
		From("users").
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
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return collectUsers(rows)
}

// List retrieves users with filtering and pagination.
func (r *userRepository) List(ctx context.Context, params ports.UserListParams) ([]domain.User, int64, error) {
	qb := psql.Select(userColumns...).From("users")
	if !params.IncludeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}
	if params.Role != "" {
		qb = qb.Where(squirrel.Eq{"role": params.Role})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"username": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"full_name": pattern},
		})
	}

	total, err := countRemaining(ctx, r.db, qb)
	if err != nil {
		return nil, 0, err
	}

	orderBy := "id " + sortDirection(params.SortOrder)
	switch params.SortBy {
	case "username":
		orderBy = "username " + sortDirection(params.SortOrder)
	case "email":
		orderBy = "email " + sortDirection(params.SortOrder)
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
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SoftDelete stamps deleted_at on an active user.
func (r *userRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "users", id, at)
}

// Restore clears the soft-delete mark on a tombstoned user.
func (r *userRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "users", id)
}

// Delete permanently removes a user row.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "users", id)
}

// UsernameExists reports whether an active row claims the username.
func (r *userRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "users", "username", username, excludeID)
}

// EmailExists reports whether an active row claims the email.
func (r *userRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "users", "email", email, excludeID)
}

// CountActiveByRole counts active users holding the given role.
func (r *userRepository) CountActiveByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	query, args, err := psql.Select("id").
		From("users").
		Where(squirrel.Eq{"role": role}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	return r.db.Count(ctx, query, args...)
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var deletedAt sql.NullTime
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Role, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		u.DeletedAt = &deletedAt.Time
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
