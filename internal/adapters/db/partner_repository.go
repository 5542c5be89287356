// internal/adapters/db/partner_repository.go
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

var supplierColumns = []string{
	"id", "name", "contact_name", "email", "phone", "address",
	"created_at", "updated_at", "deleted_at",
}

var customerColumns = []string{
	"id", "name", "email", "phone", "address",
	"created_at", "updated_at", "deleted_at",
}

// supplierRepository implements ports.SupplierRepository
type supplierRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *Database, logger *slog.Logger) ports.SupplierRepository {
	return &supplierRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "suppliers")),
	}
}

func (r *supplierRepository) Save(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		supplier.Name, supplier.ContactName, supplier.Email, supplier.Phone, supplier.Address,
		supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}

	r.logger.DebugContext(ctx, "supplier saved",
		slog.Int64("id", supplier.ID),
		slog.String("name", supplier.Name))

	return nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		UPDATE suppliers SET
			name = $2, contact_name = $3, email = $4, phone = $5,
			address = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Email,
		supplier.Phone, supplier.Address, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("suppliers", supplier.ID)
	}

	return nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Supplier, error) {
	qb := psql.Select(supplierColumns...).
		From("suppliers").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanSupplierRow)
}

func (r *supplierRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Supplier, error) {
	qb := psql.Select(supplierColumns...).
		From("suppliers").
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
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]domain.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplierRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "suppliers", id, at)
}

func (r *supplierRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "suppliers", id)
}

func (r *supplierRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "suppliers", "name", name, excludeID)
}

func (r *supplierRepository) HasOrders(ctx context.Context, supplierID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("orders").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

func scanSupplierRow(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	var contactName, email, phone, address sql.NullString
	var deletedAt sql.NullTime
	err := row.Scan(
		&s.ID, &s.Name, &contactName, &email, &phone, &address,
		&s.CreatedAt, &s.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ContactName = contactName.String
	s.Email = email.String
	s.Phone = phone.String
	s.Address = address.String
	if deletedAt.Valid {
		s.DeletedAt = &deletedAt.Time
	}
	return &s, nil
}

// customerRepository implements ports.CustomerRepository
type customerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *Database, logger *slog.Logger) ports.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "customers")),
	}
}

func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	r.logger.DebugContext(ctx, "customer saved",
		slog.Int64("id", customer.ID),
		slog.String("name", customer.Name))

	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers SET
			name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.Address, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsAffected("customers", customer.ID)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Customer, error) {
	qb := psql.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		qb = qb.Where("deleted_at IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ScanOne(r.db.QueryRow(ctx, query, args...), scanCustomerRow)
}

func (r *customerRepository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Customer, error) {
	qb := psql.Select(customerColumns...).
		From("customers").
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
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return softDeleteRow(ctx, r.db, "customers", id, at)
}

func (r *customerRepository) Restore(ctx context.Context, id int64) error {
	return restoreRow(ctx, r.db, "customers", id)
}

func (r *customerRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return identityTaken(ctx, r.db, "customers", "name", name, excludeID)
}

func (r *customerRepository) HasOrders(ctx context.Context, customerID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("orders").
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}
	return r.db.Exists(ctx, query, args...)
}

func scanCustomerRow(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var email, phone, address sql.NullString
	var deletedAt sql.NullTime
	err := row.Scan(
		&c.ID, &c.Name, &email, &phone, &address,
		&c.CreatedAt, &c.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Email = email.String
	c.Phone = phone.String
	c.Address = address.String
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.Time
	}
	return &c, nil
}
