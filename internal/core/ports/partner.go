// internal/core/ports/partner.go
package ports

import (
	"context"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// SupplierRepository is the persistence port for suppliers.
type SupplierRepository interface {
	Save(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Supplier, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Supplier, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	HasOrders(ctx context.Context, supplierID int64) (bool, error)
}

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Customer, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Customer, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	HasOrders(ctx context.Context, customerID int64) (bool, error)
}
