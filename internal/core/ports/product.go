// internal/core/ports/product.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// ProductRepository is the persistence port for catalog products.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Product, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Product, error)
	List(ctx context.Context, params ProductListParams) ([]domain.Product, int64, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

// CategoryRepository is the persistence port for product categories.
type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Category, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Category, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	HasActiveProducts(ctx context.Context, categoryID int64) (bool, error)
}

// CreateProductParams carries input for creating a product.
type CreateProductParams struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   int64           `json:"category_id"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderLevel int             `json:"reorder_level"`
}

// UpdateProductParams carries input for updating a product.
type UpdateProductParams struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   int64           `json:"category_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderLevel int             `json:"reorder_level"`
}

// ProductService is the facade exposed to the UI layer for products.
type ProductService interface {
	Create(ctx context.Context, params CreateProductParams) Result[domain.Product]
	Update(ctx context.Context, id int64, params UpdateProductParams) Result[domain.Product]
	GetByID(ctx context.Context, id int64, includeDeleted bool) Result[domain.Product]
	List(ctx context.Context, params ProductListParams) Result[Page[domain.Product]]
	GetAllActive(ctx context.Context) Result[[]domain.Product]
	SoftDelete(ctx context.Context, id int64) Result[Unit]
	Restore(ctx context.Context, id int64) Result[domain.Product]
	HardDelete(ctx context.Context, id int64) Result[Unit]
	BulkSoftDelete(ctx context.Context, ids []int64) Result[Unit]
	BulkRestore(ctx context.Context, ids []int64) Result[Unit]

	CachedByID(id int64) (domain.Product, bool)
	CachedBySKU(sku string) (domain.Product, bool)
	CachedByCategory(categoryID int64) []domain.Product
	CachedSearch(query string) []domain.Product
	CachedCount() int
	RefreshCache()
}
