// internal/core/services/product.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

const (
	productIndexSKU      = "sku"
	productIndexName     = "name"
	productIndexCategory = "category"
)

// ProductService handles catalog product lifecycle.
type ProductService struct {
	repo        ports.ProductRepository
	categories  ports.CategoryRepository
	inventory   ports.InventoryRepository
	store       *Store[domain.Product]
	invalidator ports.StoreInvalidator
	refresher   *Refresher
	logger      *slog.Logger
}

// Statically assert that *ProductService implements the ProductService port.
var _ ports.ProductService = (*ProductService)(nil)

// NewProductService creates a new product service.
func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, inventory ports.InventoryRepository, invalidator ports.StoreInvalidator, logger *slog.Logger) *ProductService {
	s := &ProductService{
		repo:        repo,
		categories:  categories,
		inventory:   inventory,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "products")),
	}
	s.store = NewStore(
		func(p domain.Product) int64 { return p.ID },
		IndexSpec[domain.Product]{Name: productIndexSKU, Key: func(p domain.Product) string { return strings.ToLower(p.SKU) }},
		IndexSpec[domain.Product]{Name: productIndexName, Key: func(p domain.Product) string { return strings.ToLower(p.Name) }},
		IndexSpec[domain.Product]{Name: productIndexCategory, Key: func(p domain.Product) string { return strconv.FormatInt(p.CategoryID, 10) }},
	)
	s.refresher = NewRefresher("products", s.reloadStore, s.logger)
	return s
}

func (s *ProductService) reloadStore(ctx context.Context) error {
	res := s.GetAllActive(ctx)
	if !res.Success {
		return errors.New(res.ErrorMessage)
	}
	return nil
}

// GetByID retrieves a product from the database.
func (s *ProductService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Product] {
	res := Execute(ctx, s.logger, "get product", false, func(ctx context.Context) (*domain.Product, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Product](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Product](ports.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// List returns a page of products matching params.
func (s *ProductService) List(ctx context.Context, params ports.ProductListParams) ports.Result[ports.Page[domain.Product]] {
	params.PageParams = params.Normalized()

	type listed struct {
		products []domain.Product
		total    int64
	}
	res := Execute(ctx, s.logger, "list products", true, func(ctx context.Context) (listed, error) {
		products, total, err := s.repo.List(ctx, params)
		return listed{products, total}, err
	})
	if !res.Success {
		return ports.FailFrom[ports.Page[domain.Product]](res)
	}
	return ports.Ok(ports.NewPage(res.Data.products, params.PageParams, res.Data.total))
}

// GetAllActive fetches every active product and reseeds the store.
func (s *ProductService) GetAllActive(ctx context.Context) ports.Result[[]domain.Product] {
	res := Execute(ctx, s.logger, "load active products", true, func(ctx context.Context) ([]domain.Product, error) {
		return s.repo.FindAll(ctx, false)
	})
	if !res.Success {
		return res
	}
	s.store.Initialize(res.Data)
	s.logger.DebugContext(ctx, "product store reloaded", slog.Int("count", len(res.Data)))
	return res
}

// Create validates and persists a new product.
func (s *ProductService) Create(ctx context.Context, params ports.CreateProductParams) ports.Result[domain.Product] {
	now := time.Now()
	product := domain.Product{
		SKU:          strings.TrimSpace(params.SKU),
		Name:         strings.TrimSpace(params.Name),
		Description:  params.Description,
		CategoryID:   params.CategoryID,
		SupplierID:   params.SupplierID,
		UnitPrice:    params.UnitPrice,
		UnitCost:     params.UnitCost,
		ReorderLevel: params.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if violations := product.Validate(); len(violations) > 0 {
		return validationFailure[domain.Product](violations)
	}
	if res := s.checkCategoryExists(ctx, product.CategoryID); !res.Success {
		return ports.FailFrom[domain.Product](res)
	}
	if res := s.checkIdentityAvailable(ctx, product.SKU, product.Name, 0); !res.Success {
		return ports.FailFrom[domain.Product](res)
	}

	res := Execute(ctx, s.logger, "create product", true, func(ctx context.Context) (domain.Product, error) {
		err := s.repo.Save(ctx, &product)
		return product, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert product", res.Data.ID)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindProducts)

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("id", res.Data.ID),
		slog.String("sku", res.Data.SKU))
	return res
}

// Update applies detail and pricing changes to an active product.
func (s *ProductService) Update(ctx context.Context, id int64, params ports.UpdateProductParams) ports.Result[domain.Product] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.
		WithDetails(strings.TrimSpace(params.Name), params.Description, params.CategoryID).
		WithPricing(params.UnitPrice, params.UnitCost)
	updated.ReorderLevel = params.ReorderLevel

	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Product](violations)
	}
	if updated.CategoryID != current.Data.CategoryID {
		if res := s.checkCategoryExists(ctx, updated.CategoryID); !res.Success {
			return ports.FailFrom[domain.Product](res)
		}
	}
	if res := s.checkIdentityAvailable(ctx, "", updated.Name, id); !res.Success {
		return ports.FailFrom[domain.Product](res)
	}

	res := Execute(ctx, s.logger, "update product", true, func(ctx context.Context) (domain.Product, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Update(res.Data) {
		warnStoreMiss(ctx, s.logger, "update product", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindProducts)
	return res
}

// SoftDelete marks a product deleted. Products with stock on hand are
// kept active until the stock is cleared.
func (s *ProductService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	stocked := Execute(ctx, s.logger, "check product stock", true, func(ctx context.Context) (bool, error) {
		return s.inventory.HasStockForProduct(ctx, id)
	})
	if !stocked.Success {
		return ports.FailFrom[ports.Unit](stocked)
	}
	if stocked.Data {
		return ports.Fail[ports.Unit](ports.CodeConstraintViolation,
			fmt.Sprintf("product %d still has stock on hand and cannot be deleted", id))
	}

	res := Execute(ctx, s.logger, "soft delete product", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if !res.Success {
		return res
	}

	if !s.store.Remove(id) {
		warnStoreMiss(ctx, s.logger, "remove product", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindProducts)

	s.logger.InfoContext(ctx, "product soft deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// Restore clears the soft-delete mark after re-checking SKU and name
// against the now-active set.
func (s *ProductService) Restore(ctx context.Context, id int64) ports.Result[domain.Product] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Product](ports.CodeInvalidInput, fmt.Sprintf("product %d is not deleted", id))
	}

	if res := s.checkIdentityAvailable(ctx, current.Data.SKU, current.Data.Name, id); !res.Success {
		return ports.FailFrom[domain.Product](res)
	}

	restored := current.Data.AsRestored()
	res := Execute(ctx, s.logger, "restore product", true, func(ctx context.Context) (domain.Product, error) {
		return restored, s.repo.Restore(ctx, id)
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert product", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindProducts)

	s.logger.InfoContext(ctx, "product restored", slog.Int64("id", id))
	return res
}

// HardDelete permanently removes a product. Blocked while movement
// history references it.
func (s *ProductService) HardDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	referenced := Execute(ctx, s.logger, "check product movements", true, func(ctx context.Context) (bool, error) {
		return s.inventory.HasMovementsForProduct(ctx, id)
	})
	if !referenced.Success {
		return ports.FailFrom[ports.Unit](referenced)
	}
	if referenced.Data {
		return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
			fmt.Sprintf("product %d has movement history and cannot be removed", id))
	}

	res := Execute(ctx, s.logger, "hard delete product", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.Delete(ctx, id)
	})
	if !res.Success {
		return res
	}

	s.store.Remove(id)
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindProducts)

	s.logger.InfoContext(ctx, "product hard deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// BulkSoftDelete soft deletes each ID, aggregating per-ID failures.
func (s *ProductService) BulkSoftDelete(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[ports.Unit] {
		return s.SoftDelete(ctx, id)
	}))
}

// BulkRestore restores each ID, aggregating per-ID failures.
func (s *ProductService) BulkRestore(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[domain.Product] {
		return s.Restore(ctx, id)
	}))
}

// Store-backed synchronous reads.

// CachedByID returns the product from the in-memory store.
func (s *ProductService) CachedByID(id int64) (domain.Product, bool) {
	return s.store.GetByID(id)
}

// CachedBySKU returns the product with the given SKU.
func (s *ProductService) CachedBySKU(sku string) (domain.Product, bool) {
	return s.store.GetByKey(productIndexSKU, strings.ToLower(sku))
}

// CachedByCategory returns the active products in a category.
func (s *ProductService) CachedByCategory(categoryID int64) []domain.Product {
	return s.store.GetAllByKey(productIndexCategory, strconv.FormatInt(categoryID, 10))
}

// CachedSearch matches query against SKU, name and description.
func (s *ProductService) CachedSearch(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.store.All()
	}
	return s.store.Search(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// CachedCount returns the number of active products in the store.
func (s *ProductService) CachedCount() int {
	return s.store.Count()
}

// RefreshCache kicks a non-blocking, single-flight store reload.
func (s *ProductService) RefreshCache() {
	s.refresher.Trigger()
}

func (s *ProductService) checkCategoryExists(ctx context.Context, categoryID int64) ports.Result[ports.Unit] {
	res := Execute(ctx, s.logger, "check category exists", true, func(ctx context.Context) (*domain.Category, error) {
		return s.categories.FindByID(ctx, categoryID, false)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data == nil {
		return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
			fmt.Sprintf("category %d does not exist or is deleted", categoryID))
	}
	return ports.OkUnit()
}

// checkIdentityAvailable verifies the SKU/name are free among active
// products, excluding excludeID. Empty values are skipped.
func (s *ProductService) checkIdentityAvailable(ctx context.Context, sku, name string, excludeID int64) ports.Result[ports.Unit] {
	if sku != "" {
		res := Execute(ctx, s.logger, "check sku uniqueness", true, func(ctx context.Context) (bool, error) {
			return s.repo.SKUExists(ctx, sku, excludeID)
		})
		if !res.Success {
			return ports.FailFrom[ports.Unit](res)
		}
		if res.Data {
			return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
				fmt.Sprintf("sku %q is already in use by an active product", sku))
		}
	}
	if name != "" {
		res := Execute(ctx, s.logger, "check product name uniqueness", true, func(ctx context.Context) (bool, error) {
			return s.repo.NameExists(ctx, name, excludeID)
		})
		if !res.Success {
			return ports.FailFrom[ports.Unit](res)
		}
		if res.Data {
			return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
				fmt.Sprintf("product name %q is already in use by an active product", name))
		}
	}
	return ports.OkUnit()
}
