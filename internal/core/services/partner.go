// internal/core/services/partner.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// SupplierService is a lighter facade over the supplier repository.
type SupplierService struct {
	repo   ports.SupplierRepository
	logger *slog.Logger
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(repo ports.SupplierRepository, logger *slog.Logger) *SupplierService {
	return &SupplierService{
		repo:   repo,
		logger: logger.With(slog.String("service", "suppliers")),
	}
}

// GetByID retrieves a supplier from the database.
func (s *SupplierService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Supplier] {
	res := Execute(ctx, s.logger, "get supplier", false, func(ctx context.Context) (*domain.Supplier, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Supplier](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Supplier](ports.CodeNotFound, fmt.Sprintf("supplier %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// GetAllActive returns every active supplier.
func (s *SupplierService) GetAllActive(ctx context.Context) ports.Result[[]domain.Supplier] {
	return Execute(ctx, s.logger, "load active suppliers", true, func(ctx context.Context) ([]domain.Supplier, error) {
		return s.repo.FindAll(ctx, false)
	})
}

// Create validates and persists a new supplier.
func (s *SupplierService) Create(ctx context.Context, supplier domain.Supplier) ports.Result[domain.Supplier] {
	now := time.Now()
	supplier.ID = 0
	supplier.Name = strings.TrimSpace(supplier.Name)
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	supplier.DeletedAt = nil

	if violations := supplier.Validate(); len(violations) > 0 {
		return validationFailure[domain.Supplier](violations)
	}
	if res := supplierNameAvailable(ctx, s.logger, s.repo, supplier.Name, 0); !res.Success {
		return ports.FailFrom[domain.Supplier](res)
	}

	res := Execute(ctx, s.logger, "create supplier", true, func(ctx context.Context) (domain.Supplier, error) {
		err := s.repo.Save(ctx, &supplier)
		return supplier, err
	})
	if res.Success {
		s.logger.InfoContext(ctx, "supplier created",
			slog.Int64("id", res.Data.ID),
			slog.String("name", res.Data.Name))
	}
	return res
}

// Update applies contact changes to an active supplier.
func (s *SupplierService) Update(ctx context.Context, id int64, contactName, email, phone, address string) ports.Result[domain.Supplier] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.WithContact(contactName, email, phone, address)
	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Supplier](violations)
	}

	return Execute(ctx, s.logger, "update supplier", true, func(ctx context.Context) (domain.Supplier, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
}

// SoftDelete marks a supplier deleted. Order history does not block the
// soft delete; the supplier simply disappears from active listings.
func (s *SupplierService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	res := Execute(ctx, s.logger, "soft delete supplier", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if res.Success {
		s.logger.InfoContext(ctx, "supplier soft deleted", slog.Int64("id", id))
	}
	return res
}

// Restore clears the soft-delete mark after re-checking the name
// against the now-active set.
func (s *SupplierService) Restore(ctx context.Context, id int64) ports.Result[domain.Supplier] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Supplier](ports.CodeInvalidInput, fmt.Sprintf("supplier %d is not deleted", id))
	}
	if res := supplierNameAvailable(ctx, s.logger, s.repo, current.Data.Name, id); !res.Success {
		return ports.FailFrom[domain.Supplier](res)
	}

	restored := current.Data.AsRestored()
	return Execute(ctx, s.logger, "restore supplier", true, func(ctx context.Context) (domain.Supplier, error) {
		return restored, s.repo.Restore(ctx, id)
	})
}

func supplierNameAvailable(ctx context.Context, logger *slog.Logger, repo ports.SupplierRepository, name string, excludeID int64) ports.Result[ports.Unit] {
	res := Execute(ctx, logger, "check supplier name uniqueness", true, func(ctx context.Context) (bool, error) {
		return repo.NameExists(ctx, name, excludeID)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data {
		return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
			fmt.Sprintf("supplier name %q is already in use", name))
	}
	return ports.OkUnit()
}

// CustomerService is a lighter facade over the customer repository.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo ports.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger.With(slog.String("service", "customers")),
	}
}

// GetByID retrieves a customer from the database.
func (s *CustomerService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Customer] {
	res := Execute(ctx, s.logger, "get customer", false, func(ctx context.Context) (*domain.Customer, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Customer](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Customer](ports.CodeNotFound, fmt.Sprintf("customer %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// GetAllActive returns every active customer.
func (s *CustomerService) GetAllActive(ctx context.Context) ports.Result[[]domain.Customer] {
	return Execute(ctx, s.logger, "load active customers", true, func(ctx context.Context) ([]domain.Customer, error) {
		return s.repo.FindAll(ctx, false)
	})
}

// Create validates and persists a new customer.
func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) ports.Result[domain.Customer] {
	now := time.Now()
	customer.ID = 0
	customer.Name = strings.TrimSpace(customer.Name)
	customer.CreatedAt = now
	customer.UpdatedAt = now
	customer.DeletedAt = nil

	if violations := customer.Validate(); len(violations) > 0 {
		return validationFailure[domain.Customer](violations)
	}
	if res := customerNameAvailable(ctx, s.logger, s.repo, customer.Name, 0); !res.Success {
		return ports.FailFrom[domain.Customer](res)
	}

	res := Execute(ctx, s.logger, "create customer", true, func(ctx context.Context) (domain.Customer, error) {
		err := s.repo.Save(ctx, &customer)
		return customer, err
	})
	if res.Success {
		s.logger.InfoContext(ctx, "customer created",
			slog.Int64("id", res.Data.ID),
			slog.String("name", res.Data.Name))
	}
	return res
}

// Update applies contact changes to an active customer.
func (s *CustomerService) Update(ctx context.Context, id int64, email, phone, address string) ports.Result[domain.Customer] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.WithContact(email, phone, address)
	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Customer](violations)
	}

	return Execute(ctx, s.logger, "update customer", true, func(ctx context.Context) (domain.Customer, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
}

// SoftDelete marks a customer deleted.
func (s *CustomerService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	res := Execute(ctx, s.logger, "soft delete customer", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if res.Success {
		s.logger.InfoContext(ctx, "customer soft deleted", slog.Int64("id", id))
	}
	return res
}

// Restore clears the soft-delete mark after re-checking the name
// against the now-active set.
func (s *CustomerService) Restore(ctx context.Context, id int64) ports.Result[domain.Customer] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Customer](ports.CodeInvalidInput, fmt.Sprintf("customer %d is not deleted", id))
	}
	if res := customerNameAvailable(ctx, s.logger, s.repo, current.Data.Name, id); !res.Success {
		return ports.FailFrom[domain.Customer](res)
	}

	restored := current.Data.AsRestored()
	return Execute(ctx, s.logger, "restore customer", true, func(ctx context.Context) (domain.Customer, error) {
		return restored, s.repo.Restore(ctx, id)
	})
}

func customerNameAvailable(ctx context.Context, logger *slog.Logger, repo ports.CustomerRepository, name string, excludeID int64) ports.Result[ports.Unit] {
	res := Execute(ctx, logger, "check customer name uniqueness", true, func(ctx context.Context) (bool, error) {
		return repo.NameExists(ctx, name, excludeID)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data {
		return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
			fmt.Sprintf("customer name %q is already in use", name))
	}
	return ports.OkUnit()
}
