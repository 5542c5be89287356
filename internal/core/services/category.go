// internal/core/services/category.go
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

// CategoryService is a lighter facade over the category repository.
// Categories are small and rarely read in hot paths, so they carry no
// in-memory store.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo ports.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger.With(slog.String("service", "categories")),
	}
}

// GetByID retrieves a category from the database.
func (s *CategoryService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Category] {
	res := Execute(ctx, s.logger, "get category", false, func(ctx context.Context) (*domain.Category, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Category](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Category](ports.CodeNotFound, fmt.Sprintf("category %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// GetAllActive returns every active category.
func (s *CategoryService) GetAllActive(ctx context.Context) ports.Result[[]domain.Category] {
	return Execute(ctx, s.logger, "load active categories", true, func(ctx context.Context) ([]domain.Category, error) {
		return s.repo.FindAll(ctx, false)
	})
}

// Create validates and persists a new category.
func (s *CategoryService) Create(ctx context.Context, name, description string) ports.Result[domain.Category] {
	now := time.Now()
	category := domain.Category{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if violations := category.Validate(); len(violations) > 0 {
		return validationFailure[domain.Category](violations)
	}
	if res := s.checkNameAvailable(ctx, category.Name, 0); !res.Success {
		return ports.FailFrom[domain.Category](res)
	}

	res := Execute(ctx, s.logger, "create category", true, func(ctx context.Context) (domain.Category, error) {
		err := s.repo.Save(ctx, &category)
		return category, err
	})
	if res.Success {
		s.logger.InfoContext(ctx, "category created",
			slog.Int64("id", res.Data.ID),
			slog.String("name", res.Data.Name))
	}
	return res
}

// Update applies name and description changes to an active category.
func (s *CategoryService) Update(ctx context.Context, id int64, name, description string) ports.Result[domain.Category] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.WithDetails(strings.TrimSpace(name), description)
	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Category](violations)
	}
	if res := s.checkNameAvailable(ctx, updated.Name, id); !res.Success {
		return ports.FailFrom[domain.Category](res)
	}

	return Execute(ctx, s.logger, "update category", true, func(ctx context.Context) (domain.Category, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
}

// SoftDelete marks a category deleted. Blocked while active products
// still belong to it.
func (s *CategoryService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	inUse := Execute(ctx, s.logger, "check category products", true, func(ctx context.Context) (bool, error) {
		return s.repo.HasActiveProducts(ctx, id)
	})
	if !inUse.Success {
		return ports.FailFrom[ports.Unit](inUse)
	}
	if inUse.Data {
		return ports.Fail[ports.Unit](ports.CodeConstraintViolation,
			fmt.Sprintf("category %q still has active products and cannot be deleted", current.Data.Name))
	}

	res := Execute(ctx, s.logger, "soft delete category", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if res.Success {
		s.logger.InfoContext(ctx, "category soft deleted", slog.Int64("id", id))
	}
	return res
}

// Restore clears the soft-delete mark after re-checking the name
// against the now-active set.
func (s *CategoryService) Restore(ctx context.Context, id int64) ports.Result[domain.Category] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Category](ports.CodeInvalidInput, fmt.Sprintf("category %d is not deleted", id))
	}
	if res := s.checkNameAvailable(ctx, current.Data.Name, id); !res.Success {
		return ports.FailFrom[domain.Category](res)
	}

	restored := current.Data.AsRestored()
	return Execute(ctx, s.logger, "restore category", true, func(ctx context.Context) (domain.Category, error) {
		return restored, s.repo.Restore(ctx, id)
	})
}

func (s *CategoryService) checkNameAvailable(ctx context.Context, name string, excludeID int64) ports.Result[ports.Unit] {
	res := Execute(ctx, s.logger, "check category name uniqueness", true, func(ctx context.Context) (bool, error) {
		return s.repo.NameExists(ctx, name, excludeID)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data {
		return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
			fmt.Sprintf("category name %q is already in use", name))
	}
	return ports.OkUnit()
}
