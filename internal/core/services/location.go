// internal/core/services/location.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
)

const locationIndexName = "name"

// LocationService handles stock-location lifecycle.
type LocationService struct {
	repo        ports.LocationRepository
	store       *Store[domain.Location]
	invalidator ports.StoreInvalidator
	refresher   *Refresher
	logger      *slog.Logger
}

// Statically assert that *LocationService implements the LocationService port.
var _ ports.LocationService = (*LocationService)(nil)

// NewLocationService creates a new location service.
func NewLocationService(repo ports.LocationRepository, invalidator ports.StoreInvalidator, logger *slog.Logger) *LocationService {
	s := &LocationService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "locations")),
	}
	s.store = NewStore(
		func(l domain.Location) int64 { return l.ID },
		IndexSpec[domain.Location]{Name: locationIndexName, Key: func(l domain.Location) string { return strings.ToLower(l.Name) }},
	)
	s.refresher = NewRefresher("locations", s.reloadStore, s.logger)
	return s
}

func (s *LocationService) reloadStore(ctx context.Context) error {
	res := s.GetAllActive(ctx)
	if !res.Success {
		return errors.New(res.ErrorMessage)
	}
	return nil
}

// GetByID retrieves a location from the database.
func (s *LocationService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.Location] {
	res := Execute(ctx, s.logger, "get location", false, func(ctx context.Context) (*domain.Location, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.Location](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.Location](ports.CodeNotFound, fmt.Sprintf("location %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// List returns a page of locations matching params.
func (s *LocationService) List(ctx context.Context, params ports.LocationListParams) ports.Result[ports.Page[domain.Location]] {
	params.PageParams = params.Normalized()

	type listed struct {
		locations []domain.Location
		total     int64
	}
	res := Execute(ctx, s.logger, "list locations", true, func(ctx context.Context) (listed, error) {
		locations, total, err := s.repo.List(ctx, params)
		return listed{locations, total}, err
	})
	if !res.Success {
		return ports.FailFrom[ports.Page[domain.Location]](res)
	}
	return ports.Ok(ports.NewPage(res.Data.locations, params.PageParams, res.Data.total))
}

// GetAllActive fetches every active location and reseeds the store.
func (s *LocationService) GetAllActive(ctx context.Context) ports.Result[[]domain.Location] {
	res := Execute(ctx, s.logger, "load active locations", true, func(ctx context.Context) ([]domain.Location, error) {
		return s.repo.FindAll(ctx, false)
	})
	if !res.Success {
		return res
	}
	s.store.Initialize(res.Data)
	s.logger.DebugContext(ctx, "location store reloaded", slog.Int("count", len(res.Data)))
	return res
}

// Create validates and persists a new location.
func (s *LocationService) Create(ctx context.Context, params ports.CreateLocationParams) ports.Result[domain.Location] {
	now := time.Now()
	location := domain.Location{
		Name:      strings.TrimSpace(params.Name),
		Address:   strings.TrimSpace(params.Address),
		Notes:     params.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if violations := location.Validate(); len(violations) > 0 {
		return validationFailure[domain.Location](violations)
	}
	if res := s.checkNameAvailable(ctx, location.Name, 0); !res.Success {
		return ports.FailFrom[domain.Location](res)
	}

	res := Execute(ctx, s.logger, "create location", true, func(ctx context.Context) (domain.Location, error) {
		err := s.repo.Save(ctx, &location)
		return location, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert location", res.Data.ID)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindLocations)

	s.logger.InfoContext(ctx, "location created",
		slog.Int64("id", res.Data.ID),
		slog.String("name", res.Data.Name))
	return res
}

// Update applies address and notes changes to an active location.
func (s *LocationService) Update(ctx context.Context, id int64, params ports.UpdateLocationParams) ports.Result[domain.Location] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.WithDetails(strings.TrimSpace(params.Address), params.Notes)
	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.Location](violations)
	}

	res := Execute(ctx, s.logger, "update location", true, func(ctx context.Context) (domain.Location, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Update(res.Data) {
		warnStoreMiss(ctx, s.logger, "update location", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindLocations)
	return res
}

// SoftDelete marks a location deleted. A location still holding stock
// cannot be deleted.
func (s *LocationService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	stocked := Execute(ctx, s.logger, "check location stock", true, func(ctx context.Context) (bool, error) {
		return s.repo.HasStock(ctx, id)
	})
	if !stocked.Success {
		return ports.FailFrom[ports.Unit](stocked)
	}
	if stocked.Data {
		return ports.Fail[ports.Unit](ports.CodeConstraintViolation,
			fmt.Sprintf("location %d still holds stock and cannot be deleted", id))
	}

	res := Execute(ctx, s.logger, "soft delete location", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if !res.Success {
		return res
	}

	if !s.store.Remove(id) {
		warnStoreMiss(ctx, s.logger, "remove location", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindLocations)

	s.logger.InfoContext(ctx, "location soft deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// Restore clears the soft-delete mark after re-checking the name against
// the now-active set.
func (s *LocationService) Restore(ctx context.Context, id int64) ports.Result[domain.Location] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.Location](ports.CodeInvalidInput, fmt.Sprintf("location %d is not deleted", id))
	}

	if res := s.checkNameAvailable(ctx, current.Data.Name, id); !res.Success {
		return ports.FailFrom[domain.Location](res)
	}

	restored := current.Data.AsRestored()
	res := Execute(ctx, s.logger, "restore location", true, func(ctx context.Context) (domain.Location, error) {
		return restored, s.repo.Restore(ctx, id)
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert location", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindLocations)

	s.logger.InfoContext(ctx, "location restored", slog.Int64("id", id))
	return res
}

// HardDelete permanently removes a location. Blocked while historical
// movements reference it, preserving audit integrity.
func (s *LocationService) HardDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	referenced := Execute(ctx, s.logger, "check location movements", true, func(ctx context.Context) (bool, error) {
		return s.repo.HasMovements(ctx, id)
	})
	if !referenced.Success {
		return ports.FailFrom[ports.Unit](referenced)
	}
	if referenced.Data {
		return ports.Fail[ports.Unit](ports.CodeForeignKeyViolation,
			fmt.Sprintf("location %d has movement history and cannot be removed", id))
	}

	res := Execute(ctx, s.logger, "hard delete location", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.Delete(ctx, id)
	})
	if !res.Success {
		return res
	}

	s.store.Remove(id)
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindLocations)

	s.logger.InfoContext(ctx, "location hard deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// BulkSoftDelete soft deletes each ID, aggregating per-ID failures.
func (s *LocationService) BulkSoftDelete(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[ports.Unit] {
		return s.SoftDelete(ctx, id)
	}))
}

// BulkRestore restores each ID, aggregating per-ID failures.
func (s *LocationService) BulkRestore(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[domain.Location] {
		return s.Restore(ctx, id)
	}))
}

// Store-backed synchronous reads.

// CachedByID returns the location from the in-memory store.
func (s *LocationService) CachedByID(id int64) (domain.Location, bool) {
	return s.store.GetByID(id)
}

// CachedByName returns the location with the given name.
func (s *LocationService) CachedByName(name string) (domain.Location, bool) {
	return s.store.GetByKey(locationIndexName, strings.ToLower(name))
}

// CachedAll returns every active location in the store.
func (s *LocationService) CachedAll() []domain.Location {
	return s.store.All()
}

// CachedCount returns the number of active locations in the store.
func (s *LocationService) CachedCount() int {
	return s.store.Count()
}

// RefreshCache kicks a non-blocking, single-flight store reload.
func (s *LocationService) RefreshCache() {
	s.refresher.Trigger()
}

func (s *LocationService) checkNameAvailable(ctx context.Context, name string, excludeID int64) ports.Result[ports.Unit] {
	res := Execute(ctx, s.logger, "check location name uniqueness", true, func(ctx context.Context) (bool, error) {
		return s.repo.NameExists(ctx, name, excludeID)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data {
		return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
			fmt.Sprintf("location name %q is already in use by an active location", name))
	}
	return ports.OkUnit()
}
