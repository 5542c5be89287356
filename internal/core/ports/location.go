// internal/core/ports/location.go
package ports

import (
	"context"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// LocationRepository is the persistence port for stock locations.
type LocationRepository interface {
	Save(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, location *domain.Location) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Location, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Location, error)
	List(ctx context.Context, params LocationListParams) ([]domain.Location, int64, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	HasStock(ctx context.Context, locationID int64) (bool, error)
	HasMovements(ctx context.Context, locationID int64) (bool, error)
}

// CreateLocationParams carries input for creating a location.
type CreateLocationParams struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateLocationParams carries input for updating a location.
type UpdateLocationParams struct {
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// LocationService is the facade exposed to the UI layer for locations.
type LocationService interface {
	Create(ctx context.Context, params CreateLocationParams) Result[domain.Location]
	Update(ctx context.Context, id int64, params UpdateLocationParams) Result[domain.Location]
	GetByID(ctx context.Context, id int64, includeDeleted bool) Result[domain.Location]
	List(ctx context.Context, params LocationListParams) Result[Page[domain.Location]]
	GetAllActive(ctx context.Context) Result[[]domain.Location]
	SoftDelete(ctx context.Context, id int64) Result[Unit]
	Restore(ctx context.Context, id int64) Result[domain.Location]
	HardDelete(ctx context.Context, id int64) Result[Unit]
	BulkSoftDelete(ctx context.Context, ids []int64) Result[Unit]
	BulkRestore(ctx context.Context, ids []int64) Result[Unit]

	CachedByID(id int64) (domain.Location, bool)
	CachedByName(name string) (domain.Location, bool)
	CachedAll() []domain.Location
	CachedCount() int
	RefreshCache()
}
