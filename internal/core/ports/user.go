// internal/core/ports/user.go
package ports

import (
	"context"
	"time"

	"github.com/acardosi/stockroom-be/internal/core/domain"
)

// UserRepository is the persistence port for user accounts. This is the
// single canonical contract for the entity; the database adapter
// implements it.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.User, error)
	List(ctx context.Context, params UserListParams) ([]domain.User, int64, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	CountActiveByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

// CreateUserParams carries input for creating a user.
type CreateUserParams struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     domain.UserRole `json:"role"`
	Password string          `json:"password"`
}

// UpdateUserParams carries input for updating a user's profile and role.
type UpdateUserParams struct {
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     domain.UserRole `json:"role"`
}

// UserService is the facade exposed to the UI layer for user accounts.
type UserService interface {
	Create(ctx context.Context, params CreateUserParams) Result[domain.User]
	Update(ctx context.Context, id int64, params UpdateUserParams) Result[domain.User]
	GetByID(ctx context.Context, id int64, includeDeleted bool) Result[domain.User]
	List(ctx context.Context, params UserListParams) Result[Page[domain.User]]
	GetAllActive(ctx context.Context) Result[[]domain.User]
	SoftDelete(ctx context.Context, id int64) Result[Unit]
	Restore(ctx context.Context, id int64) Result[domain.User]
	HardDelete(ctx context.Context, id int64) Result[Unit]
	BulkSoftDelete(ctx context.Context, ids []int64) Result[Unit]
	BulkRestore(ctx context.Context, ids []int64) Result[Unit]

	// Store-backed synchronous reads for the UI.
	CachedByID(id int64) (domain.User, bool)
	CachedByUsername(username string) (domain.User, bool)
	CachedSearch(query string) []domain.User
	CachedCount() int
	RefreshCache()
}
