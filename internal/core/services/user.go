// internal/core/services/user.go
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

const (
	userIndexUsername = "username"
	userIndexEmail    = "email"
	userIndexRole     = "role"

	minPasswordLength = 8
)

// UserService handles user account lifecycle: validated writes against
// the repository (source of truth) and synchronous reads from the
// in-memory store.
type UserService struct {
	repo        ports.UserRepository
	store       *Store[domain.User]
	hasher      ports.PasswordHasher
	invalidator ports.StoreInvalidator
	refresher   *Refresher
	logger      *slog.Logger
}

// Statically assert that *UserService implements the UserService port.
var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new user service. invalidator may be nil in
// single-replica deployments.
func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, invalidator ports.StoreInvalidator, logger *slog.Logger) *UserService {
	s := &UserService{
		repo:        repo,
		hasher:      hasher,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "users")),
	}
	s.store = NewStore(
		func(u domain.User) int64 { return u.ID },
		IndexSpec[domain.User]{Name: userIndexUsername, Key: func(u domain.User) string { return strings.ToLower(u.Username) }},
		IndexSpec[domain.User]{Name: userIndexEmail, Key: func(u domain.User) string { return strings.ToLower(u.Email) }},
		IndexSpec[domain.User]{Name: userIndexRole, Key: func(u domain.User) string { return string(u.Role) }},
	)
	s.refresher = NewRefresher("users", s.reloadStore, s.logger)
	return s
}

func (s *UserService) reloadStore(ctx context.Context) error {
	res := s.GetAllActive(ctx)
	if !res.Success {
		return errors.New(res.ErrorMessage)
	}
	return nil
}

// GetByID retrieves a user from the database.
func (s *UserService) GetByID(ctx context.Context, id int64, includeDeleted bool) ports.Result[domain.User] {
	res := Execute(ctx, s.logger, "get user", false, func(ctx context.Context) (*domain.User, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
	if !res.Success {
		return ports.FailFrom[domain.User](res)
	}
	if res.Data == nil {
		return ports.Fail[domain.User](ports.CodeNotFound, fmt.Sprintf("user %d not found", id))
	}
	return ports.Ok(*res.Data)
}

// List returns a page of users matching params.
func (s *UserService) List(ctx context.Context, params ports.UserListParams) ports.Result[ports.Page[domain.User]] {
	params.PageParams = params.Normalized()

	type listed struct {
		users []domain.User
		total int64
	}
	res := Execute(ctx, s.logger, "list users", true, func(ctx context.Context) (listed, error) {
		users, total, err := s.repo.List(ctx, params)
		return listed{users, total}, err
	})
	if !res.Success {
		return ports.FailFrom[ports.Page[domain.User]](res)
	}
	return ports.Ok(ports.NewPage(res.Data.users, params.PageParams, res.Data.total))
}

// GetAllActive fetches every active user and reseeds the store. This is
// the designated cache-warming path.
func (s *UserService) GetAllActive(ctx context.Context) ports.Result[[]domain.User] {
	res := Execute(ctx, s.logger, "load active users", true, func(ctx context.Context) ([]domain.User, error) {
		return s.repo.FindAll(ctx, false)
	})
	if !res.Success {
		return res
	}
	s.store.Initialize(res.Data)
	s.logger.DebugContext(ctx, "user store reloaded", slog.Int("count", len(res.Data)))
	return res
}

// Create validates and persists a new user, then inserts it into the store.
func (s *UserService) Create(ctx context.Context, params ports.CreateUserParams) ports.Result[domain.User] {
	now := time.Now()
	user := domain.User{
		Username:  strings.TrimSpace(params.Username),
		Email:     strings.TrimSpace(params.Email),
		FullName:  strings.TrimSpace(params.FullName),
		Role:      params.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	violations := user.Validate()
	if len(params.Password) < minPasswordLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(violations) > 0 {
		return validationFailure[domain.User](violations)
	}

	if res := s.checkIdentityAvailable(ctx, user.Username, user.Email, 0); !res.Success {
		return ports.FailFrom[domain.User](res)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hashing failed", slog.String("error", err.Error()))
		return ports.Fail[domain.User](ports.CodeUnexpectedError, "failed to hash password")
	}
	user.PasswordHash = hash

	res := Execute(ctx, s.logger, "create user", true, func(ctx context.Context) (domain.User, error) {
		err := s.repo.Save(ctx, &user)
		return user, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert user", res.Data.ID)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindUsers)

	s.logger.InfoContext(ctx, "user created",
		slog.Int64("id", res.Data.ID),
		slog.String("username", res.Data.Username))
	return res
}

// Update applies profile and role changes to an active user.
func (s *UserService) Update(ctx context.Context, id int64, params ports.UpdateUserParams) ports.Result[domain.User] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return current
	}

	updated := current.Data.
		WithProfile(strings.TrimSpace(params.Email), strings.TrimSpace(params.FullName)).
		WithRole(params.Role)

	if violations := updated.Validate(); len(violations) > 0 {
		return validationFailure[domain.User](violations)
	}

	if res := s.checkIdentityAvailable(ctx, "", updated.Email, id); !res.Success {
		return ports.FailFrom[domain.User](res)
	}

	// Demoting the only remaining admin would lock everyone out.
	if current.Data.Role == domain.RoleAdmin && updated.Role != domain.RoleAdmin {
		if res := s.checkNotLastAdmin(ctx, "demote"); !res.Success {
			return ports.FailFrom[domain.User](res)
		}
	}

	res := Execute(ctx, s.logger, "update user", true, func(ctx context.Context) (domain.User, error) {
		err := s.repo.Update(ctx, &updated)
		return updated, err
	})
	if !res.Success {
		return res
	}

	if !s.store.Update(res.Data) {
		warnStoreMiss(ctx, s.logger, "update user", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindUsers)
	return res
}

// SoftDelete marks an active user deleted and drops it from the store.
func (s *UserService) SoftDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, false)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	if current.Data.Role == domain.RoleAdmin {
		if res := s.checkNotLastAdmin(ctx, "delete"); !res.Success {
			return res
		}
	}

	res := Execute(ctx, s.logger, "soft delete user", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.SoftDelete(ctx, id, time.Now())
	})
	if !res.Success {
		return res
	}

	if !s.store.Remove(id) {
		warnStoreMiss(ctx, s.logger, "remove user", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindUsers)

	s.logger.InfoContext(ctx, "user soft deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// Restore clears the soft-delete mark. The username and email are
// re-checked against the now-active set: another account may have taken
// the identity since the deletion.
func (s *UserService) Restore(ctx context.Context, id int64) ports.Result[domain.User] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return current
	}
	if !current.Data.IsDeleted() {
		return ports.Fail[domain.User](ports.CodeInvalidInput, fmt.Sprintf("user %d is not deleted", id))
	}

	if res := s.checkIdentityAvailable(ctx, current.Data.Username, current.Data.Email, id); !res.Success {
		return ports.FailFrom[domain.User](res)
	}

	restored := current.Data.AsRestored()
	res := Execute(ctx, s.logger, "restore user", true, func(ctx context.Context) (domain.User, error) {
		return restored, s.repo.Restore(ctx, id)
	})
	if !res.Success {
		return res
	}

	if !s.store.Insert(res.Data) {
		warnStoreMiss(ctx, s.logger, "insert user", id)
	}
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindUsers)

	s.logger.InfoContext(ctx, "user restored", slog.Int64("id", id))
	return res
}

// HardDelete permanently removes a user record.
func (s *UserService) HardDelete(ctx context.Context, id int64) ports.Result[ports.Unit] {
	current := s.GetByID(ctx, id, true)
	if !current.Success {
		return ports.FailFrom[ports.Unit](current)
	}

	if !current.Data.IsDeleted() && current.Data.Role == domain.RoleAdmin {
		if res := s.checkNotLastAdmin(ctx, "delete"); !res.Success {
			return res
		}
	}

	res := Execute(ctx, s.logger, "hard delete user", true, func(ctx context.Context) (ports.Unit, error) {
		return ports.Unit{}, s.repo.Delete(ctx, id)
	})
	if !res.Success {
		return res
	}

	s.store.Remove(id)
	publishInvalidation(ctx, s.logger, s.invalidator, ports.KindUsers)

	s.logger.InfoContext(ctx, "user hard deleted", slog.Int64("id", id))
	return ports.OkUnit()
}

// BulkSoftDelete soft deletes each ID, aggregating per-ID failures.
func (s *UserService) BulkSoftDelete(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[ports.Unit] {
		return s.SoftDelete(ctx, id)
	}))
}

// BulkRestore restores each ID, aggregating per-ID failures.
func (s *UserService) BulkRestore(ctx context.Context, ids []int64) ports.Result[ports.Unit] {
	return bulkApply(ids, asBulkOp(func(id int64) ports.Result[domain.User] {
		return s.Restore(ctx, id)
	}))
}

// Store-backed synchronous reads. These never touch the database.

// CachedByID returns the user from the in-memory store.
func (s *UserService) CachedByID(id int64) (domain.User, bool) {
	return s.store.GetByID(id)
}

// CachedByUsername returns the user with the given username.
func (s *UserService) CachedByUsername(username string) (domain.User, bool) {
	return s.store.GetByKey(userIndexUsername, strings.ToLower(username))
}

// CachedSearch matches query against username, email and full name.
func (s *UserService) CachedSearch(query string) []domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.store.All()
	}
	return s.store.Search(func(u domain.User) bool {
		return strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.FullName), q)
	})
}

// CachedCount returns the number of active users in the store.
func (s *UserService) CachedCount() int {
	return s.store.Count()
}

// RefreshCache kicks a non-blocking, single-flight store reload.
func (s *UserService) RefreshCache() {
	s.refresher.Trigger()
}

// checkIdentityAvailable verifies the username/email are free among
// active users, excluding excludeID. Empty values are skipped.
func (s *UserService) checkIdentityAvailable(ctx context.Context, username, email string, excludeID int64) ports.Result[ports.Unit] {
	if username != "" {
		res := Execute(ctx, s.logger, "check username uniqueness", true, func(ctx context.Context) (bool, error) {
			return s.repo.UsernameExists(ctx, username, excludeID)
		})
		if !res.Success {
			return ports.FailFrom[ports.Unit](res)
		}
		if res.Data {
			return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
				fmt.Sprintf("username %q is already in use by an active user", username))
		}
	}
	if email != "" {
		res := Execute(ctx, s.logger, "check email uniqueness", true, func(ctx context.Context) (bool, error) {
			return s.repo.EmailExists(ctx, email, excludeID)
		})
		if !res.Success {
			return ports.FailFrom[ports.Unit](res)
		}
		if res.Data {
			return ports.Fail[ports.Unit](ports.CodeDuplicateKey,
				fmt.Sprintf("email %q is already in use by an active user", email))
		}
	}
	return ports.OkUnit()
}

// checkNotLastAdmin rejects the operation when only one active admin
// remains. Exactly one admin must exist at all times.
func (s *UserService) checkNotLastAdmin(ctx context.Context, action string) ports.Result[ports.Unit] {
	res := Execute(ctx, s.logger, "count active admins", true, func(ctx context.Context) (int64, error) {
		return s.repo.CountActiveByRole(ctx, domain.RoleAdmin)
	})
	if !res.Success {
		return ports.FailFrom[ports.Unit](res)
	}
	if res.Data <= 1 {
		return ports.Fail[ports.Unit](ports.CodeConstraintViolation,
			fmt.Sprintf("cannot %s the last admin user", action))
	}
	return ports.OkUnit()
}
