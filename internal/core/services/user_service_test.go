// internal/core/services/user_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

func newUserService(t *testing.T) (*services.UserService, *mocks.MockUserRepository, *mocks.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	hasher := mocks.NewMockPasswordHasher(ctrl)
	svc := services.NewUserService(repo, hasher, nil, helpers.TestLogger())
	return svc, repo, hasher
}

func validCreateUserParams() ports.CreateUserParams {
	return ports.CreateUserParams{
		Username: "mrossi",
		Email:    "mrossi@example.com",
		FullName: "Mario Rossi",
		Role:     domain.RoleClerk,
		Password: "correct-horse",
	}
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		params        func() ports.CreateUserParams
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordHasher)
		expectedCode  ports.ErrorCode
		errorContains string
	}{
		{
			name:   "successful_create",
			params: validCreateUserParams,
			setupMocks: func(repo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher) {
				repo.EXPECT().UsernameExists(gomock.Any(), "mrossi", int64(0)).Return(false, nil)
				repo.EXPECT().EmailExists(gomock.Any(), "mrossi@example.com", int64(0)).Return(false, nil)
				hasher.EXPECT().Hash("correct-horse").Return("$2a$hash", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u *domain.User) error {
						assert.Equal(t, "$2a$hash", u.PasswordHash)
						u.ID = 7
						return nil
					})
			},
		},
		{
			name: "validation_collects_every_violation",
			params: func() ports.CreateUserParams {
				p := validCreateUserParams()
				p.Email = "not-an-address"
				p.FullName = ""
				p.Password = "short"
				return p
			},
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockPasswordHasher) {},
			expectedCode:  ports.CodeValidationFailure,
			errorContains: "email is not a valid address; full_name is required; password must be at least 8 characters",
		},
		{
			name:   "duplicate_username_rejected",
			params: validCreateUserParams,
			setupMocks: func(repo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher) {
				repo.EXPECT().UsernameExists(gomock.Any(), "mrossi", int64(0)).Return(true, nil)
			},
			expectedCode:  ports.CodeDuplicateKey,
			errorContains: `username "mrossi" is already in use`,
		},
		{
			name:   "duplicate_email_rejected",
			params: validCreateUserParams,
			setupMocks: func(repo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher) {
				repo.EXPECT().UsernameExists(gomock.Any(), "mrossi", int64(0)).Return(false, nil)
				repo.EXPECT().EmailExists(gomock.Any(), "mrossi@example.com", int64(0)).Return(true, nil)
			},
			expectedCode:  ports.CodeDuplicateKey,
			errorContains: `email "mrossi@example.com" is already in use`,
		},
		{
			name:   "db_unique_violation_classified",
			params: validCreateUserParams,
			setupMocks: func(repo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher) {
				repo.EXPECT().UsernameExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
			},
			expectedCode: ports.CodeDuplicateKey,
		},
		{
			name:   "hashing_failure_is_unexpected_error",
			params: validCreateUserParams,
			setupMocks: func(repo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher) {
				repo.EXPECT().UsernameExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("bcrypt cost out of range"))
			},
			expectedCode:  ports.CodeUnexpectedError,
			errorContains: "failed to hash password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher := newUserService(t)
			tt.setupMocks(repo, hasher)

			res := svc.Create(context.Background(), tt.params())

			if tt.expectedCode != "" {
				require.False(t, res.Success)
				assert.Equal(t, tt.expectedCode, res.ErrorCode)
				if tt.errorContains != "" {
					assert.Contains(t, res.ErrorMessage, tt.errorContains)
				}
				return
			}
			require.True(t, res.Success, res.ErrorMessage)
			assert.Equal(t, int64(7), res.Data.ID)

			cached, ok := svc.CachedByID(7)
			require.True(t, ok, "created user must land in the store")
			assert.Equal(t, "mrossi", cached.Username)
		})
	}
}

func TestUserService_Create_FailedWriteLeavesStoreUntouched(t *testing.T) {
	svc, repo, hasher := newUserService(t)
	existing := domain.User{
		ID: 1, Username: "amara", Email: "amara@example.com",
		FullName: "Amara Okafor", Role: domain.RoleAdmin,
	}
	repo.EXPECT().FindAll(gomock.Any(), false).Return([]domain.User{existing}, nil)
	require.True(t, svc.GetAllActive(context.Background()).Success)

	repo.EXPECT().UsernameExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().EmailExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	res := svc.Create(context.Background(), validCreateUserParams())
	require.False(t, res.Success)

	// The database write failed, so no orphan may land in the store.
	_, ok := svc.CachedByUsername("mrossi")
	assert.False(t, ok)
	assert.Equal(t, 1, svc.CachedCount())
}

func TestUserService_Create_StoreMissAfterWriteStillSucceeds(t *testing.T) {
	svc, repo, hasher := newUserService(t)

	// Seed the store so the insert below collides on ID 7.
	stale := domain.User{
		ID: 7, Username: "stale", Email: "stale@example.com",
		FullName: "Stale Entry", Role: domain.RoleClerk,
	}
	repo.EXPECT().FindAll(gomock.Any(), false).Return([]domain.User{stale}, nil)
	require.True(t, svc.GetAllActive(context.Background()).Success)

	repo.EXPECT().UsernameExists(gomock.Any(), "mrossi", int64(0)).Return(false, nil)
	repo.EXPECT().EmailExists(gomock.Any(), "mrossi@example.com", int64(0)).Return(false, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *domain.User) error {
			u.ID = 7
			return nil
		})

	// The database write succeeded; a store miss is only a warning.
	res := svc.Create(context.Background(), validCreateUserParams())
	require.True(t, res.Success, res.ErrorMessage)
	assert.Equal(t, int64(7), res.Data.ID)
}

func TestUserService_Update_LastAdminDemotionRejected(t *testing.T) {
	svc, repo, _ := newUserService(t)
	admin := &domain.User{
		ID: 1, Username: "root", Email: "root@example.com",
		FullName: "Root Admin", Role: domain.RoleAdmin,
	}
	repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(admin, nil)
	repo.EXPECT().EmailExists(gomock.Any(), "root@example.com", int64(1)).Return(false, nil)
	repo.EXPECT().CountActiveByRole(gomock.Any(), domain.RoleAdmin).Return(int64(1), nil)

	res := svc.Update(context.Background(), 1, ports.UpdateUserParams{
		Email: "root@example.com", FullName: "Root Admin", Role: domain.RoleClerk,
	})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "last admin")
}

func TestUserService_SoftDelete(t *testing.T) {
	t.Run("clerk_deleted_and_removed_from_store", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		clerk := domain.User{
			ID: 3, Username: "clerk", Email: "clerk@example.com",
			FullName: "Clerk", Role: domain.RoleClerk,
		}
		repo.EXPECT().FindAll(gomock.Any(), false).Return([]domain.User{clerk}, nil)
		require.True(t, svc.GetAllActive(context.Background()).Success)

		repo.EXPECT().FindByID(gomock.Any(), int64(3), false).Return(&clerk, nil)
		repo.EXPECT().SoftDelete(gomock.Any(), int64(3), gomock.Any()).Return(nil)

		res := svc.SoftDelete(context.Background(), 3)
		require.True(t, res.Success, res.ErrorMessage)

		_, ok := svc.CachedByID(3)
		assert.False(t, ok, "deleted user must leave the store")
	})

	t.Run("last_admin_rejected", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		admin := &domain.User{
			ID: 1, Username: "root", Email: "root@example.com",
			FullName: "Root", Role: domain.RoleAdmin,
		}
		repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(admin, nil)
		repo.EXPECT().CountActiveByRole(gomock.Any(), domain.RoleAdmin).Return(int64(1), nil)

		res := svc.SoftDelete(context.Background(), 1)
		require.False(t, res.Success)
		assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
		assert.Contains(t, res.ErrorMessage, "cannot delete the last admin user")
	})

	t.Run("missing_user_not_found", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(99), false).Return(nil, nil)

		res := svc.SoftDelete(context.Background(), 99)
		require.False(t, res.Success)
		assert.Equal(t, ports.CodeNotFound, res.ErrorCode)
	})
}

func TestUserService_Restore(t *testing.T) {
	deletedAt := time.Now().Add(-time.Hour)
	deleted := func() *domain.User {
		return &domain.User{
			ID: 5, Username: "ghost", Email: "ghost@example.com",
			FullName: "Ghost", Role: domain.RoleClerk, DeletedAt: &deletedAt,
		}
	}

	t.Run("restore_succeeds_and_rejoins_store", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5), true).Return(deleted(), nil)
		repo.EXPECT().UsernameExists(gomock.Any(), "ghost", int64(5)).Return(false, nil)
		repo.EXPECT().EmailExists(gomock.Any(), "ghost@example.com", int64(5)).Return(false, nil)
		repo.EXPECT().Restore(gomock.Any(), int64(5)).Return(nil)

		res := svc.Restore(context.Background(), 5)
		require.True(t, res.Success, res.ErrorMessage)
		assert.Nil(t, res.Data.DeletedAt)

		_, ok := svc.CachedByID(5)
		assert.True(t, ok)
	})

	t.Run("identity_taken_since_deletion", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5), true).Return(deleted(), nil)
		repo.EXPECT().UsernameExists(gomock.Any(), "ghost", int64(5)).Return(true, nil)

		res := svc.Restore(context.Background(), 5)
		require.False(t, res.Success)
		assert.Equal(t, ports.CodeDuplicateKey, res.ErrorCode)
	})

	t.Run("not_deleted_rejected", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		active := deleted()
		active.DeletedAt = nil
		repo.EXPECT().FindByID(gomock.Any(), int64(5), true).Return(active, nil)

		res := svc.Restore(context.Background(), 5)
		require.False(t, res.Success)
		assert.Equal(t, ports.CodeInvalidInput, res.ErrorCode)
	})
}

func TestUserService_BulkSoftDelete_PartialFailure(t *testing.T) {
	svc, repo, _ := newUserService(t)
	clerk := &domain.User{
		ID: 1, Username: "one", Email: "one@example.com",
		FullName: "One", Role: domain.RoleClerk,
	}
	repo.EXPECT().FindByID(gomock.Any(), int64(1), false).Return(clerk, nil)
	repo.EXPECT().SoftDelete(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(2), false).Return(nil, nil)

	res := svc.BulkSoftDelete(context.Background(), []int64{1, 2})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodePartialFailure, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "id 2:")
	assert.NotContains(t, res.ErrorMessage, "id 1:", "succeeded IDs must not be reported")
}

func TestUserService_CachedReads(t *testing.T) {
	svc, repo, _ := newUserService(t)
	users := []domain.User{
		{ID: 1, Username: "amara", Email: "amara@example.com", FullName: "Amara Okafor", Role: domain.RoleAdmin},
		{ID: 2, Username: "bruno", Email: "bruno@example.com", FullName: "Bruno Costa", Role: domain.RoleClerk},
	}
	repo.EXPECT().FindAll(gomock.Any(), false).Return(users, nil)
	require.True(t, svc.GetAllActive(context.Background()).Success)

	byName, ok := svc.CachedByUsername("AMARA")
	require.True(t, ok, "username lookup is case-insensitive")
	assert.Equal(t, int64(1), byName.ID)

	matched := svc.CachedSearch("costa")
	require.Len(t, matched, 1)
	assert.Equal(t, "bruno", matched[0].Username)

	assert.Len(t, svc.CachedSearch(""), 2, "empty query returns everything")
	assert.Equal(t, 2, svc.CachedCount())
}
