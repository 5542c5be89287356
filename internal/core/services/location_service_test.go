// internal/core/services/location_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/test/helpers"
	"github.com/acardosi/stockroom-be/test/mocks"
)

func newLocationService(t *testing.T) (*services.LocationService, *mocks.MockLocationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocationRepository(ctrl)
	return services.NewLocationService(repo, nil, helpers.TestLogger()), repo
}

func TestLocationService_SoftDelete_BlockedWhileHoldingStock(t *testing.T) {
	svc, repo := newLocationService(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(2), false).
		Return(&domain.Location{ID: 2, Name: "Main Warehouse"}, nil)
	repo.EXPECT().HasStock(gomock.Any(), int64(2)).Return(true, nil)

	res := svc.SoftDelete(context.Background(), 2)

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeConstraintViolation, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "still holds stock")
}

func TestLocationService_SoftDelete_EmptyLocation(t *testing.T) {
	svc, repo := newLocationService(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(2), false).
		Return(&domain.Location{ID: 2, Name: "Overflow"}, nil)
	repo.EXPECT().HasStock(gomock.Any(), int64(2)).Return(false, nil)
	repo.EXPECT().SoftDelete(gomock.Any(), int64(2), gomock.Any()).Return(nil)

	res := svc.SoftDelete(context.Background(), 2)
	require.True(t, res.Success, res.ErrorMessage)
}

func TestLocationService_Create_DuplicateNameRejected(t *testing.T) {
	svc, repo := newLocationService(t)
	repo.EXPECT().NameExists(gomock.Any(), "Main Warehouse", int64(0)).Return(true, nil)

	res := svc.Create(context.Background(), ports.CreateLocationParams{Name: "Main Warehouse"})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeDuplicateKey, res.ErrorCode)
}

func TestLocationService_CachedByName(t *testing.T) {
	svc, repo := newLocationService(t)
	repo.EXPECT().FindAll(gomock.Any(), false).Return([]domain.Location{
		{ID: 1, Name: "Main Warehouse"},
		{ID: 2, Name: "Storefront"},
	}, nil)
	require.True(t, svc.GetAllActive(context.Background()).Success)

	loc, ok := svc.CachedByName("storefront")
	require.True(t, ok)
	assert.Equal(t, int64(2), loc.ID)
	assert.Len(t, svc.CachedAll(), 2)
}
