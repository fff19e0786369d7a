// internal/core/services/vehicle_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

const testPublicBaseURL = "http://localhost:8080/public"

func newVehicleServiceForTest(t *testing.T) (*services.VehicleService, *mocks.MockVehicleRepository, *mocks.MockRepairRepository, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockVehicleRepository(ctrl)
	repairs := mocks.NewMockRepairRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewVehicleService(repo, repairs, cache, testPublicBaseURL, helpers.TestLogger())
	return service, repo, repairs, cache
}

func TestVehicleService_Create(t *testing.T) {
	t.Run("assigns_id_and_qr_slug", func(t *testing.T) {
		service, repo, _, _ := newVehicleServiceForTest(t)

		v := &domain.CustomerVehicle{
			CustomerName: "Ali Demir",
			Brand:        "Renault",
			Model:        "Clio",
			Plate:        " 34 abc 123 ",
		}

		repo.EXPECT().Save(gomock.Any(), v).Return(nil)

		require.NoError(t, service.Create(context.Background(), v))
		assert.NotEqual(t, uuid.Nil, v.ID)
		assert.NotEmpty(t, v.QRCode)
		assert.Equal(t, "34 ABC 123", v.Plate)
	})

	t.Run("validation_fails_for_missing_customer", func(t *testing.T) {
		service, _, _, _ := newVehicleServiceForTest(t)

		v := &domain.CustomerVehicle{Brand: "Renault", Model: "Clio", Plate: "34 ABC 123"}

		err := service.Create(context.Background(), v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer_name is required")
	})
}

func TestVehicleService_Update_KeepsQRSlug(t *testing.T) {
	service, repo, _, cache := newVehicleServiceForTest(t)

	existing := helpers.CreateTestVehicle()
	updated := helpers.CreateTestVehicle(func(v *domain.CustomerVehicle) {
		v.QRCode = "should-be-overwritten"
		v.Notes = "Yeni müşteri notu"
	})

	repo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().DeletePattern(gomock.Any(), "vehicle:plate:"+existing.Plate+":*").Return(nil)

	require.NoError(t, service.Update(context.Background(), existing.ID, updated))
	assert.Equal(t, existing.QRCode, updated.QRCode)
	assert.Equal(t, existing.ID, updated.ID)
}

func TestVehicleService_History(t *testing.T) {
	service, repo, repairs, _ := newVehicleServiceForTest(t)

	vehicle := helpers.CreateTestVehicle()
	oilDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	history := []*domain.Repair{
		helpers.CreateTestRepair(func(r *domain.Repair) {
			r.Plate = vehicle.Plate
			r.Date = oilDate
			r.OilChange = true
			r.MileageKM = 80000
		}),
		helpers.CreateTestRepair(func(r *domain.Repair) {
			r.Plate = vehicle.Plate
			r.Date = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
			r.MileageKM = 84500
		}),
	}

	repo.EXPECT().FindByID(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	repairs.EXPECT().FindByPlate(gomock.Any(), vehicle.Plate).Return(history, nil)

	got, err := service.History(context.Background(), vehicle.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Statistics.TotalRepairs)
	require.NotNil(t, got.NextOilChange)
	assert.Equal(t, 80000, got.NextOilChange.LastChangeKM)
	assert.Equal(t, 90000, got.NextOilChange.NextChangeKM)
	assert.Equal(t, 84500, got.NextOilChange.CurrentKM)
	assert.Equal(t, 5500, got.NextOilChange.RemainingKM)
	assert.False(t, got.NextOilChange.IsOverdue)
}

func TestVehicleService_PublicHistory_UnknownCode(t *testing.T) {
	service, repo, _, _ := newVehicleServiceForTest(t)

	repo.EXPECT().FindByQRCode(gomock.Any(), "nope").Return(nil, nil)

	_, err := service.PublicHistory(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestVehicleService_QRCodePNG(t *testing.T) {
	service, repo, _, _ := newVehicleServiceForTest(t)

	vehicle := helpers.CreateTestVehicle()
	repo.EXPECT().FindByID(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	png, err := service.QRCodePNG(context.Background(), vehicle.ID, 256)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
