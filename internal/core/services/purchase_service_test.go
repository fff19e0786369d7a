// internal/core/services/purchase_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/report"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func TestPurchaseService_Create(t *testing.T) {
	supplierID := uuid.New()

	tests := []struct {
		name          string
		purchase      *domain.Purchase
		setupMocks    func(*mocks.MockPurchaseRepository, *mocks.MockSupplierRepository, *mocks.MockCacheRepository)
		expectedError bool
		errorContains string
	}{
		{
			name: "successful_create",
			purchase: helpers.CreateTestPurchase(func(p *domain.Purchase) {
				p.SupplierID = supplierID
			}),
			setupMocks: func(repo *mocks.MockPurchaseRepository, suppliers *mocks.MockSupplierRepository, cache *mocks.MockCacheRepository) {
				suppliers.EXPECT().
					FindByID(gomock.Any(), supplierID).
					Return(&domain.Supplier{ID: supplierID, ShopName: "Yilmaz Yedek Parca"}, nil)
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().
					DeletePattern(gomock.Any(), "analysis:*").
					Return(nil)
			},
		},
		{
			name: "validation_fails_for_missing_part_name",
			purchase: helpers.CreateTestPurchase(func(p *domain.Purchase) {
				p.PartName = ""
			}),
			setupMocks:    func(*mocks.MockPurchaseRepository, *mocks.MockSupplierRepository, *mocks.MockCacheRepository) {},
			expectedError: true,
			errorContains: "part_name is required",
		},
		{
			name: "validation_fails_for_zero_quantity",
			purchase: helpers.CreateTestPurchase(func(p *domain.Purchase) {
				p.Quantity = 0
			}),
			setupMocks:    func(*mocks.MockPurchaseRepository, *mocks.MockSupplierRepository, *mocks.MockCacheRepository) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
		{
			name: "fails_for_unknown_supplier",
			purchase: helpers.CreateTestPurchase(func(p *domain.Purchase) {
				p.SupplierID = supplierID
			}),
			setupMocks: func(repo *mocks.MockPurchaseRepository, suppliers *mocks.MockSupplierRepository, cache *mocks.MockCacheRepository) {
				suppliers.EXPECT().
					FindByID(gomock.Any(), supplierID).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "not found",
		},
		{
			name: "repository_error_is_wrapped",
			purchase: helpers.CreateTestPurchase(func(p *domain.Purchase) {
				p.SupplierID = supplierID
			}),
			setupMocks: func(repo *mocks.MockPurchaseRepository, suppliers *mocks.MockSupplierRepository, cache *mocks.MockCacheRepository) {
				suppliers.EXPECT().
					FindByID(gomock.Any(), supplierID).
					Return(&domain.Supplier{ID: supplierID, ShopName: "Yilmaz Yedek Parca"}, nil)
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "failed to save purchase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPurchaseRepository(ctrl)
			suppliers := mocks.NewMockSupplierRepository(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(repo, suppliers, cache)

			service := services.NewPurchaseService(repo, suppliers, cache, helpers.TestLogger())

			err := service.Create(context.Background(), tt.purchase)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, tt.purchase.ID)
			assert.Equal(t, "Yilmaz Yedek Parca", tt.purchase.SupplierName)
			assert.True(t, tt.purchase.TotalCost.Equal(tt.purchase.UnitPrice.Mul(decimal.NewFromInt(int64(tt.purchase.Quantity)))))
		})
	}
}

func TestPurchaseService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPurchaseRepository(ctrl)
	suppliers := mocks.NewMockSupplierRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewPurchaseService(repo, suppliers, cache, helpers.TestLogger())

	t.Run("returns_purchase", func(t *testing.T) {
		expected := helpers.CreateTestPurchase()
		repo.EXPECT().FindByID(gomock.Any(), expected.ID).Return(expected, nil)

		got, err := service.GetByID(context.Background(), expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected.ID, got.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := service.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestPurchaseService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPurchaseRepository(ctrl)
	suppliers := mocks.NewMockSupplierRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewPurchaseService(repo, suppliers, cache, helpers.TestLogger())

	items := []*domain.Purchase{
		helpers.CreateTestPurchase(),
		helpers.CreateTestPurchase(),
	}

	q := report.NewQuery(report.DefaultPageSize).WithPage(1)
	repo.EXPECT().FindAll(gomock.Any(), q).Return(items, int64(42), nil)

	page, err := service.List(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 42, page.TotalItems)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestPurchaseService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		permanent  bool
		setupMocks func(id uuid.UUID, repo *mocks.MockPurchaseRepository, cache *mocks.MockCacheRepository)
	}{
		{
			name: "soft_delete_by_default",
			setupMocks: func(id uuid.UUID, repo *mocks.MockPurchaseRepository, cache *mocks.MockCacheRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(helpers.CreateTestPurchase(func(p *domain.Purchase) { p.ID = id }), nil)
				repo.EXPECT().SoftDelete(gomock.Any(), id).Return(nil)
				cache.EXPECT().DeletePattern(gomock.Any(), "analysis:*").Return(nil)
			},
		},
		{
			name:      "permanent_delete_when_requested",
			permanent: true,
			setupMocks: func(id uuid.UUID, repo *mocks.MockPurchaseRepository, cache *mocks.MockCacheRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(helpers.CreateTestPurchase(func(p *domain.Purchase) { p.ID = id }), nil)
				repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
				cache.EXPECT().DeletePattern(gomock.Any(), "analysis:*").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPurchaseRepository(ctrl)
			suppliers := mocks.NewMockSupplierRepository(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)

			id := uuid.New()
			tt.setupMocks(id, repo, cache)

			service := services.NewPurchaseService(repo, suppliers, cache, helpers.TestLogger())
			require.NoError(t, service.Delete(context.Background(), id, tt.permanent))
		})
	}
}
