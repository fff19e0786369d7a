// internal/handlers/vehicles_test.go
package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/handlers"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func newVehicleHandlerForTest(t *testing.T) (*handlers.VehicleHandler, *mocks.MockVehicleService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockVehicleService(ctrl)
	return handlers.NewVehicleHandler(service, helpers.TestLogger()), service
}

func testHistory() *domain.VehicleHistory {
	v := helpers.CreateTestVehicle()
	repair := helpers.CreateTestRepair(func(r *domain.Repair) { r.Plate = v.Plate })
	return &domain.VehicleHistory{
		Vehicle:    v,
		Statistics: domain.ComputeVehicleStatistics([]*domain.Repair{repair}),
		Repairs:    []*domain.Repair{repair},
	}
}

func TestVehicleHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockVehicleService)
		expectedStatus int
	}{
		{
			name: "creates_vehicle",
			body: `{"customer_name":"Ayşe Kaya","brand":"Toyota","model":"Corolla","plate":"34 ABC 123","year":2019}`,
			setupMock: func(m *mocks.MockVehicleService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects_implausible_year",
			body:           `{"customer_name":"Ayşe Kaya","brand":"Toyota","model":"Corolla","plate":"34 ABC 123","year":1800}`,
			setupMock:      func(m *mocks.MockVehicleService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newVehicleHandlerForTest(t)
			tt.setupMock(service)

			req := httptest.NewRequest("POST", "/vehicles", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestVehicleHandler_History(t *testing.T) {
	handler, service := newVehicleHandlerForTest(t)

	id := uuid.New()
	service.EXPECT().History(gomock.Any(), id).Return(testHistory(), nil)

	mux := routed("GET /vehicles/{id}/history", handler.History)
	req := httptest.NewRequest("GET", "/vehicles/"+id.String()+"/history", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"repairs"`)
}

func TestVehicleHandler_PublicHistory(t *testing.T) {
	t.Run("serves_history_by_qr_slug", func(t *testing.T) {
		handler, service := newVehicleHandlerForTest(t)
		service.EXPECT().PublicHistory(gomock.Any(), "a1b2c3d4e5f60708").Return(testHistory(), nil)

		mux := routed("GET /public/vehicles/{qr}", handler.PublicHistory)
		req := httptest.NewRequest("GET", "/public/vehicles/a1b2c3d4e5f60708", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown_slug_is_404", func(t *testing.T) {
		handler, service := newVehicleHandlerForTest(t)
		service.EXPECT().PublicHistory(gomock.Any(), "ffffffffffffffff").Return(nil, services.ErrNotFound)

		mux := routed("GET /public/vehicles/{qr}", handler.PublicHistory)
		req := httptest.NewRequest("GET", "/public/vehicles/ffffffffffffffff", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVehicleHandler_QRCode(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	t.Run("streams_png", func(t *testing.T) {
		handler, service := newVehicleHandlerForTest(t)

		id := uuid.New()
		service.EXPECT().QRCodePNG(gomock.Any(), id, 512).Return(png, nil)

		mux := routed("GET /vehicles/{id}/qrcode", handler.QRCode)
		req := httptest.NewRequest("GET", "/vehicles/"+id.String()+"/qrcode?size=512", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, png, w.Body.Bytes())
	})

	t.Run("rejects_out_of_range_size", func(t *testing.T) {
		handler, _ := newVehicleHandlerForTest(t)

		mux := routed("GET /vehicles/{id}/qrcode", handler.QRCode)
		req := httptest.NewRequest("GET", "/vehicles/"+uuid.NewString()+"/qrcode?size=4096", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
