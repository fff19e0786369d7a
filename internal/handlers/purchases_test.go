// internal/handlers/purchases_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/handlers"
	"github.com/sondurak/garage-be/internal/pkg/paging"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func newPurchaseHandlerForTest(t *testing.T) (*handlers.PurchaseHandler, *mocks.MockPurchaseService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockPurchaseService(ctrl)
	return handlers.NewPurchaseHandler(service, helpers.TestLogger()), service
}

// routed registers the handler on a mux so r.PathValue works in tests.
func routed(pattern string, h http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	return mux
}

func TestPurchaseHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockPurchaseService)
		expectedStatus int
	}{
		{
			name: "returns_purchase",
			id:   uuid.NewString(),
			setupMock: func(m *mocks.MockPurchaseService) {
				m.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(helpers.CreateTestPurchase(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects_malformed_id",
			id:             "not-a-uuid",
			setupMock:      func(m *mocks.MockPurchaseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "maps_not_found",
			id:   uuid.NewString(),
			setupMock: func(m *mocks.MockPurchaseService) {
				m.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newPurchaseHandlerForTest(t)
			tt.setupMock(service)

			mux := routed("GET /purchases/{id}", handler.Get)
			req := httptest.NewRequest("GET", "/purchases/"+tt.id, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPurchaseHandler_List(t *testing.T) {
	handler, service := newPurchaseHandlerForTest(t)

	items := []*domain.Purchase{helpers.CreateTestPurchase(), helpers.CreateTestPurchase()}
	service.EXPECT().List(gomock.Any(), gomock.Any()).Return(paging.New(items, 2, 1, 20), nil)

	req := httptest.NewRequest("GET", "/purchases?page=1&search=balata", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Items      []json.RawMessage `json:"items"`
		TotalItems int               `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalItems)
}

func TestPurchaseHandler_Create(t *testing.T) {
	supplierID := uuid.NewString()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockPurchaseService)
		expectedStatus int
	}{
		{
			name: "creates_purchase",
			body: fmt.Sprintf(`{"supplier_id":%q,"part_name":"Fren Balatası","quantity":2,"unit_price":"450.00"}`, supplierID),
			setupMock: func(m *mocks.MockPurchaseService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects_missing_supplier",
			body:           `{"part_name":"Fren Balatası"}`,
			setupMock:      func(m *mocks.MockPurchaseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_missing_part_name",
			body:           fmt.Sprintf(`{"supplier_id":%q}`, supplierID),
			setupMock:      func(m *mocks.MockPurchaseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_invalid_json",
			body:           `{invalid`,
			setupMock:      func(m *mocks.MockPurchaseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "maps_unknown_supplier_to_not_found",
			body: fmt.Sprintf(`{"supplier_id":%q,"part_name":"Akü"}`, supplierID),
			setupMock: func(m *mocks.MockPurchaseService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newPurchaseHandlerForTest(t)
			tt.setupMock(service)

			req := httptest.NewRequest("POST", "/purchases", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPurchaseHandler_Create_DefaultsQuantity(t *testing.T) {
	handler, service := newPurchaseHandlerForTest(t)

	service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Purchase) error {
			assert.Equal(t, 1, p.Quantity)
			return nil
		})

	body := fmt.Sprintf(`{"supplier_id":%q,"part_name":"Motor Yağı"}`, uuid.NewString())
	req := httptest.NewRequest("POST", "/purchases", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPurchaseHandler_Delete(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		permanent bool
	}{
		{name: "soft_delete_by_default", target: "/purchases/%s", permanent: false},
		{name: "permanent_with_query_flag", target: "/purchases/%s?permanent=true", permanent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newPurchaseHandlerForTest(t)

			id := uuid.New()
			service.EXPECT().Delete(gomock.Any(), id, tt.permanent).Return(nil)

			mux := routed("DELETE /purchases/{id}", handler.Delete)
			req := httptest.NewRequest("DELETE", fmt.Sprintf(tt.target, id), nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
