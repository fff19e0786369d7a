// internal/handlers/export_test.go
package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/handlers"
	"github.com/sondurak/garage-be/internal/report"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func newExportHandlerForTest(t *testing.T) (*handlers.ExportHandler, *mocks.MockExportService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockExportService(ctrl)
	// The sync download endpoints never touch the queue, the job table or
	// the archive.
	return handlers.NewExportHandler(service, nil, nil, nil, helpers.TestLogger()), service
}

func pdfExport(filename string) *ports.Export {
	return &ports.Export{
		Filename:    filename,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 test"),
	}
}

func TestExportHandler_PurchasesPDF(t *testing.T) {
	handler, service := newExportHandlerForTest(t)

	service.EXPECT().PurchasesPDF(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q report.Query) (*ports.Export, error) {
			assert.Equal(t, "balata", q.Search)
			return pdfExport("alis_raporu_2025-01-01_2025-01-31.pdf"), nil
		})

	req := httptest.NewRequest("GET", "/exports/purchases/pdf?search=balata&from=2025-01-01&to=2025-01-31", nil)
	w := httptest.NewRecorder()

	handler.PurchasesPDF(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "alis_raporu_2025-01-01_2025-01-31.pdf")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}

func TestExportHandler_PurchasesExcel(t *testing.T) {
	handler, service := newExportHandlerForTest(t)

	service.EXPECT().PurchasesExcel(gomock.Any(), gomock.Any()).Return(&ports.Export{
		Filename:    "alis_raporu.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("xlsx-bytes"),
	}, nil)

	req := httptest.NewRequest("GET", "/exports/purchases/excel", nil)
	w := httptest.NewRecorder()

	handler.PurchasesExcel(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "alis_raporu.xlsx")
}

func TestExportHandler_VehicleHistoryPDF(t *testing.T) {
	t.Run("streams_pdf_for_vehicle", func(t *testing.T) {
		handler, service := newExportHandlerForTest(t)

		id := uuid.New()
		service.EXPECT().VehicleHistoryPDF(gomock.Any(), id).Return(pdfExport("arac_gecmisi.pdf"), nil)

		mux := routed("GET /vehicles/{id}/history/pdf", handler.VehicleHistoryPDF)
		req := httptest.NewRequest("GET", "/vehicles/"+id.String()+"/history/pdf", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	})

	t.Run("rejects_malformed_id", func(t *testing.T) {
		handler, _ := newExportHandlerForTest(t)

		mux := routed("GET /vehicles/{id}/history/pdf", handler.VehicleHistoryPDF)
		req := httptest.NewRequest("GET", "/vehicles/nope/history/pdf", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportHandler_QueueReport_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "rejects_unknown_resource", body: `{"resource":"customers","format":"pdf"}`},
		{name: "rejects_unknown_format", body: `{"resource":"purchases","format":"csv"}`},
		{name: "rejects_excel_for_expenses", body: `{"resource":"expenses","format":"excel"}`},
		{name: "rejects_malformed_date", body: `{"resource":"purchases","format":"pdf","from":"31/01/2025"}`},
		{name: "rejects_invalid_json", body: `{invalid`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation failures never reach the job table or the queue.
			handler, _ := newExportHandlerForTest(t)

			req := httptest.NewRequest("POST", "/exports/reports", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.QueueReport(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
