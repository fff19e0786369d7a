// internal/workers/report_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
	"github.com/sondurak/garage-be/internal/workers"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func reportTask(t *testing.T, payload workers.ReportJobPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(workers.TypeReportGenerate, b)
}

func TestReportProcessor_ProcessReport(t *testing.T) {
	t.Run("renders_archives_and_completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		exports := mocks.NewMockExportService(ctrl)
		archive := mocks.NewMockArchiveClient(ctrl)
		database := mocks.NewMockDatabase(ctrl)

		exports.EXPECT().PurchasesPDF(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q report.Query) (*ports.Export, error) {
				assert.Equal(t, "balata", q.Search)
				return &ports.Export{
					Filename:    "alis_raporu_2025-01-01.pdf",
					ContentType: "application/pdf",
					Data:        []byte("%PDF-1.4"),
				}, nil
			})
		archive.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").
			DoAndReturn(func(_ context.Context, key string, _ interface{}, _ string) (string, error) {
				assert.Contains(t, key, "reports/")
				assert.Contains(t, key, "alis_raporu_2025-01-01.pdf")
				return "s3://garage-reports/" + key, nil
			})
		// One status transition to processing, one to completed with result.
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "processing", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "completed", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)

		processor := workers.NewReportProcessor(exports, archive, database, helpers.TestLogger())

		task := reportTask(t, workers.ReportJobPayload{
			JobID:    "7f6f2c1e-0000-0000-0000-000000000001",
			Resource: "purchases",
			Format:   "pdf",
			Query:    "search=balata",
		})
		require.NoError(t, processor.ProcessReport(context.Background(), task))
	})

	t.Run("marks_job_failed_when_render_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		exports := mocks.NewMockExportService(ctrl)
		archive := mocks.NewMockArchiveClient(ctrl)
		database := mocks.NewMockDatabase(ctrl)

		exports.EXPECT().RepairsPDF(gomock.Any(), gomock.Any()).Return(nil, errors.New("db gone"))
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "processing", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "failed", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)

		processor := workers.NewReportProcessor(exports, archive, database, helpers.TestLogger())

		task := reportTask(t, workers.ReportJobPayload{
			JobID:    "7f6f2c1e-0000-0000-0000-000000000002",
			Resource: "repairs",
			Format:   "pdf",
		})
		err := processor.ProcessReport(context.Background(), task)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render report")
	})

	t.Run("rejects_unsupported_combination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		exports := mocks.NewMockExportService(ctrl)
		archive := mocks.NewMockArchiveClient(ctrl)
		database := mocks.NewMockDatabase(ctrl)

		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "processing", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), "failed", gomock.Any()).
			Return(pgconn.CommandTag{}, nil)

		processor := workers.NewReportProcessor(exports, archive, database, helpers.TestLogger())

		task := reportTask(t, workers.ReportJobPayload{
			JobID:    "7f6f2c1e-0000-0000-0000-000000000003",
			Resource: "expenses",
			Format:   "excel",
		})
		assert.Error(t, processor.ProcessReport(context.Background(), task))
	})
}
