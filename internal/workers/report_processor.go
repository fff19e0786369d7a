// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/hibiken/asynq"

	"github.com/sondurak/garage-be/internal/adapters/storage"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

const (
	TypeReportGenerate  = "report:generate"
	TypeAnalysisRefresh = "analysis:refresh"
	TypeCleanupOldData  = "cleanup:old_data"
)

// ReportJobPayload represents the payload for report generation jobs.
// Query carries the filter parameters in url-encoded form.
type ReportJobPayload struct {
	JobID    string `json:"job_id"`
	Resource string `json:"resource"`
	Format   string `json:"format"`
	Query    string `json:"query,omitempty"`
}

// ReportJobResult represents the result of report generation
type ReportJobResult struct {
	Filename       string `json:"filename"`
	ArchiveKey     string `json:"archive_key"`
	SizeBytes      int    `json:"size_bytes"`
	ProcessingTime string `json:"processing_time"`
}

// ReportProcessor renders queued report documents and archives them to
// object storage.
type ReportProcessor struct {
	exports ports.ExportService
	archive storage.ArchiveClient
	db      ports.Database
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(exports ports.ExportService, archive storage.ArchiveClient, db ports.Database, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		exports: exports,
		archive: archive,
		db:      db,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// ProcessReport handles a report:generate task
func (p *ReportProcessor) ProcessReport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ReportJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "generating report",
		slog.String("job_id", payload.JobID),
		slog.String("resource", payload.Resource),
		slog.String("format", payload.Format))

	_ = p.updateJobStatus(ctx, payload.JobID, "processing", nil)

	export, err := p.render(ctx, payload)
	if err != nil {
		errMsg := fmt.Sprintf("failed to render report: %v", err)
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		return fmt.Errorf("render report %s/%s: %w", payload.Resource, payload.Format, err)
	}

	key := storage.ArchiveKey(time.Now(), export.Filename)
	if _, err := p.archive.Upload(ctx, key, bytes.NewReader(export.Data), export.ContentType); err != nil {
		errMsg := fmt.Sprintf("failed to archive report: %v", err)
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		return fmt.Errorf("archive report %s: %w", key, err)
	}

	result := ReportJobResult{
		Filename:       export.Filename,
		ArchiveKey:     key,
		SizeBytes:      len(export.Data),
		ProcessingTime: time.Since(start).String(),
	}

	resultJSON, _ := json.Marshal(result)
	_ = p.updateJobStatusWithResult(ctx, payload.JobID, "completed", resultJSON)

	p.logger.InfoContext(ctx, "report archived",
		slog.String("job_id", payload.JobID),
		slog.String("archive_key", key),
		slog.Int("size_bytes", result.SizeBytes))

	return nil
}

func (p *ReportProcessor) render(ctx context.Context, payload ReportJobPayload) (*ports.Export, error) {
	values, err := url.ParseQuery(payload.Query)
	if err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}
	q := report.ParseQuery(values, report.DefaultPageSize)

	switch payload.Resource + "/" + payload.Format {
	case "purchases/pdf":
		return p.exports.PurchasesPDF(ctx, q)
	case "purchases/excel":
		return p.exports.PurchasesExcel(ctx, q)
	case "expenses/pdf":
		return p.exports.ExpensesPDF(ctx, q)
	case "repairs/pdf":
		return p.exports.RepairsPDF(ctx, q)
	default:
		return nil, fmt.Errorf("unsupported report %s/%s", payload.Resource, payload.Format)
	}
}

func (p *ReportProcessor) updateJobStatus(ctx context.Context, jobID string, status string, errorMsg *string) error {
	query := `
		UPDATE async_jobs
		SET status = $2, error = $3, updated_at = CURRENT_TIMESTAMP
		WHERE job_id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, errorMsg)
	return err
}

func (p *ReportProcessor) updateJobStatusWithResult(ctx context.Context, jobID string, status string, result json.RawMessage) error {
	query := `
		UPDATE async_jobs
		SET status = $2, result = $3, completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE job_id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, result)
	return err
}
