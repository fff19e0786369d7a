// internal/handlers/export.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/sondurak/garage-be/internal/adapters/db"
	"github.com/sondurak/garage-be/internal/adapters/storage"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
	"github.com/sondurak/garage-be/internal/workers"
)

// ExportHandler serves the report downloads. Synchronous endpoints render
// and stream the document in the request; the async endpoint queues a
// generation job that archives the result to object storage.
type ExportHandler struct {
	service     ports.ExportService
	asynqClient *asynq.Client
	db          *db.Database
	archive     storage.ArchiveClient
	logger      *slog.Logger
}

// NewExportHandler creates a new export handler. archive may be nil when
// object storage is not configured; job results then carry the archive key
// without a download URL.
func NewExportHandler(service ports.ExportService, asynqClient *asynq.Client, database *db.Database, archive storage.ArchiveClient, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service:     service,
		asynqClient: asynqClient,
		db:          database,
		archive:     archive,
		logger:      logger.With(slog.String("handler", "export")),
	}
}

// PurchasesPDF handles GET /api/v1/exports/purchases/pdf
func (h *ExportHandler) PurchasesPDF(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "purchases PDF", h.service.PurchasesPDF)
}

// PurchasesExcel handles GET /api/v1/exports/purchases/excel
func (h *ExportHandler) PurchasesExcel(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "purchases Excel", h.service.PurchasesExcel)
}

// ExpensesPDF handles GET /api/v1/exports/expenses/pdf
func (h *ExportHandler) ExpensesPDF(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "expenses PDF", h.service.ExpensesPDF)
}

// RepairsPDF handles GET /api/v1/exports/repairs/pdf
func (h *ExportHandler) RepairsPDF(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "repairs PDF", h.service.RepairsPDF)
}

// VehicleHistoryPDF handles GET /api/v1/vehicles/{id}/history/pdf
func (h *ExportHandler) VehicleHistoryPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	export, err := h.service.VehicleHistoryPDF(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render vehicle history PDF",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to render vehicle history PDF")
		return
	}

	h.send(w, r, export)
}

func (h *ExportHandler) download(w http.ResponseWriter, r *http.Request, name string, render func(ctx context.Context, q report.Query) (*ports.Export, error)) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	export, err := render(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render export",
			slog.String("export", name),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to render "+name)
		return
	}

	h.send(w, r, export)
}

func (h *ExportHandler) send(w http.ResponseWriter, r *http.Request, export *ports.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", report.ContentDisposition(export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write export response",
			slog.String("filename", export.Filename),
			slog.String("error", err.Error()))
	}
}

// QueueReport handles POST /api/v1/exports/reports. The rendered document
// is archived to object storage instead of being streamed back.
func (h *ExportHandler) QueueReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReportJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	jobID := uuid.New().String()

	payload := workers.ReportJobPayload{
		JobID:    jobID,
		Resource: req.Resource,
		Format:   req.Format,
		Query:    req.queryString(),
	}

	if err := h.createAsyncJob(ctx, jobID, "report_generate", payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to create job record",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to create report job")
		return
	}

	b, err := json.Marshal(payload)
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to queue report job")
		return
	}

	task := asynq.NewTask(workers.TypeReportGenerate, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue report task",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to queue report job")
		return
	}

	h.logger.InfoContext(ctx, "report generation queued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID),
		slog.String("resource", req.Resource),
		slog.String("format", req.Format))

	respondJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"job_id":  jobID,
		"status":  "queued",
		"message": "Report generation has been queued",
	})
}

// JobStatus handles GET /api/v1/exports/jobs/{id}
func (h *ExportHandler) JobStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("id")

	if _, err := uuid.Parse(jobID); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var (
		jobType   string
		status    string
		result    []byte
		createdAt time.Time
		updatedAt time.Time
	)

	row := h.db.QueryRow(ctx,
		`SELECT job_type, status, COALESCE(result, '{}'), created_at, updated_at
		 FROM async_jobs WHERE job_id = $1`, jobID)
	if err := row.Scan(&jobType, &status, &result, &createdAt, &updatedAt); err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Job not found")
		return
	}

	var resultData map[string]interface{}
	if len(result) > 0 {
		if err := json.Unmarshal(result, &resultData); err != nil {
			resultData = nil
		}
	}

	response := map[string]interface{}{
		"job_id":     jobID,
		"job_type":   jobType,
		"status":     status,
		"result":     resultData,
		"created_at": createdAt,
		"updated_at": updatedAt,
	}

	if status == "completed" && h.archive != nil {
		if key, ok := resultData["archive_key"].(string); ok && key != "" {
			url, err := h.archive.GetPresignedURL(ctx, key, 15*time.Minute)
			if err != nil {
				h.logger.WarnContext(ctx, "failed to presign archived report",
					slog.String("job_id", jobID),
					slog.String("error", err.Error()))
			} else {
				response["download_url"] = url
			}
		}
	}

	respondJSON(w, h.logger, http.StatusOK, response)
}

func (h *ExportHandler) createAsyncJob(ctx context.Context, jobID, jobType string, params interface{}) error {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal job params: %w", err)
	}

	_, err = h.db.Exec(ctx,
		`INSERT INTO async_jobs (job_id, job_type, status, parameters, created_at, updated_at)
		 VALUES ($1, $2, 'queued', $3, NOW(), NOW())`,
		jobID, jobType, b)
	if err != nil {
		return fmt.Errorf("insert async job: %w", err)
	}
	return nil
}

// ReportJobRequest represents the request body for queuing a report
type ReportJobRequest struct {
	Resource   string `json:"resource"`
	Format     string `json:"format"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Search     string `json:"search,omitempty"`
	SupplierID string `json:"supplier_id,omitempty"`
}

// Validate validates the report job request
func (r *ReportJobRequest) Validate() error {
	switch r.Resource {
	case "purchases", "expenses", "repairs":
	default:
		return fmt.Errorf("resource must be one of purchases, expenses, repairs")
	}
	switch r.Format {
	case "pdf":
	case "excel":
		if r.Resource != "purchases" {
			return fmt.Errorf("excel format is only available for purchases")
		}
	default:
		return fmt.Errorf("format must be pdf or excel")
	}
	for _, d := range []string{r.From, r.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(report.DateFormat, d); err != nil {
			return fmt.Errorf("dates must use the %s format", report.DateFormat)
		}
	}
	return nil
}

func (r *ReportJobRequest) queryString() string {
	v := url.Values{}
	if r.From != "" {
		v.Set("from", r.From)
	}
	if r.To != "" {
		v.Set("to", r.To)
	}
	if r.Search != "" {
		v.Set("search", r.Search)
	}
	if r.SupplierID != "" {
		v.Set("supplier_id", r.SupplierID)
	}
	return v.Encode()
}
