// internal/handlers/analysis.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// AnalysisHandler handles the profit analysis HTTP requests
type AnalysisHandler struct {
	service ports.AnalysisService
	logger  *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service ports.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "analysis")),
	}
}

// Analyze handles GET /api/v1/analysis. Paging parameters are ignored;
// the analysis always covers the full filtered set.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	analysis, err := h.service.Analyze(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute analysis",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to compute analysis")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, analysis)
}
