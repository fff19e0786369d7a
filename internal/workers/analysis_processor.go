// internal/workers/analysis_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/sondurak/garage-be/internal/core/ports"
)

// AnalysisProcessor keeps the cached unfiltered profit analysis warm.
type AnalysisProcessor struct {
	service ports.AnalysisService
	logger  *slog.Logger
}

// NewAnalysisProcessor creates a new analysis processor
func NewAnalysisProcessor(service ports.AnalysisService, logger *slog.Logger) *AnalysisProcessor {
	return &AnalysisProcessor{
		service: service,
		logger:  logger.With(slog.String("processor", "analysis")),
	}
}

// RefreshAnalysis handles an analysis:refresh task
func (p *AnalysisProcessor) RefreshAnalysis(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "refreshing analysis cache")

	if err := p.service.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh analysis: %w", err)
	}

	p.logger.InfoContext(ctx, "analysis cache refreshed")
	return nil
}
