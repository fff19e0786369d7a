// internal/core/services/analysis.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

const analysisTTL = 10 * time.Minute

// AnalysisService computes the shop-wide profit report. Totals always
// cover the full filtered set, never the visible page.
type AnalysisService struct {
	repo   ports.AnalysisRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *AnalysisService implements the AnalysisService interface.
var _ ports.AnalysisService = (*AnalysisService)(nil)

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo ports.AnalysisRepository, cache ports.CacheRepository, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "analysis")),
	}
}

// Analyze returns the profit report for the given date range, cached per
// distinct filter combination.
func (s *AnalysisService) Analyze(ctx context.Context, q report.Query) (*domain.Analysis, error) {
	q = q.Unpaged()

	if s.cache == nil {
		return s.compute(ctx, q)
	}

	var analysis domain.Analysis
	key := analysisKey(q)
	err := s.cache.GetOrSet(ctx, key, &analysis, func() (interface{}, error) {
		return s.compute(ctx, q)
	}, analysisTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "cache bypass for analysis", slog.String("error", err.Error()))
		return s.compute(ctx, q)
	}
	return &analysis, nil
}

// Refresh recomputes and re-caches the unfiltered analysis. Used by the
// background refresh task.
func (s *AnalysisService) Refresh(ctx context.Context) error {
	q := report.NewQuery(0).Unpaged()

	analysis, err := s.compute(ctx, q)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.SetWithTTL(ctx, analysisKey(q), analysis, analysisTTL); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}

	s.logger.InfoContext(ctx, "refreshed analysis cache",
		slog.String("net_profit", analysis.NetProfit.String()))
	return nil
}

func (s *AnalysisService) compute(ctx context.Context, q report.Query) (*domain.Analysis, error) {
	analysis, err := s.repo.Totals(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	analysis.StartDate = q.StartDate
	analysis.EndDate = q.EndDate
	analysis.GeneratedAt = time.Now()
	analysis.Derive()
	return analysis, nil
}

func analysisKey(q report.Query) string {
	// keep the "analysis:" prefix so write-path invalidation can match it
	key := "analysis:all"
	if q.StartDate != nil {
		key += ":from:" + q.StartDate.Format(report.DateFormat)
	}
	if q.EndDate != nil {
		key += ":to:" + q.EndDate.Format(report.DateFormat)
	}
	return key
}
