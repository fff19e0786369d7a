// internal/adapters/db/analysis_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// analysisRepository implements ports.AnalysisRepository. Totals are
// aggregated in SQL over the full filtered set.
type analysisRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *Database, logger *slog.Logger) ports.AnalysisRepository {
	return &analysisRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "analysis")),
	}
}

// Totals aggregates the per-resource blocks for the profit report.
func (r *analysisRepository) Totals(ctx context.Context, q report.Query) (*domain.Analysis, error) {
	analysis := &domain.Analysis{}

	repairs, err := r.resourceTotals(ctx, "repairs", "total_cost", "", q)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate repairs: %w", err)
	}
	analysis.Repairs = repairs

	purchases, err := r.resourceTotals(ctx, "purchases", "total_cost", "quantity", q)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}
	analysis.Purchases = purchases

	expenses, err := r.resourceTotals(ctx, "expenses", "total_cost", "quantity", q)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	analysis.Expenses = expenses

	return analysis, nil
}

func (r *analysisRepository) resourceTotals(ctx context.Context, table, costCol, qtyCol string, q report.Query) (domain.ResourceTotals, error) {
	qtyExpr := "0"
	if qtyCol != "" {
		qtyExpr = fmt.Sprintf("COALESCE(SUM(%s), 0)", qtyCol)
	}
	query := fmt.Sprintf(`
		SELECT COUNT(*), %s, COALESCE(SUM(%s), 0)
		FROM %s
		WHERE deleted_at IS NULL`, qtyExpr, costCol, table)

	args := []interface{}{}
	argN := 1
	if q.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argN)
		args = append(args, *q.StartDate)
		argN++
	}
	if q.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argN)
		args = append(args, *q.EndDate)
	}

	var totals domain.ResourceTotals
	var cost decimal.Decimal
	err := r.db.QueryRow(ctx, query, args...).Scan(&totals.Count, &totals.TotalQuantity, &cost)
	if err != nil {
		return domain.ResourceTotals{}, err
	}
	totals.TotalCost = cost
	return totals, nil
}
