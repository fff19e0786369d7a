// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/pkg/config"
)

// CleanupProcessor purges soft-deleted rows once their retention window
// has passed.
type CleanupProcessor struct {
	purchases ports.PurchaseRepository
	repairs   ports.RepairRepository
	expenses  ports.ExpenseRepository
	vehicles  ports.VehicleRepository
	config    *config.Config
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(
	purchases ports.PurchaseRepository,
	repairs ports.RepairRepository,
	expenses ports.ExpenseRepository,
	vehicles ports.VehicleRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *CleanupProcessor {
	return &CleanupProcessor{
		purchases: purchases,
		repairs:   repairs,
		expenses:  expenses,
		vehicles:  vehicles,
		config:    cfg,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldData handles a cleanup:old_data task. Rows soft-deleted
// earlier than the retention window are removed for good.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-p.config.Report.SoftDeleteTTL)

	p.logger.InfoContext(ctx, "purging soft-deleted rows",
		slog.Time("cutoff", cutoff))

	purges := []struct {
		name  string
		purge func(ctx context.Context, cutoff time.Time) (int64, error)
	}{
		{"purchases", p.purchases.PurgeDeletedBefore},
		{"repairs", p.repairs.PurgeDeletedBefore},
		{"expenses", p.expenses.PurgeDeletedBefore},
		{"vehicles", p.vehicles.PurgeDeletedBefore},
	}

	var total int64
	for _, item := range purges {
		n, err := item.purge(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("failed to purge %s: %w", item.name, err)
		}
		if n > 0 {
			p.logger.InfoContext(ctx, "purged soft-deleted rows",
				slog.String("resource", item.name),
				slog.Int64("rows_deleted", n))
		}
		total += n
	}

	p.logger.InfoContext(ctx, "cleanup completed",
		slog.Int64("total_rows_deleted", total))

	return nil
}
