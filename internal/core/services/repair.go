// internal/core/services/repair.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/pkg/paging"
	"github.com/sondurak/garage-be/internal/report"
)

// RepairService handles repair business logic
type RepairService struct {
	repo   ports.RepairRepository
	parts  ports.PartRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *RepairService implements the RepairService interface.
var _ ports.RepairService = (*RepairService)(nil)

// NewRepairService creates a new repair service
func NewRepairService(repo ports.RepairRepository, parts ports.PartRepository, cache ports.CacheRepository, logger *slog.Logger) *RepairService {
	return &RepairService{
		repo:   repo,
		parts:  parts,
		cache:  cache,
		logger: logger.With(slog.String("service", "repair")),
	}
}

// Create validates and stores a new repair
func (s *RepairService) Create(ctx context.Context, r *domain.Repair) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.resolvePartNames(ctx, r); err != nil {
		return err
	}

	r.PrepareForStorage()

	if err := s.repo.Save(ctx, r); err != nil {
		return fmt.Errorf("failed to save repair: %w", err)
	}

	s.invalidateCaches(ctx, r.Plate)

	s.logger.InfoContext(ctx, "saved repair",
		slog.String("id", r.ID.String()),
		slog.String("plate", r.Plate),
		slog.String("total_cost", r.TotalCost.String()))

	return nil
}

// Update updates an existing repair
func (s *RepairService) Update(ctx context.Context, id uuid.UUID, r *domain.Repair) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load repair: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("repair %s: %w", id, ErrNotFound)
	}

	r.ID = id
	r.CreatedAt = existing.CreatedAt
	r.CreatedBy = existing.CreatedBy

	if err := r.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.resolvePartNames(ctx, r); err != nil {
		return err
	}

	r.PrepareForStorage()

	if err := s.repo.Update(ctx, r); err != nil {
		return fmt.Errorf("failed to update repair: %w", err)
	}

	// a plate edit leaves the old vehicle page stale too
	s.invalidateCaches(ctx, existing.Plate)
	s.invalidateCaches(ctx, r.Plate)

	s.logger.InfoContext(ctx, "updated repair", slog.String("id", id.String()))
	return nil
}

// GetByID retrieves a repair by ID
func (s *RepairService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get repair: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("repair %s: %w", id, ErrNotFound)
	}
	return r, nil
}

// List retrieves repairs with filtering and pagination
func (s *RepairService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Repair], error) {
	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list repairs: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// Delete deletes a repair (soft delete by default)
func (s *RepairService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load repair: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("repair %s: %w", id, ErrNotFound)
	}

	if permanent {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.SoftDelete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete repair: %w", err)
	}

	s.invalidateCaches(ctx, existing.Plate)

	s.logger.InfoContext(ctx, "deleted repair",
		slog.String("id", id.String()),
		slog.Bool("permanent", permanent))
	return nil
}

// resolvePartNames denormalizes catalog names into the part lines so the
// repair stays readable even if the catalog entry is later removed.
func (s *RepairService) resolvePartNames(ctx context.Context, r *domain.Repair) error {
	for i := range r.Parts {
		line := &r.Parts[i]
		if line.PartName != "" || line.PartID == uuid.Nil {
			continue
		}
		part, err := s.parts.FindByID(ctx, line.PartID)
		if err != nil {
			return fmt.Errorf("failed to resolve part %s: %w", line.PartID, err)
		}
		if part == nil {
			return fmt.Errorf("part %s: %w", line.PartID, ErrNotFound)
		}
		line.PartName = part.Name
	}
	return nil
}

func (s *RepairService) invalidateCaches(ctx context.Context, plate string) {
	if s.cache == nil {
		return
	}
	for _, pattern := range []string{"analysis:*", "vehicle:plate:" + domain.NormalizePlate(plate) + ":*"} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate cache",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
		}
	}
}
