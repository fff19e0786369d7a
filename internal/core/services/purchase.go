// internal/core/services/purchase.go
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

// PurchaseService handles purchase business logic
type PurchaseService struct {
	repo      ports.PurchaseRepository
	suppliers ports.SupplierRepository
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// Statically assert that *PurchaseService implements the PurchaseService interface.
var _ ports.PurchaseService = (*PurchaseService)(nil)

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo ports.PurchaseRepository, suppliers ports.SupplierRepository, cache ports.CacheRepository, logger *slog.Logger) *PurchaseService {
	return &PurchaseService{
		repo:      repo,
		suppliers: suppliers,
		cache:     cache,
		logger:    logger.With(slog.String("service", "purchase")),
	}
}

// Create validates and stores a new purchase
func (s *PurchaseService) Create(ctx context.Context, p *domain.Purchase) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	supplier, err := s.suppliers.FindByID(ctx, p.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to check supplier: %w", err)
	}
	if supplier == nil {
		return fmt.Errorf("supplier %s: %w", p.SupplierID, ErrNotFound)
	}
	p.SupplierName = supplier.ShopName

	p.PrepareForStorage()

	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "saved purchase",
		slog.String("id", p.ID.String()),
		slog.String("part_name", p.PartName),
		slog.String("supplier", p.SupplierName))

	return nil
}

// Update updates an existing purchase
func (s *PurchaseService) Update(ctx context.Context, id uuid.UUID, p *domain.Purchase) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load purchase: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("purchase %s: %w", id, ErrNotFound)
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.CreatedBy = existing.CreatedBy

	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if p.SupplierID != existing.SupplierID {
		supplier, err := s.suppliers.FindByID(ctx, p.SupplierID)
		if err != nil {
			return fmt.Errorf("failed to check supplier: %w", err)
		}
		if supplier == nil {
			return fmt.Errorf("supplier %s: %w", p.SupplierID, ErrNotFound)
		}
		p.SupplierName = supplier.ShopName
	} else {
		p.SupplierName = existing.SupplierName
	}

	p.PrepareForStorage()

	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "updated purchase", slog.String("id", id.String()))
	return nil
}

// GetByID retrieves a purchase by ID
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("purchase %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// List retrieves purchases with filtering and pagination
func (s *PurchaseService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Purchase], error) {
	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// Delete deletes a purchase (soft delete by default)
func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load purchase: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("purchase %s: %w", id, ErrNotFound)
	}

	if permanent {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.SoftDelete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "deleted purchase",
		slog.String("id", id.String()),
		slog.Bool("permanent", permanent))
	return nil
}

func (s *PurchaseService) invalidateAnalysis(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "analysis:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate analysis cache", slog.String("error", err.Error()))
	}
}
