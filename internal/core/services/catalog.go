// internal/core/services/catalog.go
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

// CatalogService manages the supplier and part reference data.
type CatalogService struct {
	suppliers ports.SupplierRepository
	parts     ports.PartRepository
	logger    *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(suppliers ports.SupplierRepository, parts ports.PartRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		suppliers: suppliers,
		parts:     parts,
		logger:    logger.With(slog.String("service", "catalog")),
	}
}

// CreateSupplier validates and stores a new supplier
func (s *CatalogService) CreateSupplier(ctx context.Context, sup *domain.Supplier) error {
	if err := sup.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	sup.PrepareForStorage()

	if err := s.suppliers.Save(ctx, sup); err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}

	s.logger.InfoContext(ctx, "saved supplier",
		slog.String("id", sup.ID.String()),
		slog.String("shop_name", sup.ShopName))
	return nil
}

// UpdateSupplier updates an existing supplier
func (s *CatalogService) UpdateSupplier(ctx context.Context, id uuid.UUID, sup *domain.Supplier) error {
	existing, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load supplier: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}

	sup.ID = id
	sup.CreatedAt = existing.CreatedAt

	if err := sup.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	sup.PrepareForStorage()

	if err := s.suppliers.Update(ctx, sup); err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}

	s.logger.InfoContext(ctx, "updated supplier", slog.String("id", id.String()))
	return nil
}

// GetSupplier retrieves a supplier by ID
func (s *CatalogService) GetSupplier(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	if sup == nil {
		return nil, fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}
	return sup, nil
}

// ListSuppliers retrieves suppliers with filtering and pagination
func (s *CatalogService) ListSuppliers(ctx context.Context, q report.Query) (*paging.Page[*domain.Supplier], error) {
	items, total, err := s.suppliers.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// DeleteSupplier soft-deletes a supplier. Purchases keep the denormalized
// supplier name, so history is unaffected.
func (s *CatalogService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	existing, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load supplier: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}

	if err := s.suppliers.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted supplier", slog.String("id", id.String()))
	return nil
}

// CreatePart validates and stores a new catalog part
func (s *CatalogService) CreatePart(ctx context.Context, p *domain.Part) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	p.PrepareForStorage()

	if err := s.parts.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to save part: %w", err)
	}

	s.logger.InfoContext(ctx, "saved part",
		slog.String("id", p.ID.String()),
		slog.String("name", p.Name))
	return nil
}

// UpdatePart updates an existing catalog part
func (s *CatalogService) UpdatePart(ctx context.Context, id uuid.UUID, p *domain.Part) error {
	existing, err := s.parts.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load part: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("part %s: %w", id, ErrNotFound)
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt

	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	p.PrepareForStorage()

	if err := s.parts.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}

	s.logger.InfoContext(ctx, "updated part", slog.String("id", id.String()))
	return nil
}

// GetPart retrieves a catalog part by ID
func (s *CatalogService) GetPart(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	p, err := s.parts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("part %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// ListParts retrieves catalog parts with filtering and pagination
func (s *CatalogService) ListParts(ctx context.Context, q report.Query) (*paging.Page[*domain.Part], error) {
	items, total, err := s.parts.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// DeletePart soft-deletes a catalog part. Repair lines keep their
// denormalized part names.
func (s *CatalogService) DeletePart(ctx context.Context, id uuid.UUID) error {
	existing, err := s.parts.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load part: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("part %s: %w", id, ErrNotFound)
	}

	if err := s.parts.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted part", slog.String("id", id.String()))
	return nil
}
