// internal/core/services/expense.go
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

// ExpenseService handles expense business logic
type ExpenseService struct {
	repo   ports.ExpenseRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *ExpenseService implements the ExpenseService interface.
var _ ports.ExpenseService = (*ExpenseService)(nil)

// NewExpenseService creates a new expense service
func NewExpenseService(repo ports.ExpenseRepository, cache ports.CacheRepository, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "expense")),
	}
}

// Create validates and stores a new expense
func (s *ExpenseService) Create(ctx context.Context, e *domain.Expense) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	e.PrepareForStorage()

	if err := s.repo.Save(ctx, e); err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "saved expense",
		slog.String("id", e.ID.String()),
		slog.String("name", e.Name),
		slog.String("category", string(e.Category)))

	return nil
}

// Update updates an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, e *domain.Expense) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load expense: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}

	e.ID = id
	e.CreatedAt = existing.CreatedAt
	e.CreatedBy = existing.CreatedBy

	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	e.PrepareForStorage()

	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "updated expense", slog.String("id", id.String()))
	return nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if e == nil {
		return nil, fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}
	return e, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.Expense], error) {
	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// Delete deletes an expense (soft delete by default)
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load expense: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}

	if permanent {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.SoftDelete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.invalidateAnalysis(ctx)

	s.logger.InfoContext(ctx, "deleted expense",
		slog.String("id", id.String()),
		slog.Bool("permanent", permanent))
	return nil
}

func (s *ExpenseService) invalidateAnalysis(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "analysis:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate analysis cache", slog.String("error", err.Error()))
	}
}
