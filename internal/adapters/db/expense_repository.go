// internal/adapters/db/expense_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// expenseRepository implements ports.ExpenseRepository
type expenseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *Database, logger *slog.Logger) ports.ExpenseRepository {
	return &expenseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "expense")),
	}
}

// Save creates a new expense
func (r *expenseRepository) Save(ctx context.Context, e *domain.Expense) error {
	query := `
		INSERT INTO expenses (
			id, date, name, category, quantity,
			unit_price, total_cost, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var createdBy interface{}
	if e.CreatedBy != uuid.Nil {
		createdBy = e.CreatedBy
	}

	_, err := r.db.Exec(ctx, query,
		e.ID, e.Date, e.Name, e.Category, e.Quantity,
		e.UnitPrice, e.TotalCost, createdBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	r.logger.DebugContext(ctx, "expense saved",
		slog.String("id", e.ID.String()),
		slog.String("name", e.Name))
	return nil
}

// Update updates an existing expense
func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	query := `
		UPDATE expenses SET
			date = $2, name = $3, category = $4, quantity = $5,
			unit_price = $6, total_cost = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`

	e.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Date, e.Name, e.Category, e.Quantity,
		e.UnitPrice, e.TotalCost, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %s", e.ID)
	}

	r.logger.DebugContext(ctx, "expense updated", slog.String("id", e.ID.String()))
	return nil
}

// FindByID retrieves an expense by ID
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	query := `
		SELECT
			e.id, e.date, e.name, e.category, e.quantity,
			e.unit_price, e.total_cost,
			e.created_by, u.first_name, u.last_name,
			e.created_at, e.updated_at
		FROM expenses e
		LEFT JOIN users u ON u.id = e.created_by
		WHERE e.id = $1 AND e.deleted_at IS NULL`

	e, err := scanExpense(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return e, nil
}

// FindAll retrieves expenses with filtering and pagination
func (r *expenseRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Expense, int64, error) {
	qb := squirrel.Select(
		"e.id", "e.date", "e.name", "e.category", "e.quantity",
		"e.unit_price", "e.total_cost",
		"e.created_by", "u.first_name", "u.last_name",
		"e.created_at", "e.updated_at",
	).From("expenses e").
		LeftJoin("users u ON u.id = e.created_by").
		Where("e.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"e.name": pattern},
			squirrel.ILike{"e.category": pattern},
		})
	}
	if q.StartDate != nil {
		qb = qb.Where(squirrel.GtOrEq{"e.date": *q.StartDate})
	}
	if q.EndDate != nil {
		qb = qb.Where(squirrel.LtOrEq{"e.date": *q.EndDate})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	qb = qb.OrderBy("e.date DESC", "e.created_at DESC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return expenses, totalCount, nil
}

// Delete performs a hard delete
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %s", id)
	}

	r.logger.InfoContext(ctx, "expense deleted", slog.String("id", id.String()))
	return nil
}

// SoftDelete marks an expense as deleted
func (r *expenseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE expenses SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %s", id)
	}

	r.logger.InfoContext(ctx, "expense soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted expenses older than cutoff.
func (r *expenseRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expenses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	e := &domain.Expense{}
	var createdBy *uuid.UUID
	var firstName, lastName sql.NullString

	err := row.Scan(
		&e.ID, &e.Date, &e.Name, &e.Category, &e.Quantity,
		&e.UnitPrice, &e.TotalCost,
		&createdBy, &firstName, &lastName,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	e.CreatedByName = joinName(firstName, lastName)
	return e, nil
}
