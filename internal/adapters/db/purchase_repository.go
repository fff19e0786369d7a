// internal/adapters/db/purchase_repository.go
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

// purchaseRepository implements ports.PurchaseRepository
type purchaseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *Database, logger *slog.Logger) ports.PurchaseRepository {
	return &purchaseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "purchase")),
	}
}

const purchaseColumns = `
	p.id, p.date, p.supplier_id, s.shop_name, p.part_name,
	p.quantity, p.unit_price, p.total_cost,
	p.created_by, u.first_name, u.last_name,
	p.created_at, p.updated_at`

// Save creates a new purchase
func (r *purchaseRepository) Save(ctx context.Context, p *domain.Purchase) error {
	query := `
		INSERT INTO purchases (
			id, date, supplier_id, part_name, quantity,
			unit_price, total_cost, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var createdBy interface{}
	if p.CreatedBy != uuid.Nil {
		createdBy = p.CreatedBy
	}

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Date, p.SupplierID, p.PartName, p.Quantity,
		p.UnitPrice, p.TotalCost, createdBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}

	r.logger.DebugContext(ctx, "purchase saved",
		slog.String("id", p.ID.String()),
		slog.String("part_name", p.PartName))
	return nil
}

// SaveBatch saves multiple purchases in a transaction, used by the legacy
// data importer.
func (r *purchaseRepository) SaveBatch(ctx context.Context, purchases []domain.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}

		query := `
			INSERT INTO purchases (
				id, date, supplier_id, part_name, quantity,
				unit_price, total_cost, created_by, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING`

		for i := range purchases {
			p := &purchases[i]
			var createdBy interface{}
			if p.CreatedBy != uuid.Nil {
				createdBy = p.CreatedBy
			}
			batch.Queue(query,
				p.ID, p.Date, p.SupplierID, p.PartName, p.Quantity,
				p.UnitPrice, p.TotalCost, createdBy, p.CreatedAt, p.UpdatedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range purchases {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("failed to save purchase %d: %w", i, err)
			}
		}
		return nil
	})
}

// Update updates an existing purchase
func (r *purchaseRepository) Update(ctx context.Context, p *domain.Purchase) error {
	query := `
		UPDATE purchases SET
			date = $2, supplier_id = $3, part_name = $4, quantity = $5,
			unit_price = $6, total_cost = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`

	p.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Date, p.SupplierID, p.PartName, p.Quantity,
		p.UnitPrice, p.TotalCost, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase not found: %s", p.ID)
	}

	r.logger.DebugContext(ctx, "purchase updated", slog.String("id", p.ID.String()))
	return nil
}

// FindByID retrieves a purchase by ID
func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	query := `
		SELECT` + purchaseColumns + `
		FROM purchases p
		JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN users u ON u.id = p.created_by
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanPurchase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	return p, nil
}

// FindAll retrieves purchases with filtering and pagination
func (r *purchaseRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Purchase, int64, error) {
	qb := squirrel.Select(
		"p.id", "p.date", "p.supplier_id", "s.shop_name", "p.part_name",
		"p.quantity", "p.unit_price", "p.total_cost",
		"p.created_by", "u.first_name", "u.last_name",
		"p.created_at", "p.updated_at",
	).From("purchases p").
		Join("suppliers s ON s.id = p.supplier_id").
		LeftJoin("users u ON u.id = p.created_by").
		Where("p.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"p.part_name": pattern},
			squirrel.ILike{"s.shop_name": pattern},
		})
	}
	if q.StartDate != nil {
		qb = qb.Where(squirrel.GtOrEq{"p.date": *q.StartDate})
	}
	if q.EndDate != nil {
		qb = qb.Where(squirrel.LtOrEq{"p.date": *q.EndDate})
	}
	if q.SupplierID != "" {
		qb = qb.Where(squirrel.Eq{"p.supplier_id": q.SupplierID})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	qb = qb.OrderBy("p.date DESC", "p.created_at DESC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return purchases, totalCount, nil
}

// Delete performs a hard delete
func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase not found: %s", id)
	}

	r.logger.InfoContext(ctx, "purchase deleted", slog.String("id", id.String()))
	return nil
}

// SoftDelete marks a purchase as deleted
func (r *purchaseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE purchases SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase not found: %s", id)
	}

	r.logger.InfoContext(ctx, "purchase soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted purchases older than cutoff.
func (r *purchaseRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM purchases WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge purchases: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	var createdBy *uuid.UUID
	var firstName, lastName sql.NullString

	err := row.Scan(
		&p.ID, &p.Date, &p.SupplierID, &p.SupplierName, &p.PartName,
		&p.Quantity, &p.UnitPrice, &p.TotalCost,
		&createdBy, &firstName, &lastName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	p.CreatedByName = joinName(firstName, lastName)
	return p, nil
}
