// internal/adapters/db/repair_repository.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
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

// repairRepository implements ports.RepairRepository. Part lines live in a
// jsonb column since they are always read and written with their repair.
type repairRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewRepairRepository creates a new repair repository
func NewRepairRepository(db *Database, logger *slog.Logger) ports.RepairRepository {
	return &repairRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "repair")),
	}
}

// Save creates a new repair
func (r *repairRepository) Save(ctx context.Context, rep *domain.Repair) error {
	query := `
		INSERT INTO repairs (
			id, date, brand, model, plate, description,
			mileage_km, oil_change, parts, labor_cost, parts_cost, total_cost,
			created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	parts, err := json.Marshal(rep.Parts)
	if err != nil {
		return fmt.Errorf("failed to marshal part lines: %w", err)
	}

	var createdBy interface{}
	if rep.CreatedBy != uuid.Nil {
		createdBy = rep.CreatedBy
	}

	_, err = r.db.Exec(ctx, query,
		rep.ID, rep.Date, rep.Brand, rep.Model, rep.Plate, rep.Description,
		rep.MileageKM, rep.OilChange, parts, rep.LaborCost, rep.PartsCost, rep.TotalCost,
		createdBy, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save repair: %w", err)
	}

	r.logger.DebugContext(ctx, "repair saved",
		slog.String("id", rep.ID.String()),
		slog.String("plate", rep.Plate))
	return nil
}

// Update updates an existing repair
func (r *repairRepository) Update(ctx context.Context, rep *domain.Repair) error {
	query := `
		UPDATE repairs SET
			date = $2, brand = $3, model = $4, plate = $5, description = $6,
			mileage_km = $7, oil_change = $8, parts = $9,
			labor_cost = $10, parts_cost = $11, total_cost = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL`

	parts, err := json.Marshal(rep.Parts)
	if err != nil {
		return fmt.Errorf("failed to marshal part lines: %w", err)
	}

	rep.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		rep.ID, rep.Date, rep.Brand, rep.Model, rep.Plate, rep.Description,
		rep.MileageKM, rep.OilChange, parts,
		rep.LaborCost, rep.PartsCost, rep.TotalCost, rep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update repair: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repair not found: %s", rep.ID)
	}

	r.logger.DebugContext(ctx, "repair updated", slog.String("id", rep.ID.String()))
	return nil
}

// FindByID retrieves a repair by ID
func (r *repairRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	query := repairSelect + ` WHERE r.id = $1 AND r.deleted_at IS NULL`

	rep, err := scanRepair(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find repair: %w", err)
	}
	return rep, nil
}

// FindByPlate returns every repair for a normalized plate, newest first.
func (r *repairRepository) FindByPlate(ctx context.Context, plate string) ([]*domain.Repair, error) {
	query := repairSelect + `
		WHERE r.plate = $1 AND r.deleted_at IS NULL
		ORDER BY r.date DESC, r.created_at DESC`

	rows, err := r.db.Query(ctx, query, domain.NormalizePlate(plate))
	if err != nil {
		return nil, fmt.Errorf("failed to query repairs by plate: %w", err)
	}
	defer rows.Close()

	return collectRepairs(rows)
}

// FindAll retrieves repairs with filtering and pagination
func (r *repairRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Repair, int64, error) {
	qb := squirrel.Select(
		"r.id", "r.date", "r.brand", "r.model", "r.plate", "r.description",
		"r.mileage_km", "r.oil_change", "r.parts",
		"r.labor_cost", "r.parts_cost", "r.total_cost",
		"r.created_by", "u.first_name", "u.last_name",
		"r.created_at", "r.updated_at",
	).From("repairs r").
		LeftJoin("users u ON u.id = r.created_by").
		Where("r.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"r.plate": pattern},
			squirrel.ILike{"r.brand": pattern},
			squirrel.ILike{"r.model": pattern},
			squirrel.ILike{"r.description": pattern},
		})
	}
	if q.StartDate != nil {
		qb = qb.Where(squirrel.GtOrEq{"r.date": *q.StartDate})
	}
	if q.EndDate != nil {
		qb = qb.Where(squirrel.LtOrEq{"r.date": *q.EndDate})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count repairs: %w", err)
	}

	qb = qb.OrderBy("r.date DESC", "r.created_at DESC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query repairs: %w", err)
	}
	defer rows.Close()

	repairs, err := collectRepairs(rows)
	if err != nil {
		return nil, 0, err
	}
	return repairs, totalCount, nil
}

// Delete performs a hard delete
func (r *repairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM repairs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete repair: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repair not found: %s", id)
	}

	r.logger.InfoContext(ctx, "repair deleted", slog.String("id", id.String()))
	return nil
}

// SoftDelete marks a repair as deleted
func (r *repairRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE repairs SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete repair: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repair not found: %s", id)
	}

	r.logger.InfoContext(ctx, "repair soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted repairs older than cutoff.
func (r *repairRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM repairs WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge repairs: %w", err)
	}
	return tag.RowsAffected(), nil
}

const repairSelect = `
	SELECT
		r.id, r.date, r.brand, r.model, r.plate, r.description,
		r.mileage_km, r.oil_change, r.parts,
		r.labor_cost, r.parts_cost, r.total_cost,
		r.created_by, u.first_name, u.last_name,
		r.created_at, r.updated_at
	FROM repairs r
	LEFT JOIN users u ON u.id = r.created_by`

func scanRepair(row pgx.Row) (*domain.Repair, error) {
	rep := &domain.Repair{}
	var parts []byte
	var createdBy *uuid.UUID
	var firstName, lastName sql.NullString

	err := row.Scan(
		&rep.ID, &rep.Date, &rep.Brand, &rep.Model, &rep.Plate, &rep.Description,
		&rep.MileageKM, &rep.OilChange, &parts,
		&rep.LaborCost, &rep.PartsCost, &rep.TotalCost,
		&createdBy, &firstName, &lastName,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(parts) > 0 {
		if err := json.Unmarshal(parts, &rep.Parts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal part lines: %w", err)
		}
	}
	if rep.Parts == nil {
		rep.Parts = []domain.RepairPart{}
	}
	if createdBy != nil {
		rep.CreatedBy = *createdBy
	}
	rep.CreatedByName = joinName(firstName, lastName)
	return rep, nil
}

func collectRepairs(rows pgx.Rows) ([]*domain.Repair, error) {
	var repairs []*domain.Repair
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repair: %w", err)
		}
		repairs = append(repairs, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return repairs, nil
}
