// internal/adapters/db/vehicle_repository.go
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

// vehicleRepository implements ports.VehicleRepository
type vehicleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *Database, logger *slog.Logger) ports.VehicleRepository {
	return &vehicleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "vehicle")),
	}
}

const vehicleSelect = `
	SELECT
		id, customer_name, customer_phone, brand, model, plate,
		year, notes, qr_code, created_at, updated_at
	FROM customer_vehicles`

// Save creates a new vehicle
func (r *vehicleRepository) Save(ctx context.Context, v *domain.CustomerVehicle) error {
	query := `
		INSERT INTO customer_vehicles (
			id, customer_name, customer_phone, brand, model, plate,
			year, notes, qr_code, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		v.ID, v.CustomerName, v.CustomerPhone, v.Brand, v.Model, v.Plate,
		nullableInt(v.Year), v.Notes, v.QRCode, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle: %w", err)
	}

	r.logger.DebugContext(ctx, "vehicle saved",
		slog.String("id", v.ID.String()),
		slog.String("plate", v.Plate))
	return nil
}

// Update updates an existing vehicle
func (r *vehicleRepository) Update(ctx context.Context, v *domain.CustomerVehicle) error {
	query := `
		UPDATE customer_vehicles SET
			customer_name = $2, customer_phone = $3, brand = $4, model = $5,
			plate = $6, year = $7, notes = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`

	v.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		v.ID, v.CustomerName, v.CustomerPhone, v.Brand, v.Model,
		v.Plate, nullableInt(v.Year), v.Notes, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle not found: %s", v.ID)
	}

	r.logger.DebugContext(ctx, "vehicle updated", slog.String("id", v.ID.String()))
	return nil
}

// FindByID retrieves a vehicle by ID
func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error) {
	query := vehicleSelect + ` WHERE id = $1 AND deleted_at IS NULL`

	v, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return v, nil
}

// FindByQRCode retrieves a vehicle by its public QR slug
func (r *vehicleRepository) FindByQRCode(ctx context.Context, code string) (*domain.CustomerVehicle, error) {
	query := vehicleSelect + ` WHERE qr_code = $1 AND deleted_at IS NULL`

	v, err := scanVehicle(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle by code: %w", err)
	}
	return v, nil
}

// FindAll retrieves vehicles with filtering and pagination
func (r *vehicleRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.CustomerVehicle, int64, error) {
	qb := squirrel.Select(
		"id", "customer_name", "customer_phone", "brand", "model", "plate",
		"year", "notes", "qr_code", "created_at", "updated_at",
	).From("customer_vehicles").
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"plate": pattern},
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"customer_phone": pattern},
			squirrel.ILike{"brand": pattern},
			squirrel.ILike{"model": pattern},
		})
	}
	if q.StartDate != nil {
		qb = qb.Where(squirrel.GtOrEq{"created_at": *q.StartDate})
	}
	if q.EndDate != nil {
		qb = qb.Where(squirrel.LtOrEq{"created_at": *q.EndDate})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	qb = qb.OrderBy("created_at DESC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*domain.CustomerVehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return vehicles, totalCount, nil
}

// Delete performs a hard delete
func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customer_vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle not found: %s", id)
	}

	r.logger.InfoContext(ctx, "vehicle deleted", slog.String("id", id.String()))
	return nil
}

// SoftDelete marks a vehicle as deleted
func (r *vehicleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE customer_vehicles SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle not found: %s", id)
	}

	r.logger.InfoContext(ctx, "vehicle soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted vehicles older than cutoff.
func (r *vehicleRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM customer_vehicles WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge vehicles: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanVehicle(row pgx.Row) (*domain.CustomerVehicle, error) {
	v := &domain.CustomerVehicle{}
	var year sql.NullInt32
	var phone, notes sql.NullString

	err := row.Scan(
		&v.ID, &v.CustomerName, &phone, &v.Brand, &v.Model, &v.Plate,
		&year, &notes, &v.QRCode, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CustomerPhone = phone.String
	v.Notes = notes.String
	v.Year = int(year.Int32)
	return v, nil
}

// nullableInt maps a zero value to NULL.
func nullableInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
