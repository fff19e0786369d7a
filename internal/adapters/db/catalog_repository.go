// internal/adapters/db/catalog_repository.go
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

// supplierRepository implements ports.SupplierRepository
type supplierRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *Database, logger *slog.Logger) ports.SupplierRepository {
	return &supplierRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "supplier")),
	}
}

// Save creates a new supplier
func (r *supplierRepository) Save(ctx context.Context, s *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (
			id, shop_name, contact_name, phone, address, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.ShopName, s.ContactName, s.Phone, s.Address, s.Notes,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}

	r.logger.DebugContext(ctx, "supplier saved",
		slog.String("id", s.ID.String()),
		slog.String("shop_name", s.ShopName))
	return nil
}

// Update updates an existing supplier
func (r *supplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	query := `
		UPDATE suppliers SET
			shop_name = $2, contact_name = $3, phone = $4,
			address = $5, notes = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`

	s.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.ShopName, s.ContactName, s.Phone, s.Address, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found: %s", s.ID)
	}

	r.logger.DebugContext(ctx, "supplier updated", slog.String("id", s.ID.String()))
	return nil
}

// FindByID retrieves a supplier by ID
func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	query := `
		SELECT id, shop_name, contact_name, phone, address, notes, created_at, updated_at
		FROM suppliers
		WHERE id = $1 AND deleted_at IS NULL`

	s, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return s, nil
}

// FindAll retrieves suppliers with filtering and pagination
func (r *supplierRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Supplier, int64, error) {
	qb := squirrel.Select(
		"id", "shop_name", "contact_name", "phone", "address", "notes",
		"created_at", "updated_at",
	).From("suppliers").
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"shop_name": pattern},
			squirrel.ILike{"contact_name": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	qb = qb.OrderBy("shop_name ASC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return suppliers, totalCount, nil
}

// SoftDelete marks a supplier as deleted
func (r *supplierRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE suppliers SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found: %s", id)
	}

	r.logger.InfoContext(ctx, "supplier soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted suppliers older than cutoff.
func (r *supplierRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge suppliers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	var contactName, phone, address, notes sql.NullString

	err := row.Scan(
		&s.ID, &s.ShopName, &contactName, &phone, &address, &notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ContactName = contactName.String
	s.Phone = phone.String
	s.Address = address.String
	s.Notes = notes.String
	return s, nil
}

// partRepository implements ports.PartRepository
type partRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *Database, logger *slog.Logger) ports.PartRepository {
	return &partRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "part")),
	}
}

// Save creates a new catalog part
func (r *partRepository) Save(ctx context.Context, p *domain.Part) error {
	query := `
		INSERT INTO parts (id, name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save part: %w", err)
	}

	r.logger.DebugContext(ctx, "part saved",
		slog.String("id", p.ID.String()),
		slog.String("name", p.Name))
	return nil
}

// Update updates an existing catalog part
func (r *partRepository) Update(ctx context.Context, p *domain.Part) error {
	query := `
		UPDATE parts SET name = $2, notes = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`

	p.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Notes, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("part not found: %s", p.ID)
	}

	r.logger.DebugContext(ctx, "part updated", slog.String("id", p.ID.String()))
	return nil
}

// FindByID retrieves a catalog part by ID
func (r *partRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	query := `
		SELECT id, name, notes, created_at, updated_at
		FROM parts
		WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanPart(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}
	return p, nil
}

// FindAll retrieves catalog parts with filtering and pagination
func (r *partRepository) FindAll(ctx context.Context, q report.Query) ([]*domain.Part, int64, error) {
	qb := squirrel.Select("id", "name", "notes", "created_at", "updated_at").
		From("parts").
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		qb = qb.Where(squirrel.ILike{"name": "%" + q.Search + "%"})
	}

	totalCount, err := countRows(ctx, r.db, qb)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	qb = qb.OrderBy("name ASC")
	qb = paginate(qb, q)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query parts: %w", err)
	}
	defer rows.Close()

	var parts []*domain.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return parts, totalCount, nil
}

// SoftDelete marks a catalog part as deleted
func (r *partRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE parts SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("part not found: %s", id)
	}

	r.logger.InfoContext(ctx, "part soft deleted", slog.String("id", id.String()))
	return nil
}

// PurgeDeletedBefore removes soft-deleted parts older than cutoff.
func (r *partRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM parts WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge parts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPart(row pgx.Row) (*domain.Part, error) {
	p := &domain.Part{}
	var notes sql.NullString

	err := row.Scan(&p.ID, &p.Name, &notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Notes = notes.String
	return p, nil
}
