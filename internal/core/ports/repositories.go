// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/report"
)

// PurchaseRepository defines the persistence port for purchases.
// This interface is implemented by the database adapter.
type PurchaseRepository interface {
	Save(ctx context.Context, p *domain.Purchase) error
	SaveBatch(ctx context.Context, purchases []domain.Purchase) error
	Update(ctx context.Context, p *domain.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	// FindAll returns the requested page plus the total filtered count.
	// A zero PageSize disables paging and returns the full filtered set.
	FindAll(ctx context.Context, q report.Query) ([]*domain.Purchase, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RepairRepository defines the persistence port for repairs.
type RepairRepository interface {
	Save(ctx context.Context, r *domain.Repair) error
	Update(ctx context.Context, r *domain.Repair) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	FindAll(ctx context.Context, q report.Query) ([]*domain.Repair, int64, error)
	// FindByPlate returns every repair for a normalized plate, newest first.
	FindByPlate(ctx context.Context, plate string) ([]*domain.Repair, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ExpenseRepository defines the persistence port for expenses.
type ExpenseRepository interface {
	Save(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, e *domain.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	FindAll(ctx context.Context, q report.Query) ([]*domain.Expense, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// VehicleRepository defines the persistence port for customer vehicles.
type VehicleRepository interface {
	Save(ctx context.Context, v *domain.CustomerVehicle) error
	Update(ctx context.Context, v *domain.CustomerVehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error)
	FindByQRCode(ctx context.Context, code string) (*domain.CustomerVehicle, error)
	FindAll(ctx context.Context, q report.Query) ([]*domain.CustomerVehicle, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SupplierRepository defines the persistence port for suppliers.
type SupplierRepository interface {
	Save(ctx context.Context, s *domain.Supplier) error
	Update(ctx context.Context, s *domain.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	FindAll(ctx context.Context, q report.Query) ([]*domain.Supplier, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PartRepository defines the persistence port for the parts catalog.
type PartRepository interface {
	Save(ctx context.Context, p *domain.Part) error
	Update(ctx context.Context, p *domain.Part) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	FindAll(ctx context.Context, q report.Query) ([]*domain.Part, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserRepository defines the persistence port for user accounts.
type UserRepository interface {
	Save(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// AnalysisRepository aggregates the per-resource totals for the profit
// report in the database rather than in memory.
type AnalysisRepository interface {
	Totals(ctx context.Context, q report.Query) (*domain.Analysis, error)
}
