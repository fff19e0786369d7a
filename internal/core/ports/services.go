// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/pkg/paging"
	"github.com/sondurak/garage-be/internal/report"
)

// PurchaseService defines the application service port for purchases.
type PurchaseService interface {
	Create(ctx context.Context, p *domain.Purchase) error
	Update(ctx context.Context, id uuid.UUID, p *domain.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, q report.Query) (*paging.Page[*domain.Purchase], error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
}

// RepairService defines the application service port for repairs.
type RepairService interface {
	Create(ctx context.Context, r *domain.Repair) error
	Update(ctx context.Context, id uuid.UUID, r *domain.Repair) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	List(ctx context.Context, q report.Query) (*paging.Page[*domain.Repair], error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
}

// ExpenseService defines the application service port for expenses.
type ExpenseService interface {
	Create(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, id uuid.UUID, e *domain.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	List(ctx context.Context, q report.Query) (*paging.Page[*domain.Expense], error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
}

// VehicleService defines the application service port for customer
// vehicles, including the public QR-addressed history page.
type VehicleService interface {
	Create(ctx context.Context, v *domain.CustomerVehicle) error
	Update(ctx context.Context, id uuid.UUID, v *domain.CustomerVehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error)
	List(ctx context.Context, q report.Query) (*paging.Page[*domain.CustomerVehicle], error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error

	// History assembles the vehicle, its repairs matched by plate and the
	// derived statistics and oil-change status.
	History(ctx context.Context, id uuid.UUID) (*domain.VehicleHistory, error)
	// PublicHistory is History addressed by QR slug, served without auth.
	PublicHistory(ctx context.Context, qrCode string) (*domain.VehicleHistory, error)
	// QRCodePNG renders the printable sticker image for a vehicle.
	QRCodePNG(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
}

// CatalogService manages the supplier and part reference data.
type CatalogService interface {
	CreateSupplier(ctx context.Context, s *domain.Supplier) error
	UpdateSupplier(ctx context.Context, id uuid.UUID, s *domain.Supplier) error
	GetSupplier(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, q report.Query) (*paging.Page[*domain.Supplier], error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error

	CreatePart(ctx context.Context, p *domain.Part) error
	UpdatePart(ctx context.Context, id uuid.UUID, p *domain.Part) error
	GetPart(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	ListParts(ctx context.Context, q report.Query) (*paging.Page[*domain.Part], error)
	DeletePart(ctx context.Context, id uuid.UUID) error
}

// AuthTokens is the pair issued on login.
type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService defines authentication and session management.
type AuthService interface {
	Register(ctx context.Context, u *domain.User, password string) error
	Login(ctx context.Context, email, password string) (*domain.User, *AuthTokens, error)
	// Logout blacklists the token's jti until its natural expiry.
	Logout(ctx context.Context, token string) error
	// Authenticate validates a bearer token and returns its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AnalysisService computes the shop-wide profit report over the full
// filtered set.
type AnalysisService interface {
	Analyze(ctx context.Context, q report.Query) (*domain.Analysis, error)
	// Refresh recomputes and re-caches the unfiltered analysis.
	Refresh(ctx context.Context) error
}

// Export is a rendered report ready to be sent or archived.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the filtered report documents.
type ExportService interface {
	PurchasesPDF(ctx context.Context, q report.Query) (*Export, error)
	PurchasesExcel(ctx context.Context, q report.Query) (*Export, error)
	ExpensesPDF(ctx context.Context, q report.Query) (*Export, error)
	RepairsPDF(ctx context.Context, q report.Query) (*Export, error)
	VehicleHistoryPDF(ctx context.Context, vehicleID uuid.UUID) (*Export, error)
}
