// internal/core/services/vehicle.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/pkg/paging"
	"github.com/sondurak/garage-be/internal/report"
)

const (
	publicHistoryTTL = 5 * time.Minute
	defaultQRSize    = 256
)

// VehicleService handles customer vehicle business logic, including the
// QR-addressed public history page.
type VehicleService struct {
	repo          ports.VehicleRepository
	repairs       ports.RepairRepository
	cache         ports.CacheRepository
	publicBaseURL string
	logger        *slog.Logger
}

// Statically assert that *VehicleService implements the VehicleService interface.
var _ ports.VehicleService = (*VehicleService)(nil)

// NewVehicleService creates a new vehicle service. publicBaseURL is the
// externally reachable origin encoded into QR stickers.
func NewVehicleService(repo ports.VehicleRepository, repairs ports.RepairRepository, cache ports.CacheRepository, publicBaseURL string, logger *slog.Logger) *VehicleService {
	return &VehicleService{
		repo:          repo,
		repairs:       repairs,
		cache:         cache,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger.With(slog.String("service", "vehicle")),
	}
}

// Create validates and stores a new vehicle
func (s *VehicleService) Create(ctx context.Context, v *domain.CustomerVehicle) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	v.PrepareForStorage()

	if err := s.repo.Save(ctx, v); err != nil {
		return fmt.Errorf("failed to save vehicle: %w", err)
	}

	s.logger.InfoContext(ctx, "saved vehicle",
		slog.String("id", v.ID.String()),
		slog.String("plate", v.Plate),
		slog.String("qr_code", v.QRCode))

	return nil
}

// Update updates an existing vehicle. The QR slug survives edits so
// printed stickers keep working.
func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, v *domain.CustomerVehicle) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load vehicle: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}

	v.ID = id
	v.QRCode = existing.QRCode
	v.CreatedAt = existing.CreatedAt

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	v.PrepareForStorage()

	if err := s.repo.Update(ctx, v); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.invalidateHistory(ctx, existing)

	s.logger.InfoContext(ctx, "updated vehicle", slog.String("id", id.String()))
	return nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerVehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return v, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, q report.Query) (*paging.Page[*domain.CustomerVehicle], error) {
	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return paging.New(items, int(total), q.Page, q.PageSize), nil
}

// Delete deletes a vehicle (soft delete by default)
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load vehicle: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}

	if permanent {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.SoftDelete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.invalidateHistory(ctx, existing)

	s.logger.InfoContext(ctx, "deleted vehicle",
		slog.String("id", id.String()),
		slog.Bool("permanent", permanent))
	return nil
}

// History assembles the full service history for a vehicle.
func (s *VehicleService) History(ctx context.Context, id uuid.UUID) (*domain.VehicleHistory, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildHistory(ctx, v)
}

// PublicHistory serves the QR-addressed tracking page. Results are cached
// briefly since sticker scans hit this without auth.
func (s *VehicleService) PublicHistory(ctx context.Context, qrCode string) (*domain.VehicleHistory, error) {
	v, err := s.repo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle by code: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("vehicle code %s: %w", qrCode, ErrNotFound)
	}

	if s.cache == nil {
		return s.buildHistory(ctx, v)
	}

	var history domain.VehicleHistory
	key := "vehicle:plate:" + v.Plate + ":history"
	err = s.cache.GetOrSet(ctx, key, &history, func() (interface{}, error) {
		return s.buildHistory(ctx, v)
	}, publicHistoryTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "cache bypass for vehicle history", slog.String("error", err.Error()))
		return s.buildHistory(ctx, v)
	}
	return &history, nil
}

// QRCodePNG renders the printable sticker image for a vehicle.
func (s *VehicleService) QRCodePNG(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}

	url := fmt.Sprintf("%s/vehicles/%s", s.publicBaseURL, v.QRCode)
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

func (s *VehicleService) buildHistory(ctx context.Context, v *domain.CustomerVehicle) (*domain.VehicleHistory, error) {
	repairs, err := s.repairs.FindByPlate(ctx, v.Plate)
	if err != nil {
		return nil, fmt.Errorf("failed to load repairs for plate %s: %w", v.Plate, err)
	}

	return &domain.VehicleHistory{
		Vehicle:       v,
		Statistics:    domain.ComputeVehicleStatistics(repairs),
		NextOilChange: domain.ComputeOilChangeStatus(repairs),
		Repairs:       repairs,
	}, nil
}

func (s *VehicleService) invalidateHistory(ctx context.Context, v *domain.CustomerVehicle) {
	if s.cache == nil {
		return
	}
	pattern := "vehicle:plate:" + v.Plate + ":*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate vehicle cache",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
	}
}
