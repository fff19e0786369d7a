// internal/handlers/repairs.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/handlers/middleware"
	"github.com/sondurak/garage-be/internal/report"
)

// RepairHandler handles repair-related HTTP requests
type RepairHandler struct {
	service ports.RepairService
	logger  *slog.Logger
}

// NewRepairHandler creates a new repair handler
func NewRepairHandler(service ports.RepairService, logger *slog.Logger) *RepairHandler {
	return &RepairHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "repairs")),
	}
}

// Get handles GET /api/v1/repairs/{id}
func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	repair, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get repair",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve repair")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, repair)
}

// List handles GET /api/v1/repairs
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list repairs",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list repairs")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/v1/repairs
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	repair := req.ToDomain()

	if user, ok := middleware.UserFromContext(ctx); ok {
		repair.CreatedBy = user.ID
	}

	if err := h.service.Create(ctx, repair); err != nil {
		h.logger.ErrorContext(ctx, "failed to create repair",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create repair")
		return
	}

	h.logger.InfoContext(ctx, "repair created",
		slog.String("id", repair.ID.String()),
		slog.String("plate", repair.Plate))

	respondJSON(w, h.logger, http.StatusCreated, repair)
}

// Update handles PUT /api/v1/repairs/{id}
func (h *RepairHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	var req RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	repair := req.ToDomain()

	if err := h.service.Update(ctx, id, repair); err != nil {
		h.logger.ErrorContext(ctx, "failed to update repair",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update repair")
		return
	}

	updated, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Repair updated successfully"})
		return
	}

	h.logger.InfoContext(ctx, "repair updated", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/repairs/{id}
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	permanent := r.URL.Query().Get("permanent") == "true"

	if err := h.service.Delete(ctx, id, permanent); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete repair",
			slog.String("id", idStr),
			slog.Bool("permanent", permanent),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete repair")
		return
	}

	h.logger.InfoContext(ctx, "repair deleted",
		slog.String("id", idStr),
		slog.Bool("permanent", permanent))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Repair deleted successfully",
		"id":        idStr,
		"permanent": permanent,
	})
}

// RepairPartRequest is one part line in a repair request
type RepairPartRequest struct {
	PartID    string          `json:"part_id"`
	PartName  string          `json:"part_name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RepairRequest represents the request body for creating or updating a repair
type RepairRequest struct {
	Date        *time.Time          `json:"date,omitempty"`
	Brand       string              `json:"brand"`
	Model       string              `json:"model"`
	Plate       string              `json:"plate"`
	Description string              `json:"description,omitempty"`
	MileageKM   int                 `json:"mileage_km,omitempty"`
	OilChange   bool                `json:"oil_change"`
	Parts       []RepairPartRequest `json:"parts,omitempty"`
	LaborCost   decimal.Decimal     `json:"labor_cost"`
}

// Validate validates the repair request
func (r *RepairRequest) Validate() error {
	if r.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if r.Model == "" {
		return fmt.Errorf("model is required")
	}
	if r.Plate == "" {
		return fmt.Errorf("plate is required")
	}
	if r.LaborCost.IsNegative() {
		return fmt.Errorf("labor_cost cannot be negative")
	}
	if r.MileageKM < 0 {
		return fmt.Errorf("mileage_km cannot be negative")
	}
	for i, part := range r.Parts {
		if part.PartID == "" {
			return fmt.Errorf("part line %d: part_id is required", i+1)
		}
		if _, err := uuid.Parse(part.PartID); err != nil {
			return fmt.Errorf("part line %d: part_id is not a valid UUID", i+1)
		}
		if part.Quantity <= 0 {
			return fmt.Errorf("part line %d: quantity must be positive", i+1)
		}
		if part.UnitPrice.IsNegative() {
			return fmt.Errorf("part line %d: unit_price cannot be negative", i+1)
		}
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *RepairRequest) ToDomain() *domain.Repair {
	repair := &domain.Repair{
		Brand:       r.Brand,
		Model:       r.Model,
		Plate:       r.Plate,
		Description: r.Description,
		MileageKM:   r.MileageKM,
		OilChange:   r.OilChange,
		LaborCost:   r.LaborCost,
	}

	if r.Date != nil {
		repair.Date = *r.Date
	}

	for _, part := range r.Parts {
		repair.Parts = append(repair.Parts, domain.RepairPart{
			PartID:    uuid.MustParse(part.PartID),
			PartName:  part.PartName,
			Quantity:  part.Quantity,
			UnitPrice: part.UnitPrice,
		})
	}

	return repair
}
