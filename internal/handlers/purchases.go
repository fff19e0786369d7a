// internal/handlers/purchases.go
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

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	service ports.PurchaseService
	logger  *slog.Logger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(service ports.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "purchases")),
	}
}

// Get handles GET /api/v1/purchases/{id}
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	purchase, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get purchase",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve purchase")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, purchase)
}

// List handles GET /api/v1/purchases
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list purchases",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list purchases")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/v1/purchases
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	purchase := req.ToDomain()

	if user, ok := middleware.UserFromContext(ctx); ok {
		purchase.CreatedBy = user.ID
	}

	if err := h.service.Create(ctx, purchase); err != nil {
		h.logger.ErrorContext(ctx, "failed to create purchase",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create purchase")
		return
	}

	h.logger.InfoContext(ctx, "purchase created",
		slog.String("id", purchase.ID.String()),
		slog.String("part_name", purchase.PartName))

	respondJSON(w, h.logger, http.StatusCreated, purchase)
}

// Update handles PUT /api/v1/purchases/{id}
func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	purchase := req.ToDomain()

	if err := h.service.Update(ctx, id, purchase); err != nil {
		h.logger.ErrorContext(ctx, "failed to update purchase",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update purchase")
		return
	}

	updated, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Purchase updated successfully"})
		return
	}

	h.logger.InfoContext(ctx, "purchase updated", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/purchases/{id}
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	permanent := r.URL.Query().Get("permanent") == "true"

	if err := h.service.Delete(ctx, id, permanent); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete purchase",
			slog.String("id", idStr),
			slog.Bool("permanent", permanent),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete purchase")
		return
	}

	h.logger.InfoContext(ctx, "purchase deleted",
		slog.String("id", idStr),
		slog.Bool("permanent", permanent))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Purchase deleted successfully",
		"id":        idStr,
		"permanent": permanent,
	})
}

// PurchaseRequest represents the request body for creating or updating a purchase
type PurchaseRequest struct {
	Date       *time.Time      `json:"date,omitempty"`
	SupplierID string          `json:"supplier_id"`
	PartName   string          `json:"part_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// Validate validates the purchase request
func (r *PurchaseRequest) Validate() error {
	if r.SupplierID == "" {
		return fmt.Errorf("supplier_id is required")
	}
	if _, err := uuid.Parse(r.SupplierID); err != nil {
		return fmt.Errorf("supplier_id is not a valid UUID")
	}
	if r.PartName == "" {
		return fmt.Errorf("part_name is required")
	}
	if r.Quantity <= 0 {
		r.Quantity = 1
	}
	if r.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *PurchaseRequest) ToDomain() *domain.Purchase {
	purchase := &domain.Purchase{
		SupplierID: uuid.MustParse(r.SupplierID),
		PartName:   r.PartName,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice,
	}

	if r.Date != nil {
		purchase.Date = *r.Date
	}

	return purchase
}
