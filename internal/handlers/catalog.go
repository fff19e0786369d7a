// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// CatalogHandler handles supplier and part reference data HTTP requests
type CatalogHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// GetSupplier handles GET /api/v1/suppliers/{id}
func (h *CatalogHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	supplier, err := h.service.GetSupplier(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get supplier",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve supplier")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, supplier)
}

// ListSuppliers handles GET /api/v1/suppliers
func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.ListSuppliers(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list suppliers",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list suppliers")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// CreateSupplier handles POST /api/v1/suppliers
func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	supplier := req.ToDomain()

	if err := h.service.CreateSupplier(ctx, supplier); err != nil {
		h.logger.ErrorContext(ctx, "failed to create supplier",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create supplier")
		return
	}

	h.logger.InfoContext(ctx, "supplier created",
		slog.String("id", supplier.ID.String()),
		slog.String("shop_name", supplier.ShopName))

	respondJSON(w, h.logger, http.StatusCreated, supplier)
}

// UpdateSupplier handles PUT /api/v1/suppliers/{id}
func (h *CatalogHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	supplier := req.ToDomain()

	if err := h.service.UpdateSupplier(ctx, id, supplier); err != nil {
		h.logger.ErrorContext(ctx, "failed to update supplier",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update supplier")
		return
	}

	updated, err := h.service.GetSupplier(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Supplier updated successfully"})
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// DeleteSupplier handles DELETE /api/v1/suppliers/{id}
func (h *CatalogHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	if err := h.service.DeleteSupplier(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete supplier",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete supplier")
		return
	}

	h.logger.InfoContext(ctx, "supplier deleted", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "Supplier deleted successfully",
		"id":      idStr,
	})
}

// GetPart handles GET /api/v1/parts/{id}
func (h *CatalogHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	part, err := h.service.GetPart(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get part",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve part")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, part)
}

// ListParts handles GET /api/v1/parts
func (h *CatalogHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.ListParts(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list parts",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list parts")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// CreatePart handles POST /api/v1/parts
func (h *CatalogHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	part := req.ToDomain()

	if err := h.service.CreatePart(ctx, part); err != nil {
		h.logger.ErrorContext(ctx, "failed to create part",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create part")
		return
	}

	h.logger.InfoContext(ctx, "part created",
		slog.String("id", part.ID.String()),
		slog.String("name", part.Name))

	respondJSON(w, h.logger, http.StatusCreated, part)
}

// UpdatePart handles PUT /api/v1/parts/{id}
func (h *CatalogHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	var req PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	part := req.ToDomain()

	if err := h.service.UpdatePart(ctx, id, part); err != nil {
		h.logger.ErrorContext(ctx, "failed to update part",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update part")
		return
	}

	updated, err := h.service.GetPart(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Part updated successfully"})
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// DeletePart handles DELETE /api/v1/parts/{id}
func (h *CatalogHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	if err := h.service.DeletePart(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete part",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete part")
		return
	}

	h.logger.InfoContext(ctx, "part deleted", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "Part deleted successfully",
		"id":      idStr,
	})
}

// SupplierRequest represents the request body for creating or updating a supplier
type SupplierRequest struct {
	ShopName    string `json:"shop_name"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Validate validates the supplier request
func (r *SupplierRequest) Validate() error {
	if r.ShopName == "" {
		return fmt.Errorf("shop_name is required")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *SupplierRequest) ToDomain() *domain.Supplier {
	return &domain.Supplier{
		ShopName:    r.ShopName,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

// PartRequest represents the request body for creating or updating a part
type PartRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// Validate validates the part request
func (r *PartRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *PartRequest) ToDomain() *domain.Part {
	return &domain.Part{
		Name:  r.Name,
		Notes: r.Notes,
	}
}
