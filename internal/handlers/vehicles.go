// internal/handlers/vehicles.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// VehicleHandler handles customer vehicle HTTP requests, including the
// public QR-addressed history page.
type VehicleHandler struct {
	service ports.VehicleService
	logger  *slog.Logger
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(service ports.VehicleService, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "vehicles")),
	}
}

// Get handles GET /api/v1/vehicles/{id}
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get vehicle",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve vehicle")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, vehicle)
}

// List handles GET /api/v1/vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list vehicles",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/v1/vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := req.ToDomain()

	if err := h.service.Create(ctx, vehicle); err != nil {
		h.logger.ErrorContext(ctx, "failed to create vehicle",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create vehicle")
		return
	}

	h.logger.InfoContext(ctx, "vehicle created",
		slog.String("id", vehicle.ID.String()),
		slog.String("plate", vehicle.Plate))

	respondJSON(w, h.logger, http.StatusCreated, vehicle)
}

// Update handles PUT /api/v1/vehicles/{id}
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := req.ToDomain()

	if err := h.service.Update(ctx, id, vehicle); err != nil {
		h.logger.ErrorContext(ctx, "failed to update vehicle",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update vehicle")
		return
	}

	updated, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Vehicle updated successfully"})
		return
	}

	h.logger.InfoContext(ctx, "vehicle updated", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	permanent := r.URL.Query().Get("permanent") == "true"

	if err := h.service.Delete(ctx, id, permanent); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete vehicle",
			slog.String("id", idStr),
			slog.Bool("permanent", permanent),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete vehicle")
		return
	}

	h.logger.InfoContext(ctx, "vehicle deleted",
		slog.String("id", idStr),
		slog.Bool("permanent", permanent))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Vehicle deleted successfully",
		"id":        idStr,
		"permanent": permanent,
	})
}

// History handles GET /api/v1/vehicles/{id}/history
func (h *VehicleHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	history, err := h.service.History(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get vehicle history",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve vehicle history")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, history)
}

// PublicHistory handles GET /public/vehicles/{qr}. It is the only
// unauthenticated data endpoint; the QR slug is the capability.
func (h *VehicleHandler) PublicHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qrCode := r.PathValue("qr")

	if qrCode == "" {
		respondError(w, h.logger, http.StatusBadRequest, "Missing QR code")
		return
	}

	history, err := h.service.PublicHistory(ctx, qrCode)
	if err != nil {
		h.logger.WarnContext(ctx, "public history lookup failed",
			slog.String("qr_code", qrCode),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve vehicle history")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, history)
}

// QRCode handles GET /api/v1/vehicles/{id}/qrcode and streams the
// printable sticker as image/png.
func (h *VehicleHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	size := 256
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 64 || parsed > 1024 {
			respondError(w, h.logger, http.StatusBadRequest, "Size must be between 64 and 1024")
			return
		}
		size = parsed
	}

	png, err := h.service.QRCodePNG(ctx, id, size)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render QR code",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.ErrorContext(ctx, "failed to write QR code response",
			slog.String("error", err.Error()))
	}
}

// VehicleRequest represents the request body for creating or updating a vehicle
type VehicleRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Plate         string `json:"plate"`
	Year          int    `json:"year,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Validate validates the vehicle request
func (r *VehicleRequest) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if r.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if r.Model == "" {
		return fmt.Errorf("model is required")
	}
	if r.Plate == "" {
		return fmt.Errorf("plate is required")
	}
	if r.Year != 0 && (r.Year < 1950 || r.Year > 2100) {
		return fmt.Errorf("year is out of range")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *VehicleRequest) ToDomain() *domain.CustomerVehicle {
	return &domain.CustomerVehicle{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Brand:         r.Brand,
		Model:         r.Model,
		Plate:         r.Plate,
		Year:          r.Year,
		Notes:         r.Notes,
	}
}
