// internal/handlers/expenses.go
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

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	service ports.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(service ports.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "expenses")),
	}
}

// Get handles GET /api/v1/expenses/{id}
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	expense, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get expense",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to retrieve expense")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, expense)
}

// List handles GET /api/v1/expenses
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := report.ParseQuery(r.URL.Query(), report.DefaultPageSize)

	page, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list expenses",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list expenses")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/v1/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	expense := req.ToDomain()

	if user, ok := middleware.UserFromContext(ctx); ok {
		expense.CreatedBy = user.ID
	}

	if err := h.service.Create(ctx, expense); err != nil {
		h.logger.ErrorContext(ctx, "failed to create expense",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to create expense")
		return
	}

	h.logger.InfoContext(ctx, "expense created",
		slog.String("id", expense.ID.String()),
		slog.String("name", expense.Name))

	respondJSON(w, h.logger, http.StatusCreated, expense)
}

// Update handles PUT /api/v1/expenses/{id}
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	expense := req.ToDomain()

	if err := h.service.Update(ctx, id, expense); err != nil {
		h.logger.ErrorContext(ctx, "failed to update expense",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to update expense")
		return
	}

	updated, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Expense updated successfully"})
		return
	}

	h.logger.InfoContext(ctx, "expense updated", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/expenses/{id}
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	permanent := r.URL.Query().Get("permanent") == "true"

	if err := h.service.Delete(ctx, id, permanent); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete expense",
			slog.String("id", idStr),
			slog.Bool("permanent", permanent),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to delete expense")
		return
	}

	h.logger.InfoContext(ctx, "expense deleted",
		slog.String("id", idStr),
		slog.Bool("permanent", permanent))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Expense deleted successfully",
		"id":        idStr,
		"permanent": permanent,
	})
}

// ExpenseRequest represents the request body for creating or updating an expense
type ExpenseRequest struct {
	Date      *time.Time      `json:"date,omitempty"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Validate validates the expense request
func (r *ExpenseRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Quantity <= 0 {
		r.Quantity = 1
	}
	if r.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	switch domain.ExpenseCategory(r.Category) {
	case "", domain.ExpenseRent, domain.ExpenseUtilities, domain.ExpenseSupplies, domain.ExpenseTax, domain.ExpenseOther:
	default:
		return fmt.Errorf("invalid category: %s", r.Category)
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *ExpenseRequest) ToDomain() *domain.Expense {
	expense := &domain.Expense{
		Name:      r.Name,
		Category:  domain.ExpenseCategory(r.Category),
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}

	if r.Date != nil {
		expense.Date = *r.Date
	}

	return expense
}
