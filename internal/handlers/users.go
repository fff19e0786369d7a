// internal/handlers/users.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/handlers/middleware"
)

// UserHandler handles user administration requests. All routes are
// admin-only; account creation goes through AuthHandler.Register.
type UserHandler struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users ports.UserRepository, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("handler", "users")),
	}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.FindAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, users)
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := h.users.FindByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		respondServiceError(w, h.logger, services.ErrNotFound, "Failed to retrieve user")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// Update handles PUT /api/v1/users/{id}. Password changes go through a
// fresh register/login flow, not here.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var req UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindByID(ctx, id)
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		respondServiceError(w, h.logger, services.ErrNotFound, "Failed to retrieve user")
		return
	}

	req.Apply(user)
	user.UpdatedAt = time.Now()

	if err := h.users.Update(ctx, user); err != nil {
		h.logger.ErrorContext(ctx, "failed to update user",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to update user")
		return
	}

	h.logger.InfoContext(ctx, "user updated", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, user)
}

// Delete handles DELETE /api/v1/users/{id}. Accounts are soft-deleted so
// the created_by references in purchases and repairs stay resolvable.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if caller, ok := middleware.UserFromContext(ctx); ok && caller.ID == id {
		respondError(w, h.logger, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := h.users.SoftDelete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("id", idStr),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	h.logger.InfoContext(ctx, "user deleted", slog.String("id", idStr))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
		"id":      idStr,
	})
}

// UserUpdateRequest represents the request body for updating a user
type UserUpdateRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

// Validate validates the user update request
func (r *UserUpdateRequest) Validate() error {
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	switch domain.UserRole(r.Role) {
	case "", domain.RoleAdmin, domain.RoleStaff:
	default:
		return fmt.Errorf("invalid role: %s", r.Role)
	}
	return nil
}

// Apply copies the non-empty fields onto the stored user.
func (r *UserUpdateRequest) Apply(u *domain.User) {
	if r.FirstName != "" {
		u.FirstName = r.FirstName
	}
	if r.LastName != "" {
		u.LastName = r.LastName
	}
	if r.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(r.Email))
	}
	if r.Role != "" {
		u.Role = domain.UserRole(r.Role)
	}
	if r.Active != nil {
		u.Active = *r.Active
	}
}
