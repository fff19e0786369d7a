// internal/handlers/auth.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/handlers/middleware"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service ports.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "auth")),
	}
}

// Register handles POST /api/v1/auth/register. Restricted to admins via
// middleware.RequireRole.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user := req.ToDomain()

	if err := h.service.Register(ctx, user, req.Password); err != nil {
		h.logger.ErrorContext(ctx, "failed to register user",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to register user")
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("id", user.ID.String()),
		slog.String("role", string(user.Role)))

	respondJSON(w, h.logger, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, tokens, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to log in")
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("id", user.ID.String()))

	respondJSON(w, h.logger, http.StatusOK, LoginResponse{
		User:   user,
		Tokens: tokens,
	})
}

// Logout handles POST /api/v1/auth/logout. The token's jti is blacklisted
// until its natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		respondError(w, h.logger, http.StatusBadRequest, "Missing authorization token")
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err, "Failed to log out")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// Validate validates the register request
func (r *RegisterRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	switch domain.UserRole(r.Role) {
	case "", domain.RoleAdmin, domain.RoleStaff:
	default:
		return fmt.Errorf("invalid role: %s", r.Role)
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *RegisterRequest) ToDomain() *domain.User {
	return &domain.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      domain.UserRole(r.Role),
		Active:    true,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// LoginResponse is the payload returned on a successful login
type LoginResponse struct {
	User   *domain.User      `json:"user"`
	Tokens *ports.AuthTokens `json:"tokens"`
}
