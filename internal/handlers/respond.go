// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sondurak/garage-be/internal/core/services"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrEmailTaken):
		respondError(w, logger, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, logger, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrUserInactive):
		respondError(w, logger, http.StatusForbidden, "Account is disabled")
	case errors.Is(err, services.ErrTokenRevoked):
		respondError(w, logger, http.StatusUnauthorized, "Token has been revoked")
	default:
		respondError(w, logger, http.StatusInternalServerError, fallback)
	}
}
