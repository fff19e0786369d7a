// internal/handlers/middleware/auth.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/pkg/logger"
)

type userContextKey struct{}

// UserFromContext returns the authenticated user set by Authenticate.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(*domain.User)
	return u, ok
}

// Authenticate validates the bearer token on every request and stores the
// resolved user in the request context. Requests without a valid token get
// a 401 before reaching the handler.
func Authenticate(auth ports.AuthService, slogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "Missing authorization token")
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				slogger.WarnContext(r.Context(), "authentication failed",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()))
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			ctx = context.WithValue(ctx, logger.ContextKeyUserID, user.ID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole restricts a route to users holding the given role. Must run
// after Authenticate.
func RequireRole(role domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}

			if user.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Insufficient permissions"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
