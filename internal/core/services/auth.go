// internal/core/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
)

const blacklistPrefix = "session:blacklist:"

// Claims is the JWT payload issued on login.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates JWT sessions. Logout works by
// blacklisting the token's jti in Redis until its natural expiry.
type AuthService struct {
	users    ports.UserRepository
	cache    ports.CacheRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

// Statically assert that *AuthService implements the AuthService interface.
var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(users ports.UserRepository, cache ports.CacheRepository, secret string, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		cache:    cache,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger.With(slog.String("service", "auth")),
	}
}

// Register creates a new user account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, u *domain.User, password string) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	u.PrepareForStorage()

	existing, err := s.users.FindByEmail(ctx, u.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	u.Active = true

	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.InfoContext(ctx, "registered user",
		slog.String("id", u.ID.String()),
		slog.String("email", u.Email),
		slog.String("role", string(u.Role)))
	return nil
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.AuthTokens, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		// burn a hash comparison so the timing does not leak existence
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv"), []byte(password))
		return nil, nil, ErrInvalidCredentials
	}
	if !u.Active {
		return nil, nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := Claims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("id", u.ID.String()),
		slog.String("email", u.Email))

	return u, &ports.AuthTokens{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout blacklists the token's jti for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.SetWithTTL(ctx, blacklistPrefix+claims.ID, "1", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged out", slog.String("user_id", claims.Subject))
	return nil
}

// Authenticate validates a bearer token and returns its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.cache.Exists(ctx, blacklistPrefix+claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("malformed subject claim: %w", err)
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil || !u.Active {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", err)
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
