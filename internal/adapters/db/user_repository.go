// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
)

// userRepository implements ports.UserRepository
type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "user")),
	}
}

const userSelect = `
	SELECT id, first_name, last_name, email, password_hash, role, active,
		created_at, updated_at
	FROM users`

// Save creates a new user
func (r *userRepository) Save(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, role, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.Active,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	r.logger.DebugContext(ctx, "user saved",
		slog.String("id", u.ID.String()),
		slog.String("email", u.Email))
	return nil
}

// Update updates an existing user
func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users SET
			first_name = $2, last_name = $3, email = $4,
			password_hash = $5, role = $6, active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`

	u.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email,
		u.PasswordHash, u.Role, u.Active, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", u.ID)
	}

	r.logger.DebugContext(ctx, "user updated", slog.String("id", u.ID.String()))
	return nil
}

// FindByID retrieves a user by ID
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := userSelect + ` WHERE id = $1 AND deleted_at IS NULL`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

// FindByEmail retrieves a user by email, case-insensitively
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := userSelect + ` WHERE email = $1 AND deleted_at IS NULL`

	u, err := scanUser(r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

// FindAll lists every active account
func (r *userRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	query := userSelect + ` WHERE deleted_at IS NULL ORDER BY first_name, last_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, nil
}

// SoftDelete marks a user as deleted
func (r *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = $2, updated_at = $2, active = FALSE WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}

	r.logger.InfoContext(ctx, "user soft deleted", slog.String("id", id.String()))
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}
