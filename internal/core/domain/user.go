// internal/core/domain/user.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User is a shop employee account. PasswordHash is bcrypt and never
// serialized.
type User struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns the display name used in report columns
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate performs domain validation on the user
func (u *User) Validate() error {
	if u.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if u.Role == "" {
		u.Role = RoleStaff
	}
	return nil
}

// PrepareForStorage prepares the user for database storage
func (u *User) PrepareForStorage() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}
