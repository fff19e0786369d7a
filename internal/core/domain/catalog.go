// internal/core/domain/catalog.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Part is a catalog entry used for purchase autocomplete and repair lines.
type Part struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the part
func (p *Part) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// PrepareForStorage prepares the part for database storage
func (p *Part) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// Supplier is a parts dealer the shop buys from.
type Supplier struct {
	ID          uuid.UUID  `json:"id"`
	ShopName    string     `json:"shop_name"`
	ContactName string     `json:"contact_name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the supplier
func (s *Supplier) Validate() error {
	if s.ShopName == "" {
		return fmt.Errorf("shop_name is required")
	}
	return nil
}

// PrepareForStorage prepares the supplier for database storage
func (s *Supplier) PrepareForStorage() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
