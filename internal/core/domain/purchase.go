// internal/core/domain/purchase.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase represents a single part purchase from a supplier.
type Purchase struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	PartName      string          `json:"part_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedBy     uuid.UUID       `json:"created_by,omitempty"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the purchase
func (p *Purchase) Validate() error {
	if p.SupplierID == uuid.Nil {
		return fmt.Errorf("supplier_id is required")
	}
	if p.PartName == "" {
		return fmt.Errorf("part_name is required")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	return nil
}

// CalculateTotalCost derives total_cost from quantity and unit price
func (p *Purchase) CalculateTotalCost() {
	p.TotalCost = p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PrepareForStorage prepares the purchase for database storage
func (p *Purchase) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	p.CalculateTotalCost()

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if p.Date.IsZero() {
		p.Date = now
	}
}
