// internal/core/domain/repair.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepairPart is a single part line fitted during a repair.
type RepairPart struct {
	PartID    uuid.UUID       `json:"part_id"`
	PartName  string          `json:"part_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns quantity x unit price for this part line
func (rp *RepairPart) LineTotal() decimal.Decimal {
	return rp.UnitPrice.Mul(decimal.NewFromInt(int64(rp.Quantity)))
}

// Repair represents one vehicle repair job. Its total cost is the sum of
// the labor cost and the part lines; both derived fields are stored so the
// reporting queries never re-derive them.
type Repair struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Plate         string          `json:"plate"`
	Description   string          `json:"description"`
	MileageKM     int             `json:"mileage_km,omitempty"`
	OilChange     bool            `json:"oil_change"`
	Parts         []RepairPart    `json:"parts"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedBy     uuid.UUID       `json:"created_by,omitempty"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the repair
func (r *Repair) Validate() error {
	if r.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if r.Model == "" {
		return fmt.Errorf("model is required")
	}
	if r.Plate == "" {
		return fmt.Errorf("plate is required")
	}
	if r.LaborCost.IsNegative() {
		return fmt.Errorf("labor_cost cannot be negative")
	}
	for i := range r.Parts {
		if r.Parts[i].Quantity <= 0 {
			return fmt.Errorf("part line %d: quantity must be positive", i+1)
		}
		if r.Parts[i].UnitPrice.IsNegative() {
			return fmt.Errorf("part line %d: unit_price cannot be negative", i+1)
		}
	}
	return nil
}

// CalculateTotals derives parts_cost and total_cost from the part lines
// and the labor cost.
func (r *Repair) CalculateTotals() {
	partsCost := decimal.Zero
	for i := range r.Parts {
		partsCost = partsCost.Add(r.Parts[i].LineTotal())
	}
	r.PartsCost = partsCost
	r.TotalCost = r.LaborCost.Add(partsCost)
}

// PrepareForStorage prepares the repair for database storage
func (r *Repair) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	// Plates are stored uppercase without surrounding whitespace
	r.Plate = NormalizePlate(r.Plate)

	r.CalculateTotals()

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if r.Date.IsZero() {
		r.Date = now
	}
}

// NormalizePlate canonicalizes a license plate for storage and lookup.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
