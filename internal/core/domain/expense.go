// internal/core/domain/expense.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents expense categories
type ExpenseCategory string

// Category constants
const (
	ExpenseRent      ExpenseCategory = "rent"
	ExpenseUtilities ExpenseCategory = "utilities"
	ExpenseSupplies  ExpenseCategory = "supplies"
	ExpenseTax       ExpenseCategory = "tax"
	ExpenseOther     ExpenseCategory = "other"
)

// Expense represents a shop expense (rent, utilities, consumables, ...).
type Expense struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Name          string          `json:"name"`
	Category      ExpenseCategory `json:"category"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedBy     uuid.UUID       `json:"created_by,omitempty"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the expense
func (e *Expense) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if e.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	if e.Category == "" {
		e.Category = ExpenseOther
	}
	return nil
}

// CalculateTotalCost derives total_cost from quantity and unit price
func (e *Expense) CalculateTotalCost() {
	e.TotalCost = e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// PrepareForStorage prepares the expense for database storage
func (e *Expense) PrepareForStorage() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	e.CalculateTotalCost()

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	if e.Date.IsZero() {
		e.Date = now
	}
}
