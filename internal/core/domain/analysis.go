// internal/core/domain/analysis.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResourceTotals is one resource's contribution to the profit analysis.
type ResourceTotals struct {
	Count         int             `json:"count"`
	TotalQuantity int             `json:"total_quantity,omitempty"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// Analysis is the shop-wide profit report for a date range. Revenue comes
// from repairs; purchases and expenses are costs. Gross profit excludes
// overhead expenses, net profit includes them.
type Analysis struct {
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCosts   decimal.Decimal `json:"total_costs"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Repairs      ResourceTotals  `json:"repairs"`
	Purchases    ResourceTotals  `json:"purchases"`
	Expenses     ResourceTotals  `json:"expenses"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// Derive fills the headline figures from the per-resource blocks.
func (a *Analysis) Derive() {
	a.TotalRevenue = a.Repairs.TotalCost
	a.TotalCosts = a.Purchases.TotalCost.Add(a.Expenses.TotalCost)
	a.GrossProfit = a.TotalRevenue.Sub(a.Purchases.TotalCost)
	a.NetProfit = a.TotalRevenue.Sub(a.TotalCosts)
}
