// internal/report/summary.go
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one record's contribution to a report: the stored total plus the
// quantity, for resources that have one. The aggregator never re-derives
// totals from sub-fields; composite resources store their derived total
// before it gets here.
type Line struct {
	Quantity int
	Total    decimal.Decimal
}

// Summary is the aggregate block rendered under every report table.
type Summary struct {
	TotalItems    int             `json:"total_items"`
	TotalQuantity int             `json:"total_quantity,omitempty"`
	HasQuantity   bool            `json:"-"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// Summarize reduces a record list to its summary. It is a pure decimal
// reduction: rounding happens at format time only.
func Summarize(lines []Line) Summary {
	s := Summary{TotalCost: decimal.Zero}
	for _, l := range lines {
		s.TotalItems++
		if l.Quantity != 0 {
			s.HasQuantity = true
		}
		s.TotalQuantity += l.Quantity
		s.TotalCost = s.TotalCost.Add(l.Total)
	}
	return s
}

// FormatMoney renders a monetary value with two fraction digits and the
// currency suffix.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + " ₺"
}

// FormatDate renders a date in day.month.year order.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// OrDash substitutes the placeholder used for missing optional fields so a
// malformed record never breaks report generation.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
