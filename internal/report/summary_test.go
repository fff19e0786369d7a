package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sondurak/garage-be/internal/report"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	lines := []report.Line{
		{Quantity: 2, Total: money("100.00")},
		{Quantity: 1, Total: money("250.50")},
		{Quantity: 3, Total: money("49.50")},
	}

	s := report.Summarize(lines)
	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 6, s.TotalQuantity)
	assert.True(t, s.HasQuantity)
	assert.True(t, s.TotalCost.Equal(money("400.00")), "got %s", s.TotalCost)
}

func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil)
	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 0, s.TotalQuantity)
	assert.False(t, s.HasQuantity)
	assert.True(t, s.TotalCost.IsZero())
}

func TestSummarize_NoDriftOnManySmallAmounts(t *testing.T) {
	// 1000 x 0.10 must come out to exactly 100.00
	lines := make([]report.Line, 1000)
	for i := range lines {
		lines[i] = report.Line{Total: money("0.10")}
	}
	s := report.Summarize(lines)
	assert.Equal(t, "100.00 ₺", report.FormatMoney(s.TotalCost))
}

func TestSummarize_QuantitylessResource(t *testing.T) {
	lines := []report.Line{
		{Total: money("1200.00")},
		{Total: money("350.25")},
	}
	s := report.Summarize(lines)
	assert.False(t, s.HasQuantity)
	assert.Equal(t, "1550.25 ₺", report.FormatMoney(s.TotalCost))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00 ₺", report.FormatMoney(decimal.Zero))
	assert.Equal(t, "1250.50 ₺", report.FormatMoney(money("1250.5")))
	assert.Equal(t, "-10.00 ₺", report.FormatMoney(money("-10")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "07.03.2024", report.FormatDate(d))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", report.OrDash(""))
	assert.Equal(t, "Ahmet", report.OrDash("Ahmet"))
}
