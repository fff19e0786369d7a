// internal/core/domain/repair_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sondurak/garage-be/internal/core/domain"
)

func TestRepair_CalculateTotals(t *testing.T) {
	tests := []struct {
		name          string
		laborCost     decimal.Decimal
		parts         []domain.RepairPart
		wantPartsCost string
		wantTotalCost string
	}{
		{
			name:      "labor_plus_part_lines",
			laborCost: decimal.NewFromInt(1000),
			parts: []domain.RepairPart{
				{PartName: "Alternatör", Quantity: 1, UnitPrice: decimal.NewFromInt(3500)},
				{PartName: "V Kayışı", Quantity: 2, UnitPrice: decimal.NewFromFloat(150.50)},
			},
			wantPartsCost: "3801",
			wantTotalCost: "4801",
		},
		{
			name:          "labor_only",
			laborCost:     decimal.NewFromInt(750),
			parts:         nil,
			wantPartsCost: "0",
			wantTotalCost: "750",
		},
		{
			name:          "zero_everything",
			laborCost:     decimal.Zero,
			parts:         nil,
			wantPartsCost: "0",
			wantTotalCost: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Repair{LaborCost: tt.laborCost, Parts: tt.parts}
			r.CalculateTotals()

			assert.Equal(t, tt.wantPartsCost, r.PartsCost.String())
			assert.Equal(t, tt.wantTotalCost, r.TotalCost.String())
		})
	}
}

func TestRepair_Validate(t *testing.T) {
	valid := func() *domain.Repair {
		return &domain.Repair{
			Brand:     "Ford",
			Model:     "Focus",
			Plate:     "06 XYZ 42",
			LaborCost: decimal.NewFromInt(500),
			Parts: []domain.RepairPart{
				{PartName: "Akü", Quantity: 1, UnitPrice: decimal.NewFromInt(2400)},
			},
		}
	}

	t.Run("accepts_valid_repair", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects_missing_plate", func(t *testing.T) {
		r := valid()
		r.Plate = ""
		assert.Error(t, r.Validate())
	})

	t.Run("rejects_negative_labor_cost", func(t *testing.T) {
		r := valid()
		r.LaborCost = decimal.NewFromInt(-1)
		assert.Error(t, r.Validate())
	})

	t.Run("rejects_zero_quantity_part_line", func(t *testing.T) {
		r := valid()
		r.Parts[0].Quantity = 0
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "part line 1")
	})
}

func TestRepair_PrepareForStorage(t *testing.T) {
	r := &domain.Repair{
		Brand:     "Renault",
		Model:     "Clio",
		Plate:     "  34 abc 123 ",
		LaborCost: decimal.NewFromInt(300),
	}
	r.PrepareForStorage()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.ID.String())
	assert.Equal(t, "34 ABC 123", r.Plate)
	assert.Equal(t, "300", r.TotalCost.String())
	assert.False(t, r.CreatedAt.IsZero())
	assert.False(t, r.Date.IsZero())
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "34 ABC 123", domain.NormalizePlate("  34 abc 123 "))
	assert.Equal(t, "06 XYZ 42", domain.NormalizePlate("06 XYZ 42"))
}

func TestComputeOilChangeStatus(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("derives_next_change_from_last_oil_change", func(t *testing.T) {
		repairs := []*domain.Repair{
			{Date: jan, MileageKM: 80000, OilChange: true},
			{Date: mar, MileageKM: 84500},
		}
		status := domain.ComputeOilChangeStatus(repairs)
		require.NotNil(t, status)
		assert.Equal(t, 80000, status.LastChangeKM)
		assert.Equal(t, 90000, status.NextChangeKM)
		assert.Equal(t, 84500, status.CurrentKM)
		assert.Equal(t, 5500, status.RemainingKM)
		assert.False(t, status.IsOverdue)
	})

	t.Run("flags_overdue_vehicle", func(t *testing.T) {
		repairs := []*domain.Repair{
			{Date: jan, MileageKM: 80000, OilChange: true},
			{Date: mar, MileageKM: 91000},
		}
		status := domain.ComputeOilChangeStatus(repairs)
		require.NotNil(t, status)
		assert.True(t, status.IsOverdue)
	})

	t.Run("nil_without_any_oil_change", func(t *testing.T) {
		repairs := []*domain.Repair{{Date: jan, MileageKM: 80000}}
		assert.Nil(t, domain.ComputeOilChangeStatus(repairs))
	})
}
