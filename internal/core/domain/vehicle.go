// internal/core/domain/vehicle.go
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OilChangeIntervalKM is the mileage between oil services used to compute
// the next-service estimate on the public vehicle page.
const OilChangeIntervalKM = 10000

// CustomerVehicle represents a customer's vehicle tracked by the shop.
// QRCode is a stable random slug embedded in the printed QR sticker; the
// public history page is addressed by it, never by the row ID.
type CustomerVehicle struct {
	ID            uuid.UUID  `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Brand         string     `json:"brand"`
	Model         string     `json:"model"`
	Plate         string     `json:"plate"`
	Year          int        `json:"year,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	QRCode        string     `json:"qr_code"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the vehicle
func (v *CustomerVehicle) Validate() error {
	if v.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if v.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if v.Model == "" {
		return fmt.Errorf("model is required")
	}
	if v.Plate == "" {
		return fmt.Errorf("plate is required")
	}
	return nil
}

// PrepareForStorage prepares the vehicle for database storage
func (v *CustomerVehicle) PrepareForStorage() {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.QRCode == "" {
		v.QRCode = newQRSlug()
	}

	v.Plate = NormalizePlate(v.Plate)

	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
}

func newQRSlug() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}

// VehicleStatistics summarizes a vehicle's repair history.
type VehicleStatistics struct {
	TotalRepairs    int             `json:"total_repairs"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalParts      int             `json:"total_parts"`
	FirstRepairDate *time.Time      `json:"first_repair_date,omitempty"`
	LastRepairDate  *time.Time      `json:"last_repair_date,omitempty"`
}

// OilChangeStatus reports where the vehicle stands against its oil-service
// interval, derived from the most recent repair flagged as an oil change.
type OilChangeStatus struct {
	LastChangeKM int        `json:"last_change_km"`
	LastChangeAt *time.Time `json:"last_change_at,omitempty"`
	CurrentKM    int        `json:"current_km"`
	NextChangeKM int        `json:"next_change_km"`
	RemainingKM  int        `json:"remaining_km"`
	IsOverdue    bool       `json:"is_overdue"`
}

// VehicleHistory is the payload served to the public tracking page.
type VehicleHistory struct {
	Vehicle       *CustomerVehicle  `json:"vehicle"`
	Statistics    VehicleStatistics `json:"statistics"`
	NextOilChange *OilChangeStatus  `json:"next_oil_change,omitempty"`
	Repairs       []*Repair         `json:"repairs"`
}

// ComputeVehicleStatistics aggregates a repair list into per-vehicle totals.
// It is a pure reduction over stored totals.
func ComputeVehicleStatistics(repairs []*Repair) VehicleStatistics {
	stats := VehicleStatistics{TotalCost: decimal.Zero}
	for _, r := range repairs {
		stats.TotalRepairs++
		stats.TotalCost = stats.TotalCost.Add(r.TotalCost)
		for i := range r.Parts {
			stats.TotalParts += r.Parts[i].Quantity
		}
		d := r.Date
		if stats.FirstRepairDate == nil || d.Before(*stats.FirstRepairDate) {
			stats.FirstRepairDate = &d
		}
		if stats.LastRepairDate == nil || d.After(*stats.LastRepairDate) {
			stats.LastRepairDate = &d
		}
	}
	return stats
}

// ComputeOilChangeStatus derives the oil-service position from the repair
// history. Returns nil when no repair was flagged as an oil change.
func ComputeOilChangeStatus(repairs []*Repair) *OilChangeStatus {
	var lastChange *Repair
	currentKM := 0
	for _, r := range repairs {
		if r.MileageKM > currentKM {
			currentKM = r.MileageKM
		}
		if !r.OilChange {
			continue
		}
		if lastChange == nil || r.Date.After(lastChange.Date) {
			lastChange = r
		}
	}
	if lastChange == nil {
		return nil
	}

	at := lastChange.Date
	status := &OilChangeStatus{
		LastChangeKM: lastChange.MileageKM,
		LastChangeAt: &at,
		CurrentKM:    currentKM,
		NextChangeKM: lastChange.MileageKM + OilChangeIntervalKM,
	}
	status.RemainingKM = status.NextChangeKM - currentKM
	status.IsOverdue = status.RemainingKM <= 0
	return status
}
