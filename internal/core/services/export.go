// internal/core/services/export.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/report"
)

// Content types for the rendered documents.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Branding carries the fixed header and footer text stamped on every
// report.
type Branding struct {
	ShopName   string
	Subtitle   string
	Disclaimer string
}

// ExportService renders filtered report documents. Exports always cover
// the full filtered set regardless of the caller's page.
type ExportService struct {
	purchases ports.PurchaseRepository
	repairs   ports.RepairRepository
	expenses  ports.ExpenseRepository
	suppliers ports.SupplierRepository
	vehicles  ports.VehicleService
	branding  Branding
	now       func() time.Time
	logger    *slog.Logger
}

// Statically assert that *ExportService implements the ExportService interface.
var _ ports.ExportService = (*ExportService)(nil)

// NewExportService creates a new export service
func NewExportService(
	purchases ports.PurchaseRepository,
	repairs ports.RepairRepository,
	expenses ports.ExpenseRepository,
	suppliers ports.SupplierRepository,
	vehicles ports.VehicleService,
	branding Branding,
	logger *slog.Logger,
) *ExportService {
	return &ExportService{
		purchases: purchases,
		repairs:   repairs,
		expenses:  expenses,
		suppliers: suppliers,
		vehicles:  vehicles,
		branding:  branding,
		now:       time.Now,
		logger:    logger.With(slog.String("service", "export")),
	}
}

// PurchasesPDF renders the purchase report for the given filters.
func (s *ExportService) PurchasesPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	doc, err := s.purchasesDocument(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.renderPDF(ctx, doc, "satin-alimlar", "")
}

// PurchasesExcel renders the purchase report as a spreadsheet.
func (s *ExportService) PurchasesExcel(ctx context.Context, q report.Query) (*ports.Export, error) {
	doc, err := s.purchasesDocument(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err := doc.RenderExcel("Satın Alımlar")
	if err != nil {
		return nil, fmt.Errorf("failed to render excel: %w", err)
	}

	name := report.Filename("satin-alimlar", "", doc.GeneratedAt, "xlsx")
	s.logger.InfoContext(ctx, "rendered export",
		slog.String("filename", name),
		slog.Int("rows", len(doc.Rows)))

	return &ports.Export{Filename: name, ContentType: ContentTypeXLSX, Data: data}, nil
}

// ExpensesPDF renders the expense report for the given filters.
func (s *ExportService) ExpensesPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	items, _, err := s.expenses.FindAll(ctx, q.Unpaged())
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	lines := make([]report.Line, len(items))
	rows := make([][]string, len(items))
	for i, e := range items {
		lines[i] = report.Line{Quantity: e.Quantity, Total: e.TotalCost}
		rows[i] = []string{
			report.FormatDate(e.Date),
			e.Name,
			categoryLabel(e.Category),
			strconv.Itoa(e.Quantity),
			report.FormatMoney(e.UnitPrice),
			report.FormatMoney(e.TotalCost),
		}
	}

	doc := s.document("Gider Raporu", q, rows, report.Summarize(lines))
	doc.Columns = []report.Column{
		{Header: "Tarih", Width: 1.1},
		{Header: "Gider", Width: 2.2},
		{Header: "Kategori", Width: 1.3},
		{Header: "Adet", Width: 0.7, Align: "R"},
		{Header: "Birim Fiyat", Width: 1.3, Align: "R"},
		{Header: "Tutar", Width: 1.4, Align: "R"},
	}
	return s.renderPDF(ctx, doc, "giderler", "")
}

// RepairsPDF renders the repair report for the given filters.
func (s *ExportService) RepairsPDF(ctx context.Context, q report.Query) (*ports.Export, error) {
	items, _, err := s.repairs.FindAll(ctx, q.Unpaged())
	if err != nil {
		return nil, fmt.Errorf("failed to load repairs: %w", err)
	}

	lines := make([]report.Line, len(items))
	rows := make([][]string, len(items))
	for i, r := range items {
		lines[i] = report.Line{Total: r.TotalCost}
		rows[i] = []string{
			report.FormatDate(r.Date),
			r.Plate,
			r.Brand + " " + r.Model,
			r.Description,
			report.FormatMoney(r.LaborCost),
			report.FormatMoney(r.PartsCost),
			report.FormatMoney(r.TotalCost),
		}
	}

	doc := s.document("Tamir Raporu", q, rows, report.Summarize(lines))
	doc.Columns = []report.Column{
		{Header: "Tarih", Width: 1},
		{Header: "Plaka", Width: 1.1},
		{Header: "Araç", Width: 1.5},
		{Header: "Açıklama", Width: 2.4},
		{Header: "İşçilik", Width: 1.1, Align: "R"},
		{Header: "Parça", Width: 1.1, Align: "R"},
		{Header: "Toplam", Width: 1.2, Align: "R"},
	}
	return s.renderPDF(ctx, doc, "tamirler", "")
}

// VehicleHistoryPDF renders the full service history for one vehicle.
func (s *ExportService) VehicleHistoryPDF(ctx context.Context, vehicleID uuid.UUID) (*ports.Export, error) {
	history, err := s.vehicles.History(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	lines := make([]report.Line, len(history.Repairs))
	rows := make([][]string, len(history.Repairs))
	for i, r := range history.Repairs {
		lines[i] = report.Line{Total: r.TotalCost}
		mileage := ""
		if r.MileageKM > 0 {
			mileage = strconv.Itoa(r.MileageKM) + " km"
		}
		rows[i] = []string{
			report.FormatDate(r.Date),
			r.Description,
			mileage,
			report.FormatMoney(r.LaborCost),
			report.FormatMoney(r.PartsCost),
			report.FormatMoney(r.TotalCost),
		}
	}

	v := history.Vehicle
	doc := s.document("Araç Servis Geçmişi", report.Query{}, rows, report.Summarize(lines))
	doc.Filters = []string{
		"Plaka: " + v.Plate,
		"Araç: " + v.Brand + " " + v.Model,
		"Müşteri: " + v.CustomerName,
	}
	doc.Columns = []report.Column{
		{Header: "Tarih", Width: 1},
		{Header: "Açıklama", Width: 2.8},
		{Header: "KM", Width: 1, Align: "R"},
		{Header: "İşçilik", Width: 1.2, Align: "R"},
		{Header: "Parça", Width: 1.2, Align: "R"},
		{Header: "Toplam", Width: 1.3, Align: "R"},
	}
	return s.renderPDF(ctx, doc, "arac-gecmisi", v.Plate)
}

func (s *ExportService) purchasesDocument(ctx context.Context, q report.Query) (*report.Document, error) {
	items, _, err := s.purchases.FindAll(ctx, q.Unpaged())
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	lines := make([]report.Line, len(items))
	rows := make([][]string, len(items))
	for i, p := range items {
		lines[i] = report.Line{Quantity: p.Quantity, Total: p.TotalCost}
		rows[i] = []string{
			report.FormatDate(p.Date),
			p.SupplierName,
			p.PartName,
			strconv.Itoa(p.Quantity),
			report.FormatMoney(p.UnitPrice),
			report.FormatMoney(p.TotalCost),
		}
	}

	doc := s.document("Satın Alım Raporu", q, rows, report.Summarize(lines))
	doc.Filters = s.purchaseFilterLabels(ctx, q)
	doc.Columns = []report.Column{
		{Header: "Tarih", Width: 1.1},
		{Header: "Tedarikçi", Width: 1.8},
		{Header: "Parça", Width: 2},
		{Header: "Adet", Width: 0.7, Align: "R"},
		{Header: "Birim Fiyat", Width: 1.3, Align: "R"},
		{Header: "Tutar", Width: 1.4, Align: "R"},
	}
	return doc, nil
}

func (s *ExportService) document(title string, q report.Query, rows [][]string, summary report.Summary) *report.Document {
	return &report.Document{
		ShopName:    s.branding.ShopName,
		Subtitle:    s.branding.Subtitle,
		Title:       title,
		Filters:     filterLabels(q),
		Rows:        rows,
		Summary:     summary,
		Disclaimer:  s.branding.Disclaimer,
		GeneratedAt: s.now(),
	}
}

func (s *ExportService) renderPDF(ctx context.Context, doc *report.Document, resource, ident string) (*ports.Export, error) {
	data, err := doc.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	name := report.Filename(resource, ident, doc.GeneratedAt, "pdf")
	s.logger.InfoContext(ctx, "rendered export",
		slog.String("filename", name),
		slog.Int("rows", len(doc.Rows)))

	return &ports.Export{Filename: name, ContentType: ContentTypePDF, Data: data}, nil
}

// filterLabels describes the active filters on the report's header line.
func filterLabels(q report.Query) []string {
	var labels []string
	if q.Search != "" {
		labels = append(labels, "Arama: "+q.Search)
	}
	switch {
	case q.StartDate != nil && q.EndDate != nil:
		labels = append(labels, report.FormatDate(*q.StartDate)+" - "+report.FormatDate(*q.EndDate))
	case q.StartDate != nil:
		labels = append(labels, report.FormatDate(*q.StartDate)+" sonrası")
	case q.EndDate != nil:
		labels = append(labels, report.FormatDate(*q.EndDate)+" öncesi")
	}
	if len(labels) == 0 {
		labels = []string{"Tüm kayıtlar"}
	}
	return labels
}

// purchaseFilterLabels additionally resolves the supplier filter to its
// shop name.
func (s *ExportService) purchaseFilterLabels(ctx context.Context, q report.Query) []string {
	if q.SupplierID == "" {
		return filterLabels(q)
	}

	label := "Tedarikçi filtresi aktif"
	if id, err := uuid.Parse(q.SupplierID); err == nil {
		if sup, err := s.suppliers.FindByID(ctx, id); err == nil && sup != nil {
			label = "Tedarikçi: " + sup.ShopName
		}
	}

	labels := filterLabels(q)
	if len(labels) == 1 && labels[0] == "Tüm kayıtlar" {
		return []string{label}
	}
	return append(labels, label)
}

func categoryLabel(c domain.ExpenseCategory) string {
	switch c {
	case domain.ExpenseRent:
		return "Kira"
	case domain.ExpenseUtilities:
		return "Faturalar"
	case domain.ExpenseSupplies:
		return "Malzeme"
	case domain.ExpenseTax:
		return "Vergi"
	default:
		return "Diğer"
	}
}
