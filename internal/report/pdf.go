// internal/report/pdf.go
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Column describes one report table column. Width is a relative weight;
// widths are normalized against the printable page width.
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Document is the shared visual template every exported report uses:
// branded header band, optional applied-filters line, the data table, a
// summary box after the last row and a footer with the generation
// timestamp. The same template serves purchases, repairs, expenses and
// vehicle histories; only the column set differs.
type Document struct {
	ShopName    string
	Subtitle    string
	Title       string
	Filters     []string
	Columns     []Column
	Rows        [][]string
	Summary     Summary
	Disclaimer  string
	GeneratedAt time.Time
}

const (
	rowHeight     = 6.0
	headerHeight  = 7.0
	summaryWidth  = 70.0
	bottomMargin  = 22.0
	emptyTableRow = "Bu filtre için kayıt bulunamadı"
)

// Render lays the document out as a PDF. Given the same inputs (including
// GeneratedAt) the output is byte-identical.
func (d *Document) Render() ([]byte, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("report document needs at least one column")
	}

	generated := d.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// every string placed into the document goes through the fixed
	// transliteration table first, then the Latin-1 translator
	put := func(s string) string { return tr(Transliterate(s)) }

	pdf.SetTitle(put(d.Title), true)
	pdf.SetAuthor(put(d.ShopName), true)
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.SetAutoPageBreak(false, bottomMargin)
	pdf.AliasNbPages("")

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetFooterFunc(func() {
		pdf.SetY(-16)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(usable/2, 5, put(d.Disclaimer), "", 0, "L", false, 0, "")
		stamp := fmt.Sprintf("%s %s  •  Sayfa %d/{nb}",
			put("Oluşturulma:"), generated.Format("02.01.2006 15:04"), pdf.PageNo())
		pdf.CellFormat(usable/2, 5, put(stamp), "", 0, "R", false, 0, "")
	})

	widths := d.columnWidths(usable)

	drawTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(40, 40, 40)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(40, 40, 40)
		for i, col := range d.Columns {
			pdf.CellFormat(widths[i], headerHeight, put(col.Header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(200, 200, 200)
	}

	pdf.AddPage()
	d.drawHeaderBand(pdf, put, usable)

	if len(d.Filters) > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(90, 90, 90)
		line := put("Filtreler: " + strings.Join(d.Filters, " • "))
		pdf.CellFormat(usable, 5, line, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)

	drawTableHeader()
	pdf.SetFont("Helvetica", "", 8)

	if len(d.Rows) == 0 {
		pdf.SetFillColor(248, 248, 248)
		pdf.CellFormat(usable, rowHeight+2, put(emptyTableRow), "1", 1, "C", true, 0, "")
	}

	for i, row := range d.Rows {
		if pdf.GetY()+rowHeight > pageH-bottomMargin {
			pdf.AddPage()
			drawTableHeader()
			pdf.SetFont("Helvetica", "", 8)
		}

		fill := i%2 == 1
		pdf.SetFillColor(244, 244, 244)
		for c := range d.Columns {
			cell := "-"
			if c < len(row) {
				cell = OrDash(row[c])
			}
			align := d.Columns[c].Align
			if align == "" {
				align = "L"
			}
			text := truncate(pdf, put(cell), widths[c]-2)
			pdf.CellFormat(widths[c], rowHeight, text, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	d.drawSummaryBox(pdf, put, pageW, pageH, right)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) drawHeaderBand(pdf *fpdf.Fpdf, put func(string) string, usable float64) {
	pdf.SetFillColor(160, 20, 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usable, 10, put(d.ShopName), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(usable, 6, put(d.Subtitle), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usable, 8, put(d.Title), "", 1, "C", false, 0, "")
	pdf.Ln(1)
}

// drawSummaryBox renders the totals once, after the last table row, on
// whichever page that row landed.
func (d *Document) drawSummaryBox(pdf *fpdf.Fpdf, put func(string) string, pageW, pageH, right float64) {
	lines := [][2]string{
		{"Kayıt Sayısı", fmt.Sprintf("%d", d.Summary.TotalItems)},
	}
	if d.Summary.HasQuantity {
		lines = append(lines, [2]string{"Toplam Adet", fmt.Sprintf("%d", d.Summary.TotalQuantity)})
	}
	lines = append(lines, [2]string{"Toplam Tutar", FormatMoney(d.Summary.TotalCost)})

	boxHeight := float64(len(lines))*rowHeight + 4
	if pdf.GetY()+boxHeight+4 > pageH-bottomMargin {
		pdf.AddPage()
	}
	pdf.Ln(3)

	x := pageW - right - summaryWidth
	pdf.SetDrawColor(40, 40, 40)
	pdf.Rect(x, pdf.GetY(), summaryWidth, boxHeight, "D")
	pdf.SetY(pdf.GetY() + 2)

	for i, line := range lines {
		style := ""
		if i == len(lines)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.SetX(x + 2)
		pdf.CellFormat(summaryWidth/2-2, rowHeight, put(line[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(summaryWidth/2-2, rowHeight, put(line[1]), "", 1, "R", false, 0, "")
	}
}

func (d *Document) columnWidths(usable float64) []float64 {
	total := 0.0
	for _, col := range d.Columns {
		w := col.Width
		if w <= 0 {
			w = 1
		}
		total += w
	}
	widths := make([]float64, len(d.Columns))
	for i, col := range d.Columns {
		w := col.Width
		if w <= 0 {
			w = 1
		}
		widths[i] = usable * w / total
	}
	return widths
}

func truncate(pdf *fpdf.Fpdf, s string, maxWidth float64) string {
	if pdf.GetStringWidth(s) <= maxWidth {
		return s
	}
	for len(s) > 1 && pdf.GetStringWidth(s+"...") > maxWidth {
		s = s[:len(s)-1]
	}
	return s + "..."
}
