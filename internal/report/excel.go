// internal/report/excel.go
package report

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

// RenderExcel lays the same tabular content out as an xlsx workbook.
// Excel handles the full character set, so no transliteration is applied
// here; the summary block lands under the table.
func (d *Document) RenderExcel(sheetName string) ([]byte, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("report document needs at least one column")
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, col := range d.Columns {
		cell := headerRow.AddCell()
		cell.Value = col.Header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	if len(d.Rows) == 0 {
		row := sheet.AddRow()
		row.AddCell().Value = emptyTableRow
	}

	for _, dataRow := range d.Rows {
		row := sheet.AddRow()
		for _, value := range dataRow {
			row.AddCell().Value = OrDash(value)
		}
	}

	sheet.AddRow() // spacer

	countRow := sheet.AddRow()
	countRow.AddCell().Value = "Kayıt Sayısı"
	countRow.AddCell().Value = fmt.Sprintf("%d", d.Summary.TotalItems)

	if d.Summary.HasQuantity {
		qtyRow := sheet.AddRow()
		qtyRow.AddCell().Value = "Toplam Adet"
		qtyRow.AddCell().Value = fmt.Sprintf("%d", d.Summary.TotalQuantity)
	}

	totalRow := sheet.AddRow()
	totalRow.AddCell().Value = "Toplam Tutar"
	cell := totalRow.AddCell()
	cell.Value = FormatMoney(d.Summary.TotalCost)
	cell.GetStyle().Font.Bold = true

	for i := range d.Columns {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}
