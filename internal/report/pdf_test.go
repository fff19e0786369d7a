package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sondurak/garage-be/internal/report"
)

func sampleDocument() *report.Document {
	return &report.Document{
		ShopName: "SON DURAK Oto Elektrik",
		Subtitle: "Oto Elektrik ve Yedek Parça",
		Title:    "Satın Alım Raporu",
		Filters:  []string{"Arama: buji", "01.01.2024 - 31.01.2024"},
		Columns: []report.Column{
			{Header: "Tarih", Width: 1},
			{Header: "Tedarikçi", Width: 2},
			{Header: "Parça", Width: 2},
			{Header: "Adet", Width: 1, Align: "R"},
			{Header: "Tutar", Width: 1.5, Align: "R"},
		},
		Rows: [][]string{
			{"05.01.2024", "Mars Otomotiv", "Buji NGK", "4", "480.00 TL"},
			{"12.01.2024", "Ege Elektrik", "Marş dinamosu", "1", "2750.00 TL"},
		},
		Summary: report.Summary{
			TotalItems:    2,
			TotalQuantity: 5,
			HasQuantity:   true,
			TotalCost:     decimal.RequireFromString("3230.00"),
		},
		Disclaimer:  "Bu belge bilgilendirme amaçlıdır.",
		GeneratedAt: time.Date(2024, 1, 31, 14, 30, 0, 0, time.UTC),
	}
}

func TestDocument_Render(t *testing.T) {
	out, err := sampleDocument().Render()
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDocument_RenderDeterministic(t *testing.T) {
	// With GeneratedAt pinned, two renders of the same document must be
	// byte-identical.
	doc := sampleDocument()
	first, err := doc.Render()
	require.NoError(t, err)
	second, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDocument_RenderEmptyList(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = nil
	doc.Summary = report.Summary{TotalCost: decimal.Zero}

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDocument_RenderManyPages(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = nil
	for i := 0; i < 300; i++ {
		doc.Rows = append(doc.Rows, []string{
			"05.01.2024", fmt.Sprintf("Tedarikçi %d", i), "Buji", "1", "100.00 TL",
		})
	}

	out, err := doc.Render()
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestDocument_RenderTurkishContent(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = [][]string{
		{"05.01.2024", "Işık Oto Yedek Parça", "Ateşleme bobini", "2", "980.00 TL"},
	}
	out, err := doc.Render()
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestDocument_RenderExcel(t *testing.T) {
	out, err := sampleDocument().RenderExcel("Satın Alımlar")
	require.NoError(t, err)
	// xlsx files are zip archives
	require.True(t, len(out) > 4)
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestDocument_RenderExcelEmptyList(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = nil
	out, err := doc.RenderExcel("Giderler")
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
