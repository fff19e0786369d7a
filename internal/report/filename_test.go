package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sondurak/garage-be/internal/report"
)

func TestFilename(t *testing.T) {
	d := time.Date(2024, 1, 31, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		resource string
		ident    string
		ext      string
		want     string
	}{
		{
			name:     "plain resource",
			resource: "satin-alimlar",
			ext:      "pdf",
			want:     "satin-alimlar_2024-01-31.pdf",
		},
		{
			name:     "plate identifier with spaces",
			resource: "arac-gecmisi",
			ident:    "34 ABC 123",
			ext:      "pdf",
			want:     "arac-gecmisi_34-ABC-123_2024-01-31.pdf",
		},
		{
			name:     "turkish characters transliterated",
			resource: "giderler",
			ident:    "kira ödemesi",
			ext:      "xlsx",
			want:     "giderler_kira-odemesi_2024-01-31.xlsx",
		},
		{
			name:     "punctuation runs collapse",
			resource: "satin-alimlar",
			ident:    "A//B..C",
			ext:      "pdf",
			want:     "satin-alimlar_A-B-C_2024-01-31.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.Filename(tt.resource, tt.ident, d, tt.ext)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentDisposition(t *testing.T) {
	got := report.ContentDisposition("satin-alimlar_2024-01-31.pdf")
	assert.Equal(t, `attachment; filename="satin-alimlar_2024-01-31.pdf"`, got)
}
