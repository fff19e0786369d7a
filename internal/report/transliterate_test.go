package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sondurak/garage-be/internal/report"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"çalışma", "calisma"},
		{"ÇĞİÖŞÜ", "CGIOSU"},
		{"ığdır", "igdir"},
		{"Motor yağı değişimi", "Motor yagi degisimi"},
		{"1250.50 ₺", "1250.50 TL"},
		{"already ascii", "already ascii"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, report.Transliterate(tt.in), "input %q", tt.in)
	}
}

func TestTransliterate_Idempotent(t *testing.T) {
	inputs := []string{"çöğüşı İĞÜŞÖÇ", "₺₺", "34 ABC 123 - Buji değişimi"}
	for _, in := range inputs {
		once := report.Transliterate(in)
		assert.Equal(t, once, report.Transliterate(once))
	}
}
