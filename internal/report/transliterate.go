// internal/report/transliterate.go
package report

import "strings"

// The PDF core fonts only cover Latin-1, which is missing half the Turkish
// alphabet. Every string placed into an exported document goes through this
// fixed substitution table; the currency sign becomes its two-letter code.
// The mapping is deterministic and idempotent: ASCII input passes through
// unchanged.
var transliterations = strings.NewReplacer(
	"ç", "c", "Ç", "C",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ş", "s", "Ş", "S",
	"ü", "u", "Ü", "U",
	"â", "a", "Â", "A",
	"î", "i", "Î", "I",
	"û", "u", "Û", "U",
	"₺", "TL",
)

// Transliterate maps Turkish text onto its closest ASCII rendering.
func Transliterate(s string) string {
	return transliterations.Replace(s)
}
