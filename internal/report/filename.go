// internal/report/filename.go
package report

import (
	"fmt"
	"strings"
	"time"
)

// Filename builds an export filename from the resource name, an optional
// disambiguating identifier (a plate or code when exporting a single
// entity's history) and the export date, so same-day exports of different
// entities never overwrite each other.
//
//	Filename("satin-alimlar", "", d, "pdf")          => "satin-alimlar_2024-01-31.pdf"
//	Filename("arac-gecmisi", "34 ABC 123", d, "pdf") => "arac-gecmisi_34-ABC-123_2024-01-31.pdf"
func Filename(resource, ident string, date time.Time, ext string) string {
	parts := []string{slugify(resource)}
	if ident != "" {
		parts = append(parts, slugify(ident))
	}
	parts = append(parts, date.Format(DateFormat))
	return strings.Join(parts, "_") + "." + ext
}

func slugify(s string) string {
	s = Transliterate(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ContentDisposition renders the attachment header value for a filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, filename)
}
