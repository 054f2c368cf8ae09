package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Filename derives the download name for an export artifact:
// attendance_<safe session name>_<yyyy-mm-dd>.<ext>.
func Filename(sessionName, ext string, now time.Time) string {
	return fmt.Sprintf("attendance_%s_%s.%s", safeName(sessionName), now.Format("2006-01-02"), ext)
}

// safeName makes a session name filesystem-safe: diacritics stripped,
// only alphanumerics/space/hyphen/underscore kept, whitespace collapsed to
// hyphens, lowercased. "Cálculo I" becomes "calculo-i".
func safeName(name string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripper, name)
	if err != nil {
		s = name
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), "-"))
}
