package identity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a registration code (RGM) for duplicate
// comparison: Unicode compatibility normalization, lowercase, whitespace
// runs collapsed, then everything that is not an ASCII letter or digit is
// stripped. "AB-123" and "ab 123" normalize to the same value.
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
