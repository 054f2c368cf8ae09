package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEquivalentForms(t *testing.T) {
	cases := [][2]string{
		{"AB-123", "ab 123"},
		{"  a-1  ", "A1"},
		{"20.23.045-7", "2023 0457"},
		{"rgm/2023\t001", "RGM2023001"},
	}
	for _, c := range cases {
		assert.Equal(t, Normalize(c[0]), Normalize(c[1]), "%q vs %q", c[0], c[1])
	}
}

func TestNormalizeStripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "ab123", Normalize("AB-123"))
	assert.Equal(t, "a1", Normalize("a1"))
	assert.Equal(t, "20230457", Normalize(" 20.23.045-7 "))
}

func TestNormalizeCompatibilityForms(t *testing.T) {
	// Fullwidth digits and letters fold to their ASCII equivalents.
	assert.Equal(t, "ab123", Normalize("ＡＢ１２３"))
}

func TestNormalizeEmptyAndSymbolOnly(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("--- . ---"))
}
