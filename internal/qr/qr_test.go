package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGRendersImage(t *testing.T) {
	data, err := PNG("http://localhost:8080/sessions/ABCD2345/join")
	require.NoError(t, err)

	pngSignature := []byte{0x89, 'P', 'N', 'G'}
	require.Greater(t, len(data), 4)
	assert.Equal(t, pngSignature, data[:4])
}
