package documents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertProducesPDFHeader(t *testing.T) {
	data, err := NewPDFConverter().Convert("load L100\nrate: $1800")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "%%EOF"))
}

func TestConvertEscapesDelimiters(t *testing.T) {
	data, err := NewPDFConverter().Convert(`detention (2h) \ lumper`)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `\(2h\)`)
	assert.Contains(t, body, `\\`)
}

func TestConvertWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", 250)
	data, err := NewPDFConverter().Convert(long)
	require.NoError(t, err)

	// 250 chars at a 100-char wrap produces three text-show operators
	assert.Equal(t, 3, strings.Count(string(data), ") Tj"))
}
