package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopListScanEmptyValues(t *testing.T) {
	for _, src := range []any{nil, "", "[]", "null", []byte("")} {
		var list StopList
		require.NoError(t, list.Scan(src))
		assert.NotNil(t, list)
		assert.Len(t, list, 0)
	}
}

func TestStopListRoundTrip(t *testing.T) {
	original := StopList{
		{Address: "1 Main St", City: "Reno", State: "NV", Date: "2026-09-01"},
		{Address: "2 Oak Ave", City: "Tulsa"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded StopList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)

	// a second pass must be stable
	value2, err := decoded.Value()
	require.NoError(t, err)
	assert.Equal(t, value, value2)
}

func TestStopListScanRejectsGarbage(t *testing.T) {
	var list StopList
	require.Error(t, list.Scan("{not json"))
	require.Error(t, list.Scan(42))
}

func TestStopListValueEmpty(t *testing.T) {
	value, err := StopList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}
