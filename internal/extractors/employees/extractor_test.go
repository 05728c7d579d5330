package employees

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e := New()
	require.NotNil(t, e)
	assert.Equal(t, "employees", e.Name())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int64
		wantOK bool
	}{
		{"hyphen range", "100-200", 150, true},
		{"single number", "50", 50, true},
		{"no digits", "N/A", 0, false},
		{"range with spaces", "10 - 19 Mitarbeiter", 14, true},
		{"en dash range", "50–99", 74, true},
		{"em dash range", "500—999", 749, true},
		{"no-break spaces around en dash", "100\u00a0–\u00a0200", 150, true},
		{"no-break space before hyphen", "10\u00a0-19 Mitarbeiter", 14, true},
		{"thousand separators in range", "1.000-2.000", 1500, true},
		{"comma thousand separator", "ca. 1,200 Mitarbeiter", 1200, true},
		{"period thousand separator", "über 12.500", 12500, true},
		{"first number when no range", "250 (2019), 300 (2020)", 250, true},
		{"odd sum truncates", "1-2", 1, true},
		{"empty", "", 0, false},
		{"nil", nil, 0, false},
		{"already an integer", int64(150), 0, false},
		{"decoded json number", json.Number("150"), 0, false},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Extract(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_LargeRangeDoesNotOverflow(t *testing.T) {
	e := New()
	limit := strconv.FormatInt(math.MaxInt64, 10)

	got, ok := e.Extract(limit + "-" + limit)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestExtract_OutOfRangeNumber(t *testing.T) {
	e := New()

	_, ok := e.Extract("99999999999999999999")
	assert.False(t, ok)
}
