package sheet

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDate_Serials(t *testing.T) {
	tests := []struct {
		serial float64
		want   string
	}{
		{0, "1899-12-30"},
		{1, "1899-12-31"},
		{2, "1900-01-01"},
		{45000, "2023-03-15"},
		{45000.75, "2023-03-15"}, // time-of-day fraction is dropped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("serial_%v", tt.serial), func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeDate(NumberCell(tt.serial)))
		})
	}
}

func TestDecodeDate_SerialRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 59, 60, 365, 10000, 44927} {
		got := DecodeDate(NumberCell(float64(n)))
		parsed, err := time.Parse("2006-01-02", got)
		require.NoError(t, err, "serial %d produced unparseable date %q", n, got)
		assert.Equal(t, excelEpoch.AddDate(0, 0, n), parsed, "serial %d", n)
	}
}

func TestDecodeDate_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-05-01", "2024-05-01"},
		{"iso datetime prefix", "2024-05-01T09:30:00", "2024-05-01"},
		{"malformed passthrough", "not-a-date", "not-a-date"},
		{"short passthrough", "5/1", "5/1"},
		{"empty passthrough", "", ""},
		{"garbage ten chars", "abcdefghij", "abcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeDate(TextCell(tt.input)))
		})
	}
}
