package sheet

import (
	"time"
)

// Excel's day-zero. Serial 1 is 1899-12-31; the engine's historical
// leap-year quirk (a phantom 1900-02-29) is already folded into this epoch.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const isoDate = "2006-01-02"

// DecodeDate converts a worksheet cell into an ISO YYYY-MM-DD string.
// Numeric cells are interpreted as Excel day-count serials. Text cells are
// parsed on their first ten characters; anything unparseable passes through
// unchanged. This never fails: a malformed date degrades to passthrough text
// rather than aborting the lookup.
func DecodeDate(c Cell) string {
	if c.Numeric {
		return excelEpoch.Add(time.Duration(c.Number * 24 * float64(time.Hour))).Format(isoDate)
	}
	s := c.Text
	if len(s) >= len(isoDate) {
		if t, err := time.Parse(isoDate, s[:len(isoDate)]); err == nil {
			return t.Format(isoDate)
		}
	}
	return s
}
