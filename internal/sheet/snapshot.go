package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Cell is a single worksheet cell. The Graph range payload mixes JSON numbers
// (date serials, bare phone digits) and strings; both shapes are preserved so
// the date decoder can tell them apart.
type Cell struct {
	Text    string
	Number  float64
	Numeric bool
}

// NumberCell builds a numeric cell.
func NumberCell(n float64) Cell {
	return Cell{Number: n, Numeric: true}
}

// TextCell builds a text cell.
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// String renders the cell the way the worksheet displays it. Numbers are
// formatted without an exponent so numeric phone columns compare cleanly.
func (c Cell) String() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// Empty reports whether the cell holds no usable value.
func (c Cell) Empty() bool {
	return !c.Numeric && strings.TrimSpace(c.Text) == ""
}

// Snapshot is an immutable point-in-time copy of the worksheet: the header
// row, the data rows in insertion order, and when it was fetched. It is
// replaced wholesale on refresh, never mutated.
type Snapshot struct {
	Header    []string
	Rows      [][]Cell
	FetchedAt time.Time

	cols map[string]int
}

// NewSnapshot builds a snapshot and precomputes the header name→index map,
// so column resolution happens once per fetch rather than once per lookup.
func NewSnapshot(header []string, rows [][]Cell, fetchedAt time.Time) *Snapshot {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		// First occurrence wins on duplicate header names.
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return &Snapshot{
		Header:    header,
		Rows:      rows,
		FetchedAt: fetchedAt,
		cols:      cols,
	}
}

// Column returns the index of a header column by exact name match.
func (s *Snapshot) Column(name string) (int, bool) {
	idx, ok := s.cols[name]
	return idx, ok
}

// cellAt reads a row cell by index, treating missing trailing cells of ragged
// rows as empty.
func cellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return Cell{}
	}
	return row[idx]
}
