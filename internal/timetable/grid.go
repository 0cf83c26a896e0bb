package timetable

import "errors"

const (
	// headerRow holds the weekday markers; the row after it is a reserved
	// sub-header (period labels) that is never parsed.
	headerRow    = 0
	dataStartRow = 2

	// minRows is header + sub-header + at least one data row.
	minRows = 3

	maxPeriodsPerDay = 9
)

var (
	// ErrTooFewRows is returned when the grid cannot possibly contain a
	// timetable: fewer than a header, a sub-header and one data row.
	ErrTooFewRows = errors.New("grid needs a header row, a sub-header row and at least one data row")

	// ErrNoWeekdays is returned when the header row yields no weekday
	// anchors, so no column can be attributed to any day.
	ErrNoWeekdays = errors.New("no weekday markers found in header row")
)

// Grid is an immutable rectangular-ish table of text cells. Rows may have
// differing lengths; out-of-range access reads as an empty cell.
type Grid [][]string

// NewGrid validates the minimum shape of an extracted grid. Anything beyond
// the row count check is handled defensively by the downstream heuristics.
func NewGrid(cells [][]string) (Grid, error) {
	if len(cells) < minRows {
		return nil, ErrTooFewRows
	}
	return Grid(cells), nil
}

// Cell returns the cell at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	return cellAt(g[row], col)
}

// Width returns the column count of the widest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
