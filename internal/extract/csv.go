package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"ttapi/internal/timetable"
	"ttapi/pkg/contracts/domain"
)

// FromCSV reads an extracted table from CSV. Records may have differing
// field counts since extraction output is ragged; quoting follows RFC 4180,
// which preserves the in-cell line breaks the cell parser depends on.
func FromCSV(r io.Reader) (timetable.Grid, *domain.ExtractionReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv table: %w", err)
	}

	grid, err := timetable.NewGrid(rows)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("extracted grid from csv",
		slog.Int("rows", len(grid)),
		slog.Int("cols", grid.Width()))

	return grid, buildReport(grid), nil
}
