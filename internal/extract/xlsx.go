package extract

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"ttapi/internal/timetable"
	"ttapi/pkg/contracts/domain"
)

// FromXLSX reads an extracted table from an Excel workbook. The sheet to
// use is probed rather than assumed: the first sheet whose row count can
// hold a timetable wins, falling back to the first sheet so shape errors
// surface from the grid loader instead of a vague sheet error.
func FromXLSX(r io.Reader) (timetable.Grid, *domain.ExtractionReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	var rows [][]string
	sheetName := sheets[0]
	for _, name := range sheets {
		testRows, testErr := f.GetRows(name)
		if testErr != nil {
			continue
		}
		if rows == nil {
			rows, sheetName = testRows, name
		}
		if len(testRows) >= 3 {
			rows, sheetName = testRows, name
			break
		}
	}
	if rows == nil {
		return nil, nil, fmt.Errorf("failed to read any sheet from workbook")
	}

	slog.Debug("extracted grid from workbook",
		slog.String("sheet", sheetName),
		slog.Int("rows", len(rows)))

	grid, err := timetable.NewGrid(rows)
	if err != nil {
		return nil, nil, err
	}
	return grid, buildReport(grid), nil
}
