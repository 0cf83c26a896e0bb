package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ttapi/internal/timetable"
	"ttapi/pkg/contracts/domain"
)

// ErrUnsupportedFormat wraps the extension that no extractor handles.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported table format %q, expected .csv or .xlsx", e.Ext)
}

// FromFile extracts a grid from the file at path, dispatching on extension.
func FromFile(path string) (timetable.Grid, *domain.ExtractionReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FromCSV(f)
	case ".xlsx":
		return FromXLSX(f)
	default:
		return nil, nil, &ErrUnsupportedFormat{Ext: ext}
	}
}

// buildReport computes the extraction-quality metrics for a grid. Accuracy
// is the share of populated cells, whitespace the share of blank ones, in
// percent; single-grid extraction is always order 1, page 1.
func buildReport(grid timetable.Grid) *domain.ExtractionReport {
	total, filled := 0, 0
	for _, row := range grid {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
	}

	report := &domain.ExtractionReport{Order: 1, Page: 1}
	if total > 0 {
		report.Accuracy = round2(float64(filled) / float64(total) * 100)
		report.Whitespace = round2(float64(total-filled) / float64(total) * 100)
	}
	return report
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
