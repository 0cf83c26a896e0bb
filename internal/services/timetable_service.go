package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"ttapi/internal/extract"
	"ttapi/internal/timetable"
	"ttapi/pkg/contracts/domain"
)

// ParseResult is the full outcome of one timetable conversion: the sorted
// class list, the summary statistics and the extraction-quality report
// passed through from the extraction step.
type ParseResult struct {
	Classes    []domain.ClassEntry      `json:"classes"`
	Statistics domain.Statistics        `json:"statistics"`
	Report     *domain.ExtractionReport `json:"parsing_report,omitempty"`
}

// TimetableService orchestrates extraction and conversion for the
// transport layer. It holds no per-request state.
type TimetableService struct {
	logger *slog.Logger
}

// NewTimetableService creates a new timetable service
func NewTimetableService(logger *slog.Logger) *TimetableService {
	return &TimetableService{
		logger: logger.With(slog.String("component", "timetable_service")),
	}
}

// ParseFile extracts a grid from the table document at path and converts
// it into a timetable. The caller owns the file's lifecycle.
func (s *TimetableService) ParseFile(ctx context.Context, path string) (*ParseResult, error) {
	extractStart := time.Now()
	grid, report, err := extract.FromFile(path)
	if err != nil {
		s.logger.ErrorContext(ctx, "grid extraction failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	s.logger.InfoContext(ctx, "grid extracted",
		slog.Int("rows", len(grid)),
		slog.Int("cols", grid.Width()),
		slog.Duration("duration", time.Since(extractStart)))

	result, err := s.convert(ctx, grid)
	if err != nil {
		return nil, err
	}
	result.Report = report
	return result, nil
}

// ConvertGrid converts an already extracted grid.
func (s *TimetableService) ConvertGrid(ctx context.Context, grid timetable.Grid) (*ParseResult, error) {
	return s.convert(ctx, grid)
}

func (s *TimetableService) convert(ctx context.Context, grid timetable.Grid) (*ParseResult, error) {
	convertStart := time.Now()
	tt, err := timetable.Convert(grid)
	if err != nil {
		s.logger.ErrorContext(ctx, "timetable conversion failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	stats := timetable.Stats(tt)
	s.logger.InfoContext(ctx, "timetable converted",
		slog.Int("classes", stats.TotalClasses),
		slog.Int("periods", stats.TotalPeriods),
		slog.Duration("duration", time.Since(convertStart)))

	return &ParseResult{
		Classes:    sortedClasses(tt),
		Statistics: stats,
	}, nil
}

// sortedClasses flattens a timetable into the serialized class list,
// ordered by class name so responses are deterministic.
func sortedClasses(tt domain.Timetable) []domain.ClassEntry {
	classes := make([]domain.ClassEntry, 0, len(tt))
	for name, schedule := range tt {
		classes = append(classes, domain.ClassEntry{ClassName: name, Schedule: schedule})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].ClassName < classes[j].ClassName
	})
	return classes
}
