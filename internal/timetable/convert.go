package timetable

import (
	"strings"

	"ttapi/pkg/contracts/domain"
)

// Convert interprets an extracted grid as a weekly school timetable.
//
// Structural failures (too few rows, no weekday anchors) abort the whole
// conversion; rows that fail classification and cells that yield no lesson
// are absorbed silently. The returned timetable is owned entirely by the
// caller; Convert keeps no state between calls.
func Convert(grid Grid) (domain.Timetable, error) {
	if len(grid) < minRows {
		return nil, ErrTooFewRows
	}

	ranges, err := MapWeekdayColumns(grid[headerRow], grid.Width())
	if err != nil {
		return nil, err
	}

	timetable := make(domain.Timetable)
	for rowIdx := dataStartRow; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		if !IsClassRow(row) {
			continue
		}
		className := strings.TrimSpace(cellAt(row, 0))
		timetable[className] = convertClassRow(row, ranges)
	}
	return timetable, nil
}

// Stats folds a converted timetable into its summary counts.
func Stats(t domain.Timetable) domain.Statistics {
	stats := domain.Statistics{TotalClasses: len(t)}
	for _, schedule := range t {
		stats.TotalPeriods += schedule.TotalLessons()
	}
	return stats
}

func convertClassRow(row []string, ranges []WeekdayRange) domain.ClassSchedule {
	schedule := make(domain.ClassSchedule, len(ranges))
	for _, rng := range ranges {
		schedule[rng.Day] = walkWeekday(row, rng)
	}
	return schedule
}

// walkWeekday assigns periods 1..9 across one weekday's column span in
// order. The walk covers at most ten columns from the anchor, capped at the
// range end; the assigned set keeps a period consumed by a duplicate-course
// split from being reused by a later column.
func walkWeekday(row []string, rng WeekdayRange) []domain.Lesson {
	lessons := []domain.Lesson{}

	end := rng.StartCol + maxPeriodsPerDay + 1
	if rng.EndCol < end {
		end = rng.EndCol
	}

	period := 1
	assigned := make(map[int]struct{}, maxPeriodsPerDay)
	for col := rng.StartCol; col < end; col++ {
		for {
			if _, taken := assigned[period]; !taken {
				break
			}
			period++
		}
		if period > maxPeriodsPerDay {
			break
		}

		text := strings.TrimSpace(cellAt(row, col))
		if text == "" {
			continue
		}

		nextCellEmpty := col+1 < end && strings.TrimSpace(cellAt(row, col+1)) == ""
		emitted := expandCell(text, period, nextCellEmpty)
		for _, lesson := range emitted {
			lessons = append(lessons, lesson)
			assigned[lesson.Period] = struct{}{}
		}
		if len(emitted) > 0 {
			period = emitted[len(emitted)-1].Period + 1
		}
	}
	return lessons
}
