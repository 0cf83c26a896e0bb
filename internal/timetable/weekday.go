package timetable

import (
	"strings"

	"ttapi/pkg/contracts/domain"
)

// weekdayMarkers pairs each school day with the header text that anchors it,
// in weekday order. Headers routinely merge several period labels under one
// weekday cell, so only the first occurrence of a marker is meaningful.
var weekdayMarkers = []struct {
	Day    domain.Weekday
	Marker string
}{
	{domain.Monday, "星期一"},
	{domain.Tuesday, "星期二"},
	{domain.Wednesday, "星期三"},
	{domain.Thursday, "星期四"},
	{domain.Friday, "星期五"},
}

// WeekdayRange assigns a weekday the half-open column span [StartCol, EndCol).
type WeekdayRange struct {
	Day      domain.Weekday
	StartCol int
	EndCol   int
}

// MapWeekdayColumns scans the header row for weekday anchors and derives a
// column range per present weekday: the anchor column up to the next present
// weekday's anchor, or totalCols for the last one. Weekdays without an anchor
// are omitted. Returns ErrNoWeekdays when nothing anchors at all.
func MapWeekdayColumns(header []string, totalCols int) ([]WeekdayRange, error) {
	anchors := make([]int, len(weekdayMarkers))
	for i, wm := range weekdayMarkers {
		anchors[i] = -1
		for col, cell := range header {
			if strings.Contains(cell, wm.Marker) {
				anchors[i] = col
				break
			}
		}
	}

	var ranges []WeekdayRange
	for i, wm := range weekdayMarkers {
		if anchors[i] < 0 {
			continue
		}
		end := totalCols
		for j := i + 1; j < len(weekdayMarkers); j++ {
			if anchors[j] >= 0 {
				end = anchors[j]
				break
			}
		}
		ranges = append(ranges, WeekdayRange{Day: wm.Day, StartCol: anchors[i], EndCol: end})
	}

	if len(ranges) == 0 {
		return nil, ErrNoWeekdays
	}
	return ranges, nil
}
