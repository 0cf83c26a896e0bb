package timetable

import (
	"strings"

	"ttapi/pkg/contracts/domain"
)

// Non-course activities keep their canonical label as the course name and
// never carry a teacher.
const (
	classMeetingLabel = "班会"
	sportsPeriodLabel = "阳光体育"
)

// classTeacherMarkers are the accepted bracket variants of the homeroom
// teacher annotation; extraction yields either width.
var classTeacherMarkers = []string{"（班）", "(班)"}

// parseCell interprets one trimmed, non-empty cell as the lesson at the
// given period. Returns nil when the cell yields no lesson, which leaves
// the period unfilled rather than failing: sparse days are the common case.
func parseCell(text string, period int) *domain.Lesson {
	if strings.Contains(text, classMeetingLabel) {
		return &domain.Lesson{Period: period, Course: classMeetingLabel}
	}
	if strings.Contains(text, sportsPeriodLabel) {
		return &domain.Lesson{Period: period, Course: sportsPeriodLabel}
	}

	parts := strings.SplitN(text, "\n", 2)
	course := strings.TrimSpace(parts[0])
	if course == "" {
		return nil
	}

	lesson := &domain.Lesson{Period: period, Course: course}
	if len(parts) > 1 {
		teacher := strings.TrimSpace(parts[1])
		for _, marker := range classTeacherMarkers {
			if strings.Contains(teacher, marker) {
				teacher = strings.TrimSpace(strings.ReplaceAll(teacher, marker, ""))
				lesson.IsClassTeacher = true
			}
		}
		if teacher != "" {
			lesson.Teacher = &teacher
		}
	}
	return lesson
}

// repeatedHalf reports the substring s when course reads exactly s+s.
// Extraction sometimes collapses two identical consecutive lessons into a
// single cell; a self-repeated course name is the signature of that case.
// Only exact whole-string repetition counts, and single characters never
// split.
func repeatedHalf(course string) (string, bool) {
	runes := []rune(course)
	n := len(runes)
	if n < 2 || n%2 != 0 {
		return "", false
	}
	half := string(runes[:n/2])
	if string(runes[n/2:]) != half {
		return "", false
	}
	return half, true
}

// expandCell parses one cell into its lessons. When the following period's
// cell is empty and the parsed course is self-repeated, the cell is split
// into two lessons at period and period+1 sharing the teacher fields;
// otherwise it parses as a single lesson.
func expandCell(text string, period int, nextCellEmpty bool) []domain.Lesson {
	lesson := parseCell(text, period)
	if lesson == nil {
		return nil
	}

	if nextCellEmpty && period < maxPeriodsPerDay {
		if half, ok := repeatedHalf(lesson.Course); ok {
			first := *lesson
			first.Course = half
			second := first
			second.Period = period + 1
			if first.Teacher != nil {
				t := *first.Teacher
				second.Teacher = &t
			}
			return []domain.Lesson{first, second}
		}
	}
	return []domain.Lesson{*lesson}
}
