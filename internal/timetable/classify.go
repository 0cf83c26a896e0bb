package timetable

import (
	"regexp"
	"strings"
)

// classLabelPattern matches well-formed class labels such as 初三.1班,
// 高二3班 or 初一、2班: a grade token, an optional separator, a class
// number and the trailing class suffix.
var classLabelPattern = regexp.MustCompile(`^[初高][一二三]\s*[.．、\-]?\s*[0-9]+\s*班$`)

// IsClassRow decides whether a data row carries one class's weekly schedule.
//
// Well-formed exports match the label pattern on the first cell. Degraded
// extractions often mangle the label, so any row with a non-empty label and
// at least one populated cell in the first ten columns is accepted too,
// trading precision for recall. Rows failing both are spacer rows.
func IsClassRow(row []string) bool {
	label := strings.TrimSpace(cellAt(row, 0))
	if label == "" {
		return false
	}
	if classLabelPattern.MatchString(label) {
		return true
	}
	for col := 1; col <= 9; col++ {
		if strings.TrimSpace(cellAt(row, col)) != "" {
			return true
		}
	}
	return false
}
