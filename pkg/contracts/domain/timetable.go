package domain

// Weekday identifies a school day in a weekly timetable.
// Only Monday through Friday exist in the source material.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays lists the school days in canonical order. Consumers rely on
// this order when serializing schedules, since map iteration is random.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Lesson represents one period slot within a weekday for one class.
// Teacher is nil for non-course activities (class meetings, sports periods)
// and for cells that carried no teacher line.
type Lesson struct {
	Period         int     `json:"period" validate:"min=1,max=9"`
	Course         string  `json:"course" validate:"required"`
	Teacher        *string `json:"teacher"`
	IsClassTeacher bool    `json:"is_class_teacher"`
}

// ClassSchedule maps a weekday to that day's lessons in period order.
// A weekday key is present only if the source header mapped at least one
// column to it; the slice may still be empty for sparse days.
type ClassSchedule map[Weekday][]Lesson

// Timetable maps a class name to its weekly schedule. It is built once per
// conversion and never shared or mutated across calls.
type Timetable map[string]ClassSchedule

// Statistics holds the summary counts computed from a converted timetable.
type Statistics struct {
	TotalClasses int `json:"total_classes" validate:"min=0"`
	TotalPeriods int `json:"total_periods" validate:"min=0"`
}

// ExtractionReport carries the quality metrics the table-extraction step
// reports for a grid. It is passed through to API clients unmodified.
type ExtractionReport struct {
	Accuracy   float64 `json:"accuracy"`
	Whitespace float64 `json:"whitespace"`
	Order      int     `json:"order"`
	Page       int     `json:"page"`
}

// ClassEntry is the serialized form of one class in API responses, with
// the schedule keyed by english weekday names.
type ClassEntry struct {
	ClassName string        `json:"class_name"`
	Schedule  ClassSchedule `json:"schedule"`
}

// TotalLessons counts every lesson across all weekdays of one class.
func (s ClassSchedule) TotalLessons() int {
	n := 0
	for _, lessons := range s {
		n += len(lessons)
	}
	return n
}
