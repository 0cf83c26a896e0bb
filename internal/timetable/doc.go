// Package timetable converts a raw grid of text cells extracted from a
// scanned school timetable into a per-class, per-weekday lesson schedule.
//
// The grid is assumed to have a header row with weekday markers, a reserved
// sub-header row and one candidate class row per data row. Extraction output
// is irregular by nature (merged headers, missing columns, duplicated text
// artifacts), so every heuristic here tolerates malformed input: structural
// failures abort the conversion, everything else degrades to "no data".
//
// All functions are pure: they take explicit grid/row/range arguments,
// return fully materialized results or a typed failure, and hold no state
// between calls.
package timetable
