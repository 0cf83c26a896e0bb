// Package extract turns uploaded table documents into the raw string grid
// the timetable engine consumes. It supports CSV exports and Excel
// workbooks, and attaches a small quality report describing the extracted
// grid; the report is passed through to API clients unmodified.
package extract
