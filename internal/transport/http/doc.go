// Package http contains the chi HTTP handlers for the timetable API.
// Handlers validate and spool the upload, delegate to the service layer
// and render JSON (or a CSV attachment); every failure goes through the
// central RFC 7807 error handler.
package http
