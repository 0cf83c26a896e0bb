package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"ttapi/internal/extract"
	"ttapi/internal/infrastructure"
	"ttapi/internal/timetable"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	reqID := infrastructure.GetTraceID(r.Context())

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)

	problem := h.ErrorToProblem(err, r)
	problem.WithExtension("trace_id", reqID)

	if h.includeStack {
		problem.WithExtension("stack", string(debug.Stack()))
	}

	if renderErr := problem.Render(w, r); renderErr != nil {
		h.logger.ErrorContext(r.Context(), "failed to write problem response",
			slog.String("error", renderErr.Error()))
	}
}

// ErrorToProblem converts an error to RFC 7807 Problem Details
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	// Engine failures: structural problems with the uploaded table are the
	// client's input's fault, not a server error.
	switch {
	case errors.Is(err, timetable.ErrTooFewRows):
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeGridTooSmall,
			"Grid Too Small",
			"The extracted table needs a header row, a sub-header row and at least one data row",
			r.URL.Path,
		)
	case errors.Is(err, timetable.ErrNoWeekdays):
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeNoWeekdaysFound,
			"No Weekday Columns Found",
			"The table header contains no recognizable weekday markers",
			r.URL.Path,
		)
	}

	var formatErr *extract.ErrUnsupportedFormat
	if errors.As(err, &formatErr) {
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeUnsupportedFormat,
			"Unsupported File Format",
			formatErr.Error(),
			r.URL.Path,
		)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.apiErrorToProblem(apiErr, r)
	}

	return NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred while processing your request",
		r.URL.Path,
	)
}

// apiErrorToProblem converts APIError to ProblemDetails
func (h *ErrorHandler) apiErrorToProblem(apiErr *APIError, r *http.Request) *ProblemDetails {
	problemType := TypeInternal
	switch apiErr.ErrorCode {
	case "VALIDATION_FAILED", "INVALID_REQUEST", "MISSING_FILE":
		problemType = TypeValidation
	case "UNSUPPORTED_FORMAT":
		problemType = TypeUnsupportedFormat
	case "GRID_TOO_SMALL":
		problemType = TypeGridTooSmall
	case "NO_WEEKDAYS_FOUND":
		problemType = TypeNoWeekdaysFound
	case "CONVERSION_FAILED":
		problemType = TypeExtractionFailed
	case "NOT_FOUND":
		problemType = TypeNotFound
	case "RATE_LIMIT_EXCEEDED":
		problemType = TypeRateLimit
	case "FILE_TOO_LARGE":
		problemType = TypePayloadTooLarge
	}

	problem := NewProblemDetails(
		apiErr.StatusCode,
		problemType,
		http.StatusText(apiErr.StatusCode),
		apiErr.Message,
		r.URL.Path,
	)
	if apiErr.Details != nil {
		problem.WithExtension("details", apiErr.Details)
	}
	return problem
}
