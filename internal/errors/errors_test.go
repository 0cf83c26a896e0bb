package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttapi/internal/extract"
	"ttapi/internal/timetable"
)

func testHandler() *ErrorHandler {
	return NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}

func TestAPIError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	detailed := ErrValidation("file", "filename is empty")
	assert.Equal(t, "VALIDATION_FAILED", detailed.ErrorCode)
	assert.Equal(t, ValidationError{Field: "file", Message: "filename is empty"}, detailed.Details)
}

func TestErrorToProblem(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "grid too small",
			err:        timetable.ErrTooFewRows,
			wantStatus: http.StatusBadRequest,
			wantType:   TypeGridTooSmall,
		},
		{
			name:       "wrapped engine error",
			err:        fmt.Errorf("conversion: %w", timetable.ErrNoWeekdays),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeNoWeekdaysFound,
		},
		{
			name:       "unsupported format",
			err:        &extract.ErrUnsupportedFormat{Ext: ".pdf"},
			wantStatus: http.StatusBadRequest,
			wantType:   TypeUnsupportedFormat,
		},
		{
			name:       "api error keeps its status",
			err:        ErrFileTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantType:   TypePayloadTooLarge,
		},
		{
			name:       "context timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantType:   TypeTimeout,
		},
		{
			name:       "unknown error is internal",
			err:        fmt.Errorf("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/timetable/parse", nil)
			problem := testHandler().ErrorToProblem(tt.err, r)

			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
			assert.Equal(t, "/api/timetable/parse", problem.Instance)
		})
	}
}

func TestHandleError_RendersProblemJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/timetable/parse", nil)

	testHandler().HandleError(rec, r, timetable.ErrNoWeekdays)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, TypeNoWeekdaysFound, body["type"])
	assert.Contains(t, body, "trace_id")
}

func TestHandleError_NilIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProblemDetails_MarshalIncludesExtensions(t *testing.T) {
	pd := NewProblemDetails(400, TypeValidation, "Validation Failed", "bad field", "/api/x").
		WithExtension("trace_id", "abc")

	data, err := json.Marshal(pd)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "abc", body["trace_id"])
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "bad field", body["detail"])
}
