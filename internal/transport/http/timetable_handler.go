package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "ttapi/internal/errors"
	"ttapi/internal/extract"
	"ttapi/internal/files"
	"ttapi/internal/middleware"
	"ttapi/internal/services"
	"ttapi/pkg/contracts/domain"
)

// uploadField is the multipart form field carrying the table document.
const uploadField = "file"

// TimetableHandler handles timetable conversion HTTP requests
type TimetableHandler struct {
	service      *services.TimetableService
	files        *files.Manager
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBytes     int64
}

// NewTimetableHandler creates a new timetable handler
func NewTimetableHandler(service *services.TimetableService, fm *files.Manager, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxBytes int64) *TimetableHandler {
	return &TimetableHandler{
		service:      service,
		files:        fm,
		logger:       logger.With(slog.String("component", "timetable_handler")),
		errorHandler: errorHandler,
		maxBytes:     maxBytes,
	}
}

// Routes returns the timetable conversion routes
func (h *TimetableHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/timetable/parse", h.ParseTimetable)
	r.Post("/csv/to-json", h.CSVToJSON)
	r.Post("/xlsx/to-csv", h.XLSXToCSV)
	return r
}

// parseResponse is the success envelope for conversion endpoints.
type parseResponse struct {
	Success       bool                     `json:"success"`
	Message       string                   `json:"message"`
	Data          parseData                `json:"data"`
	Statistics    domain.Statistics        `json:"statistics"`
	ParsingReport *domain.ExtractionReport `json:"parsing_report,omitempty"`
}

type parseData struct {
	Classes []domain.ClassEntry `json:"classes"`
}

// ParseTimetable handles POST /api/timetable/parse: a CSV or XLSX upload
// of an extracted timetable grid, converted to structured JSON.
func (h *TimetableHandler) ParseTimetable(w http.ResponseWriter, r *http.Request) {
	h.handleConversion(w, r, "parse", nil)
}

// CSVToJSON handles POST /api/csv/to-json, the CSV-only variant kept for
// callers that run extraction themselves.
func (h *TimetableHandler) CSVToJSON(w http.ResponseWriter, r *http.Request) {
	h.handleConversion(w, r, "csv_to_json", map[string]bool{".csv": true})
}

func (h *TimetableHandler) handleConversion(w http.ResponseWriter, r *http.Request, endpoint string, onlyExts map[string]bool) {
	start := time.Now()
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	h.logger.InfoContext(ctx, "conversion request received",
		slog.String("request_id", reqID),
		slog.String("endpoint", endpoint),
		slog.String("remote_addr", r.RemoteAddr),
		slog.Int64("content_length", r.ContentLength))

	file, _, ext, apiErr := h.acceptUpload(w, r, onlyExts)
	if apiErr != nil {
		conversionsTotal.WithLabelValues(endpoint, "rejected").Inc()
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}
	defer file.Close()

	path, err := h.files.SaveUpload(file, ext)
	if err != nil {
		conversionsTotal.WithLabelValues(endpoint, "error").Inc()
		h.errorHandler.HandleError(w, r, apierrors.ErrFileSystem)
		return
	}
	defer h.files.Cleanup(path)

	result, err := h.service.ParseFile(ctx, path)
	if err != nil {
		conversionsTotal.WithLabelValues(endpoint, "error").Inc()
		h.errorHandler.HandleError(w, r, err)
		return
	}

	conversionsTotal.WithLabelValues(endpoint, "success").Inc()
	parseDuration.Observe(time.Since(start).Seconds())

	h.logger.InfoContext(ctx, "conversion request completed",
		slog.String("request_id", reqID),
		slog.Int("classes", result.Statistics.TotalClasses),
		slog.Int("periods", result.Statistics.TotalPeriods),
		slog.Duration("duration", time.Since(start)))

	resp := parseResponse{
		Success:    true,
		Message:    "解析成功",
		Data:       parseData{Classes: result.Classes},
		Statistics: result.Statistics,
	}
	if endpoint == "parse" {
		resp.ParsingReport = result.Report
	}
	render.JSON(w, r, resp)
}

// XLSXToCSV handles POST /api/xlsx/to-csv: extracts the grid from an
// uploaded workbook and returns it as a CSV attachment, the intermediate
// form of the parse pipeline.
func (h *TimetableHandler) XLSXToCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, ext, apiErr := h.acceptUpload(w, r, map[string]bool{".xlsx": true})
	if apiErr != nil {
		conversionsTotal.WithLabelValues("xlsx_to_csv", "rejected").Inc()
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}
	defer file.Close()

	path, err := h.files.SaveUpload(file, ext)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrFileSystem)
		return
	}
	defer h.files.Cleanup(path)

	grid, _, err := extract.FromFile(path)
	if err != nil {
		conversionsTotal.WithLabelValues("xlsx_to_csv", "error").Inc()
		h.errorHandler.HandleError(w, r, err)
		return
	}

	filename := downloadName(header.Filename)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(grid); err != nil {
		h.logger.ErrorContext(ctx, "failed to stream csv",
			slog.String("error", err.Error()))
		return
	}
	conversionsTotal.WithLabelValues("xlsx_to_csv", "success").Inc()
}

// acceptUpload validates the multipart upload and returns the opened file,
// its header and extension, or the APIError to respond with.
func (h *TimetableHandler) acceptUpload(w http.ResponseWriter, r *http.Request, onlyExts map[string]bool) (multipart.File, *multipart.FileHeader, string, *apierrors.APIError) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			return nil, nil, "", apierrors.ErrFileTooLarge
		}
		return nil, nil, "", apierrors.ErrMissingFile
	}

	if header.Filename == "" {
		file.Close()
		return nil, nil, "", apierrors.ErrValidation(uploadField, "filename is empty")
	}

	ext, ok := files.AllowedExt(header.Filename)
	if ok && onlyExts != nil {
		ok = onlyExts[ext]
	}
	if !ok {
		file.Close()
		return nil, nil, "", apierrors.UnsupportedFormatError(ext)
	}
	return file, header, ext, nil
}

// downloadName derives the attachment name from the uploaded filename.
func downloadName(uploaded string) string {
	base := strings.TrimSuffix(filepath.Base(uploaded), filepath.Ext(uploaded))
	if base == "" || base == "." {
		base = "table"
	}
	return base + "_table.csv"
}
