package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avolio/flightgrid"
	"github.com/avolio/flightgrid/cache"
	"github.com/avolio/flightgrid/export"
	"github.com/avolio/flightgrid/internal/config"
	"github.com/avolio/flightgrid/matrix"
	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/pkg/logger"
	"github.com/avolio/flightgrid/rows"
	"github.com/avolio/flightgrid/schedule"
)

// Handler serves the schedule API endpoints.
type Handler struct {
	store  *cache.Store
	config *config.Config
	logger *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(store *cache.Store, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		config: cfg,
		logger: log.Named("api-handler"),
	}
}

// scheduleSummary is the response shape for the upload and summary
// endpoints.
type scheduleSummary struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename,omitempty"`
	Year        int                  `json:"year,omitempty"`
	Month       int                  `json:"month,omitempty"`
	RecordCount int                  `json:"record_count"`
	DaysCovered int                  `json:"days_covered"`
	Weekdays    []string             `json:"weekdays,omitempty"`
	Diagnostics schedule.Diagnostics `json:"diagnostics"`
	Warnings    []flightgrid.Warning `json:"warnings,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// summarize condenses a cached parse into the summary response.
func summarize(entry *cache.Entry) scheduleSummary {
	days := make(map[time.Time]bool)
	onWeekday := make(map[time.Weekday]bool)
	for _, rec := range entry.Records {
		days[rec.Date] = true
		onWeekday[rec.Weekday] = true
	}
	var weekdays []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if onWeekday[wd] {
			weekdays = append(weekdays, wd.String())
		}
	}

	return scheduleSummary{
		ID:          entry.ID,
		Filename:    entry.Filename,
		Year:        entry.Year,
		Month:       int(entry.Month),
		RecordCount: len(entry.Records),
		DaysCovered: len(days),
		Weekdays:    weekdays,
		Diagnostics: entry.Diagnostics,
		Warnings:    entry.Diagnostics.Warnings(),
		CreatedAt:   entry.CreatedAt,
	}
}

// CreateSchedule uploads a schedule document, parses it and caches the
// result under its content hash. Query parameters: year, month, strategy,
// filename (format detection hint).
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Server.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, "document exceeds the upload limit")
		return
	}
	if len(data) == 0 {
		h.writeError(w, http.StatusBadRequest, "empty document")
		return
	}

	year, month, err := h.period(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	strategyParam := r.URL.Query().Get("strategy")
	if strategyParam == "" {
		strategyParam = h.config.Parse.Strategy
	}
	kind, err := rows.ParseKind(strategyParam)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename := r.URL.Query().Get("filename")

	records, diag, err := flightgrid.FromBytes(filename, data).
		Month(year, month).
		Strategy(kind).
		Parse()
	if err != nil {
		// Document could not be loaded at all (unknown container format,
		// OCR unavailable). Malformed content inside a recognized format
		// is not an error; it parses to an empty set with diagnostics.
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := &cache.Entry{
		ID:          cache.Key(data),
		Filename:    filename,
		Year:        year,
		Month:       month,
		Records:     records,
		Diagnostics: diag,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.Put(r.Context(), entry); err != nil {
		h.logger.WithError(err).Error("failed to cache schedule")
		h.writeError(w, http.StatusInternalServerError, "failed to store parse result")
		return
	}

	h.logger.Info("schedule parsed",
		logger.String("id", entry.ID),
		logger.String("filename", filename),
		logger.Int("records", len(records)))
	h.writeJSON(w, http.StatusCreated, summarize(entry))
}

// GetSchedule returns the summary of a cached schedule.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, summarize(entry))
}

// recordsResponse is the response shape of the records endpoint.
type recordsResponse struct {
	ID      string               `json:"id"`
	Count   int                  `json:"count"`
	Records []model.FlightRecord `json:"records"`
}

// GetScheduleRecords returns the flat record set of a cached schedule.
func (h *Handler) GetScheduleRecords(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}

	records := entry.Records
	if records == nil {
		records = []model.FlightRecord{}
	}
	h.writeJSON(w, http.StatusOK, recordsResponse{
		ID:      entry.ID,
		Count:   len(records),
		Records: records,
	})
}

// GetScheduleMatrix returns the weekday matrix of a cached schedule as
// JSON. Query parameters: weekday (required), pad, format.
func (h *Handler) GetScheduleMatrix(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, ok := h.matrixFromRequest(w, r, entry)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// GetScheduleMatrixCSV returns the weekday matrix as a CSV download.
func (h *Handler) GetScheduleMatrixCSV(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, ok := h.matrixFromRequest(w, r, entry)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := (&export.CSVExporter{}).Export(&buf, m); err != nil {
		h.logger.WithError(err).Error("CSV export failed")
		h.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", strings.ToLower(m.Weekday.String())+".csv"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetScheduleMatrixPDF returns the weekday matrix as a printable PDF grid.
func (h *Handler) GetScheduleMatrixPDF(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, ok := h.matrixFromRequest(w, r, entry)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := (&export.PDFExporter{}).Export(&buf, m); err != nil {
		h.logger.WithError(err).Error("PDF export failed")
		h.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", strings.ToLower(m.Weekday.String())+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetHealth returns the service health status.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// lookup resolves the {id} URL parameter against the cache, writing the
// error response itself when the entry cannot be served.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*cache.Entry, bool) {
	id := chi.URLParam(r, "id")
	entry, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "unknown schedule id")
		} else {
			h.logger.WithError(err).Error("cache lookup failed")
			h.writeError(w, http.StatusInternalServerError, "cache lookup failed")
		}
		return nil, false
	}
	return entry, true
}

// matrixFromRequest builds the weekday matrix selected by the query
// parameters, writing the error response itself on bad parameters.
func (h *Handler) matrixFromRequest(w http.ResponseWriter, r *http.Request, entry *cache.Entry) (*model.Matrix, bool) {
	q := r.URL.Query()

	wdParam := q.Get("weekday")
	if wdParam == "" {
		h.writeError(w, http.StatusBadRequest, "weekday query parameter is required")
		return nil, false
	}
	weekday, ok := model.ParseWeekday(wdParam)
	if !ok {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown weekday %q", wdParam))
		return nil, false
	}

	pad := h.config.Parse.PadFullMonth
	if v := q.Get("pad"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("bad pad value %q", v))
			return nil, false
		}
		pad = parsed
	}

	formatParam := q.Get("format")
	if formatParam == "" {
		formatParam = h.config.Parse.DateFormat
	}
	dateFormat, err := matrix.ParseDateFormat(formatParam)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	b := matrix.NewBuilder(matrix.Config{
		Year:   entry.Year,
		Month:  entry.Month,
		Pad:    pad,
		Format: dateFormat,
	})
	return b.Build(entry.Records, weekday), true
}

// period resolves the target year and month from the query parameters,
// falling back to the configured defaults.
func (h *Handler) period(r *http.Request) (int, time.Month, error) {
	q := r.URL.Query()

	year := h.config.Parse.Year
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("bad year %q", v)
		}
		year = parsed
	}

	month := h.config.Parse.Month
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, fmt.Errorf("bad month %q", v)
		}
		month = parsed
	}

	return year, time.Month(month), nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}
