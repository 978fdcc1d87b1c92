package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/report"
	"github.com/smilintux/skyforge/pkg/logger"
)

// ReportHandler handles daily report and calendar endpoints
type ReportHandler struct {
	store   contracts.ProfileStore
	service *report.Service
	logger  *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(store contracts.ProfileStore, service *report.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		store:   store,
		service: service,
		logger:  log,
	}
}

// GetReport returns the daily report for one profile and date
// GET /api/profiles/{name}/report/{date}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, ok := h.loadProfile(w, r, vars["name"])
	if !ok {
		return
	}

	date, err := contracts.ParseDate(vars["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
		return
	}

	rep, err := h.service.ComputeDay(r.Context(), profile, date)
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute report")
		respondError(w, http.StatusInternalServerError, "Failed to compute report")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// GetCalendar returns the calendar for a date range
// GET /api/profiles/{name}/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD[&strict=true][&workers=N]
func (h *ReportHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, ok := h.loadProfile(w, r, vars["name"])
	if !ok {
		return
	}

	query := r.URL.Query()
	start, err := contracts.ParseDate(query.Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start date (expected YYYY-MM-DD)")
		return
	}
	end, err := contracts.ParseDate(query.Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end date (expected YYYY-MM-DD)")
		return
	}

	opts := report.BuildOptions{}
	if query.Get("strict") == "true" {
		opts.Strict = true
	}
	if workers := query.Get("workers"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "Invalid workers (expected positive integer)")
			return
		}
		opts.Workers = n
	}

	cal, err := h.service.ComputeRange(r.Context(), profile, start, end, opts)
	if err != nil {
		if errors.Is(err, contracts.ErrDateRangeInvalid) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to build calendar")
		respondError(w, http.StatusInternalServerError, "Failed to build calendar")
		return
	}

	respondJSON(w, http.StatusOK, cal)
}

// loadProfile loads a profile for a handler, writing the error response
// itself on failure
func (h *ReportHandler) loadProfile(w http.ResponseWriter, r *http.Request, name string) (*contracts.Profile, bool) {
	profile, err := h.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, contracts.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "Profile not found")
			return nil, false
		}
		h.logger.WithError(err).Error("Failed to load profile")
		respondError(w, http.StatusInternalServerError, "Failed to load profile")
		return nil, false
	}
	return profile, true
}
