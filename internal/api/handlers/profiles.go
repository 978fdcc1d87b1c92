package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/geocoding"
	"github.com/smilintux/skyforge/pkg/logger"
)

// ProfileHandler handles profile CRUD endpoints
type ProfileHandler struct {
	store    contracts.ProfileStore
	geocoder *geocoding.Client // nil when geocoding is disabled
	logger   *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(store contracts.ProfileStore, geocoder *geocoding.Client, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		store:    store,
		geocoder: geocoder,
		logger:   log,
	}
}

// SaveProfileRequest represents a profile create/update request
type SaveProfileRequest struct {
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date"` // YYYY-MM-DD
	BirthTime string   `json:"birth_time,omitempty"`
	Place     string   `json:"place,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// List returns all stored profiles
// GET /api/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list profiles")
		respondError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	respondJSON(w, http.StatusOK, profiles)
}

// Get returns one profile by name
// GET /api/profiles/{name}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	profile, err := h.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, contracts.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.logger.WithError(err).Error("Failed to load profile")
		respondError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Save creates or updates a profile, geocoding the place when only a
// place name is supplied
// POST /api/profiles
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	birthDate, err := contracts.ParseDate(req.BirthDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid birth_date (expected YYYY-MM-DD)")
		return
	}

	profile := &contracts.Profile{
		Name:      req.Name,
		BirthDate: birthDate,
		BirthTime: req.BirthTime,
	}

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		profile.Location = &contracts.Location{
			Place:     req.Place,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Timezone:  req.Timezone,
		}
	case req.Place != "" && h.geocoder != nil:
		loc, err := h.geocoder.Resolve(r.Context(), req.Place)
		if err != nil {
			h.logger.WithError(err).Warn("Geocoding failed, saving profile without location")
		} else if loc != nil {
			loc.Timezone = req.Timezone
			profile.Location = loc
		}
	}

	if err := h.store.Save(r.Context(), profile); err != nil {
		if errors.Is(err, contracts.ErrProfileInvalid) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to save profile")
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Delete removes a profile
// DELETE /api/profiles/{name}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.store.Delete(r.Context(), name); err != nil {
		if errors.Is(err, contracts.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.logger.WithError(err).Error("Failed to delete profile")
		respondError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": name})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
