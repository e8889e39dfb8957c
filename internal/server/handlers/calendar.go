// internal/server/handlers/calendar.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"contentpulse/internal/domain/content"
)

// CalendarHandler handles publishing calendar HTTP requests
type CalendarHandler struct {
	planner content.Planner
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(planner content.Planner) *CalendarHandler {
	return &CalendarHandler{
		planner: planner,
	}
}

// planRequest is the POST /calendar payload
type planRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PlanMonth generates the publishing calendar for a month
func (h *CalendarHandler) PlanMonth(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		respondWithError(w, http.StatusBadRequest, "Invalid month or year", nil)
		return
	}

	items, err := h.planner.PlanMonth(r.Context(), time.Month(req.Month), req.Year)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to plan month", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, items)
}

// ListItems returns calendar items matching the query filters
func (h *CalendarHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	var filter content.Filter

	if month, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		filter.Month = time.Month(month)
	}
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = year
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Statuses = []content.Status{content.Status(status)}
	}
	if platform := r.URL.Query().Get("platform"); platform != "" {
		filter.Platforms = []content.Platform{content.Platform(platform)}
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		filter.Offset = offset
	}

	items, err := h.planner.ListItems(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list items", err)
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

// GetItem returns a specific calendar item by ID
func (h *CalendarHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing item ID", nil)
		return
	}

	item, err := h.planner.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Item not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get item", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

// statusRequest is the POST /items/{id}/status payload
type statusRequest struct {
	Status string `json:"status"`
}

// AdvanceStatus moves a calendar item forward through its lifecycle
func (h *CalendarHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing item ID", nil)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := content.Status(req.Status)
	if !status.Valid() {
		respondWithError(w, http.StatusBadRequest, "Unknown status", nil)
		return
	}

	err := h.planner.AdvanceStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Item not found", nil)
		case errors.Is(err, content.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, "Status can only move forward", err)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to advance status", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}
