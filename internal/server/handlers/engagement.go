// internal/server/handlers/engagement.go

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"contentpulse/internal/domain/content"
)

// EngagementHandler handles engagement metric HTTP requests
type EngagementHandler struct {
	planner content.Planner
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(planner content.Planner) *EngagementHandler {
	return &EngagementHandler{
		planner: planner,
	}
}

// engagementRequest is the POST /engagement payload
type engagementRequest struct {
	PostID         string    `json:"post_id"`
	Keywords       []string  `json:"keywords"`
	PublishedAt    time.Time `json:"published_at"`
	Views          int       `json:"views"`
	Clicks         int       `json:"clicks"`
	Shares         int       `json:"shares"`
	Comments       int       `json:"comments"`
	ConversionRate float64   `json:"conversion_rate"`
}

// RecordEngagement reduces raw counters to an engagement score and stores
// the enriched post for the next planning cycle.
func (h *EngagementHandler) RecordEngagement(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.PostID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing post ID", nil)
		return
	}

	if req.Views < 0 || req.Clicks < 0 || req.Shares < 0 || req.Comments < 0 ||
		req.ConversionRate < 0 || req.ConversionRate > 1 {
		respondWithError(w, http.StatusBadRequest, "Invalid metric values", nil)
		return
	}

	post := content.HistoricalPost{
		ID:          req.PostID,
		Keywords:    req.Keywords,
		PublishedAt: req.PublishedAt,
	}

	metrics := content.EngagementMetrics{
		Views:          req.Views,
		Clicks:         req.Clicks,
		Shares:         req.Shares,
		Comments:       req.Comments,
		ConversionRate: req.ConversionRate,
	}

	score, err := h.planner.RecordEngagement(r.Context(), post, metrics)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record engagement", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"post_id":          req.PostID,
		"engagement_score": score,
	})
}
