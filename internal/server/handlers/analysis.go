// internal/server/handlers/analysis.go

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"contentpulse/internal/domain/seo"
)

// AnalysisStore defines the persistence surface the analysis handler needs
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, a seo.ContentAnalysis) error
	FindRecent(ctx context.Context, limit int) ([]seo.ContentAnalysis, error)
}

// AnalysisHandler handles draft analysis HTTP requests
type AnalysisHandler struct {
	analyzer seo.Analyzer
	store    AnalysisStore
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer seo.Analyzer, store AnalysisStore) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		store:    store,
	}
}

// analyzeRequest is the POST /analysis payload
type analyzeRequest struct {
	Text          string `json:"text"`
	TargetKeyword string `json:"target_keyword"`
	Title         string `json:"title"`
}

// AnalyzeDraft scores a draft and persists the result
func (h *AnalysisHandler) AnalyzeDraft(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Text == "" || req.TargetKeyword == "" {
		respondWithError(w, http.StatusBadRequest, "Missing text or target keyword", nil)
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), seo.ContentDraft{
		Text:          req.Text,
		TargetKeyword: req.TargetKeyword,
		Title:         req.Title,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to analyze draft", err)
		return
	}

	if err := h.store.SaveAnalysis(r.Context(), *analysis); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save analysis", err)
		return
	}

	respondWithJSON(w, http.StatusOK, analysis)
}

// ListAnalyses returns recent analyses
func (h *AnalysisHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	analyses, err := h.store.FindRecent(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list analyses", err)
		return
	}

	respondWithJSON(w, http.StatusOK, analyses)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}
	if err != nil {
		response["detail"] = err.Error()
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
