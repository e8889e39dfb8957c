// internal/server/handlers/keyword.go

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"contentpulse/internal/domain/seo"
)

// KeywordHandler handles keyword research HTTP requests
type KeywordHandler struct {
	provider seo.SignalProvider
}

// NewKeywordHandler creates a new keyword handler
func NewKeywordHandler(provider seo.SignalProvider) *KeywordHandler {
	return &KeywordHandler{
		provider: provider,
	}
}

// GetKeywordData returns research metrics for a keyword
func (h *KeywordHandler) GetKeywordData(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if keyword == "" {
		respondWithError(w, http.StatusBadRequest, "Missing keyword", nil)
		return
	}

	metric, err := h.provider.KeywordData(r.Context(), keyword)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to fetch keyword data", err)
		return
	}

	respondWithJSON(w, http.StatusOK, metric)
}

// GetSuggestions returns related keywords for a seed term
func (h *KeywordHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if keyword == "" {
		respondWithError(w, http.StatusBadRequest, "Missing keyword", nil)
		return
	}

	suggestions, err := h.provider.KeywordSuggestions(r.Context(), keyword)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to fetch keyword suggestions", err)
		return
	}

	respondWithJSON(w, http.StatusOK, suggestions)
}

// GetCompetitors returns the ranked competing pages for a keyword
func (h *KeywordHandler) GetCompetitors(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if keyword == "" {
		respondWithError(w, http.StatusBadRequest, "Missing keyword", nil)
		return
	}

	competitors, err := h.provider.CompetitorAnalysis(r.Context(), keyword)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to fetch competitor analysis", err)
		return
	}

	respondWithJSON(w, http.StatusOK, competitors)
}
