// internal/server/handlers/handlers_test.go

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"contentpulse/internal/domain/content"
	"contentpulse/internal/domain/seo"
	"contentpulse/internal/server/handlers"
)

// stubAnalyzer returns a canned analysis for handler tests
type stubAnalyzer struct {
	analysis *seo.ContentAnalysis
	err      error
}

func (a *stubAnalyzer) Analyze(ctx context.Context, draft seo.ContentDraft) (*seo.ContentAnalysis, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.analysis, nil
}

// stubAnalysisStore records saved analyses in memory
type stubAnalysisStore struct {
	saved []seo.ContentAnalysis
}

func (s *stubAnalysisStore) SaveAnalysis(ctx context.Context, a seo.ContentAnalysis) error {
	s.saved = append(s.saved, a)
	return nil
}

func (s *stubAnalysisStore) FindRecent(ctx context.Context, limit int) ([]seo.ContentAnalysis, error) {
	return s.saved, nil
}

// stubPlanner is a canned content.Planner for handler tests
type stubPlanner struct {
	items      []content.Item
	item       *content.Item
	advanceErr error
	score      float64
}

func (p *stubPlanner) PlanMonth(ctx context.Context, month time.Month, year int) ([]content.Item, error) {
	return p.items, nil
}

func (p *stubPlanner) GetItem(ctx context.Context, id string) (*content.Item, error) {
	if p.item == nil {
		return nil, content.ErrNotFound
	}
	return p.item, nil
}

func (p *stubPlanner) ListItems(ctx context.Context, filter content.Filter) ([]content.Item, error) {
	return p.items, nil
}

func (p *stubPlanner) AdvanceStatus(ctx context.Context, itemID string, status content.Status) error {
	return p.advanceErr
}

func (p *stubPlanner) RecordEngagement(ctx context.Context, post content.HistoricalPost, metrics content.EngagementMetrics) (float64, error) {
	return p.score, nil
}

func (p *stubPlanner) RegisterPlanHandler(handler func([]content.Item) error) error {
	return nil
}

func TestAnalyzeDraftHandler(t *testing.T) {
	store := &stubAnalysisStore{}
	handler := handlers.NewAnalysisHandler(&stubAnalyzer{
		analysis: &seo.ContentAnalysis{ID: "a1", Keyword: "seo", OverallScore: 80},
	}, store)

	body, _ := json.Marshal(map[string]string{
		"text":           "## Intro\nDraft body.\n## Close\nDone.",
		"target_keyword": "seo",
		"title":          "Draft",
	})

	req := httptest.NewRequest(http.MethodPost, "/analysis", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.AnalyzeDraft(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.saved, 1)
	require.Equal(t, "a1", store.saved[0].ID)
}

func TestAnalyzeDraftRejectsMissingFields(t *testing.T) {
	handler := handlers.NewAnalysisHandler(&stubAnalyzer{}, &stubAnalysisStore{})

	body, _ := json.Marshal(map[string]string{"title": "no text or keyword"})
	req := httptest.NewRequest(http.MethodPost, "/analysis", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.AnalyzeDraft(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanMonthRejectsInvalidDates(t *testing.T) {
	handler := handlers.NewCalendarHandler(&stubPlanner{})

	for _, payload := range []string{
		`{"month": 0, "year": 2026}`,
		`{"month": 13, "year": 2026}`,
		`{"month": 5, "year": 1990}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/calendar", bytes.NewReader([]byte(payload)))
		rec := httptest.NewRecorder()
		handler.PlanMonth(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
	}
}

func TestPlanMonthReturnsCreatedItems(t *testing.T) {
	handler := handlers.NewCalendarHandler(&stubPlanner{
		items: []content.Item{{ID: "i1"}, {ID: "i2"}},
	})

	req := httptest.NewRequest(http.MethodPost, "/calendar",
		bytes.NewReader([]byte(`{"month": 10, "year": 2026}`)))
	rec := httptest.NewRecorder()
	handler.PlanMonth(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var items []content.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
}

func TestAdvanceStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		advanceErr error
		wantCode   int
	}{
		{name: "forward transition", advanceErr: nil, wantCode: http.StatusOK},
		{name: "not found", advanceErr: content.ErrNotFound, wantCode: http.StatusNotFound},
		{
			name:       "backward transition",
			advanceErr: fmt.Errorf("%w: published -> draft", content.ErrInvalidTransition),
			wantCode:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewCalendarHandler(&stubPlanner{advanceErr: tt.advanceErr})

			router := chi.NewRouter()
			router.Post("/calendar/items/{id}/status", handler.AdvanceStatus)

			req := httptest.NewRequest(http.MethodPost, "/calendar/items/i1/status",
				bytes.NewReader([]byte(`{"status": "draft"}`)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdvanceStatusRejectsUnknownStatus(t *testing.T) {
	handler := handlers.NewCalendarHandler(&stubPlanner{})

	router := chi.NewRouter()
	router.Post("/calendar/items/{id}/status", handler.AdvanceStatus)

	req := httptest.NewRequest(http.MethodPost, "/calendar/items/i1/status",
		bytes.NewReader([]byte(`{"status": "archived"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordEngagementValidation(t *testing.T) {
	handler := handlers.NewEngagementHandler(&stubPlanner{score: 7})

	tests := []struct {
		name     string
		payload  string
		wantCode int
	}{
		{
			name:     "valid",
			payload:  `{"post_id": "p1", "views": 100, "clicks": 10, "conversion_rate": 0.1}`,
			wantCode: http.StatusOK,
		},
		{name: "missing post id", payload: `{"views": 100}`, wantCode: http.StatusBadRequest},
		{name: "negative views", payload: `{"post_id": "p1", "views": -1}`, wantCode: http.StatusBadRequest},
		{
			name:     "conversion rate above one",
			payload:  `{"post_id": "p1", "conversion_rate": 1.5}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/engagement",
				bytes.NewReader([]byte(tt.payload)))
			rec := httptest.NewRecorder()
			handler.RecordEngagement(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
