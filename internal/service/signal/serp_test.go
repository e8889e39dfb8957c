// internal/service/signal/serp_test.go

package signal_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"contentpulse/internal/domain/seo"
	"contentpulse/internal/service/signal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func serpServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestKeywordDataFromSearchResults(t *testing.T) {
	server := serpServer(t, `{
		"search_information": {"total_results": 250000000},
		"keyword_info": {"search_volume": 4200, "cost_per_click": 1.75},
		"ads": [{"position": 1}, {"position": 2}, {"position": 3}, {"position": 4}, {"position": 5}, {"position": 6}]
	}`)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	metric, err := provider.KeywordData(context.Background(), "content marketing")
	require.NoError(t, err)
	require.Equal(t, "content marketing", metric.Keyword)
	require.Equal(t, 4200, metric.SearchVolume)
	require.Equal(t, 1.75, metric.CostPerClick)
	require.Equal(t, 85, metric.Difficulty)
	require.Equal(t, seo.CompetitionHigh, metric.Competition)
}

func TestKeywordDataDifficultyBuckets(t *testing.T) {
	tests := []struct {
		totalResults int64
		want         int
	}{
		{totalResults: 500_000_000, want: 85},
		{totalResults: 50_000_000, want: 70},
		{totalResults: 5_000_000, want: 55},
		{totalResults: 500_000, want: 40},
		{totalResults: 50_000, want: 25},
		{totalResults: 0, want: 25},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d results", tt.totalResults), func(t *testing.T) {
			server := serpServer(t, fmt.Sprintf(
				`{"search_information": {"total_results": %d}}`, tt.totalResults))
			provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

			metric, err := provider.KeywordData(context.Background(), "term")
			require.NoError(t, err)
			require.Equal(t, tt.want, metric.Difficulty)
		})
	}
}

func TestKeywordDataCompetitionLevels(t *testing.T) {
	tests := []struct {
		adCount int
		want    seo.CompetitionLevel
	}{
		{adCount: 0, want: seo.CompetitionLow},
		{adCount: 2, want: seo.CompetitionLow},
		{adCount: 3, want: seo.CompetitionMedium},
		{adCount: 5, want: seo.CompetitionMedium},
		{adCount: 6, want: seo.CompetitionHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d ads", tt.adCount), func(t *testing.T) {
			var ads []string
			for i := 0; i < tt.adCount; i++ {
				ads = append(ads, fmt.Sprintf(`{"position": %d}`, i+1))
			}
			server := serpServer(t, fmt.Sprintf(`{"ads": [%s]}`, strings.Join(ads, ",")))
			provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

			metric, err := provider.KeywordData(context.Background(), "term")
			require.NoError(t, err)
			require.Equal(t, tt.want, metric.Competition)
		})
	}
}

func TestKeywordDataFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	metric, err := provider.KeywordData(context.Background(), "term")
	require.NoError(t, err)
	require.Equal(t, 1000, metric.SearchVolume)
	require.Equal(t, 50, metric.Difficulty)
	require.Equal(t, seo.CompetitionMedium, metric.Competition)
}

func TestKeywordDataFallsBackOnUnreachableHost(t *testing.T) {
	// Closed server simulates a transport failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	metric, err := provider.KeywordData(context.Background(), "term")
	require.NoError(t, err)
	require.Equal(t, 50, metric.Difficulty)
}

func TestAnalyzeContentSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	_, err := provider.AnalyzeContent(context.Background(), "draft body", "term")
	require.Error(t, err)
}

func TestAnalyzeContentCollectsCompetitors(t *testing.T) {
	server := serpServer(t, `{
		"search_information": {"total_results": 2000000},
		"organic_results": [
			{"position": 1, "title": "Top Guide", "link": "https://one.example.com"},
			{"position": 2, "title": "Second", "link": "https://two.example.com"},
			{"position": 3, "title": "Third", "link": "https://three.example.com"},
			{"position": 4, "title": "Fourth", "link": "https://four.example.com"},
			{"position": 5, "title": "Fifth", "link": "https://five.example.com"},
			{"position": 6, "title": "Sixth", "link": "https://six.example.com"}
		],
		"related_searches": [{"query": "related term"}]
	}`)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	insights, err := provider.AnalyzeContent(context.Background(), "draft body", "term")
	require.NoError(t, err)

	// Competitor list is bounded at five.
	require.Len(t, insights.CompetitorURLs, 5)
	require.Equal(t, "https://one.example.com", insights.CompetitorURLs[0])

	// Difficulty 55 for 2M results, so the score is its complement.
	require.Equal(t, 45.0, insights.Score)

	require.Len(t, insights.Recommendations, 2)
	require.Contains(t, insights.Recommendations[0], "Top Guide")
	require.Contains(t, insights.Recommendations[1], "related term")
}

func TestKeywordSuggestions(t *testing.T) {
	server := serpServer(t, `{
		"related_searches": [
			{"query": "content marketing strategy"},
			{"query": "content marketing examples"}
		]
	}`)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	suggestions, err := provider.KeywordSuggestions(context.Background(), "content marketing")
	require.NoError(t, err)
	require.Equal(t, []string{"content marketing strategy", "content marketing examples"}, suggestions)
}

func TestCompetitorAnalysis(t *testing.T) {
	server := serpServer(t, `{
		"organic_results": [
			{"position": 1, "title": "Leader", "link": "https://leader.example.com"},
			{"position": 2, "title": "Runner Up", "link": "https://runnerup.example.com"}
		]
	}`)

	provider := signal.NewSERPProvider(server.URL, "test-key", testLogger())

	competitors, err := provider.CompetitorAnalysis(context.Background(), "term")
	require.NoError(t, err)
	require.Len(t, competitors, 2)
	require.Equal(t, 1, competitors[0].Rank)
	require.Equal(t, "Leader", competitors[0].Title)
	require.Equal(t, "https://runnerup.example.com", competitors[1].URL)
}
