// internal/service/signal/mock.go

package signal

import (
	"context"
	"fmt"
	"hash/fnv"

	"contentpulse/internal/domain/seo"
)

// MockProvider is the degraded-mode implementation of seo.SignalProvider
// used when no API credentials are configured. Its output is deterministic
// for a given input so tests and local development stay reproducible.
type MockProvider struct{}

// NewMockProvider creates a deterministic mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// KeywordData returns deterministic placeholder metrics derived from the keyword
func (p *MockProvider) KeywordData(ctx context.Context, keyword string) (*seo.KeywordMetric, error) {
	h := hashKeyword(keyword)

	levels := []seo.CompetitionLevel{seo.CompetitionLow, seo.CompetitionMedium, seo.CompetitionHigh}
	trends := []seo.Trend{seo.TrendRising, seo.TrendStable, seo.TrendFalling}

	return &seo.KeywordMetric{
		Keyword:      keyword,
		SearchVolume: int(500 + h%10000),
		Difficulty:   int(20 + h%60),
		CostPerClick: float64(h%400)/100 + 0.1,
		Competition:  levels[h%3],
		Trend:        trends[(h/3)%3],
	}, nil
}

// AnalyzeContent returns canned insights without competitor data
func (p *MockProvider) AnalyzeContent(ctx context.Context, text, keyword string) (*seo.ContentInsights, error) {
	h := hashKeyword(keyword)

	return &seo.ContentInsights{
		Score: float64(40 + h%40),
		Recommendations: []string{
			fmt.Sprintf("Research live competitor coverage for %q once API credentials are configured", keyword),
		},
	}, nil
}

// KeywordSuggestions returns deterministic variations of the seed term
func (p *MockProvider) KeywordSuggestions(ctx context.Context, seed string) ([]string, error) {
	return []string{
		"best " + seed,
		seed + " guide",
		seed + " examples",
		"how to " + seed,
	}, nil
}

// CompetitorAnalysis returns an empty competitor list; no live data is available
func (p *MockProvider) CompetitorAnalysis(ctx context.Context, keyword string) ([]seo.Competitor, error) {
	return nil, nil
}

func hashKeyword(keyword string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(keyword))
	return h.Sum64()
}
