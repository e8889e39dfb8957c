// internal/domain/seo/provider.go

package seo

import (
	"context"
)

// ContentInsights is the content-level result from the external research source
type ContentInsights struct {
	Score           float64
	KeywordDensity  float64
	Readability     float64
	Recommendations []string
	CompetitorURLs  []string
}

// SignalProvider abstracts a third-party keyword and competitor research
// source. KeywordData absorbs upstream failures into conservative defaults;
// the remaining calls surface errors so the orchestrator can degrade to
// local-only analysis.
type SignalProvider interface {
	// Name returns the provider name
	Name() string

	// KeywordData returns research metrics for a keyword
	KeywordData(ctx context.Context, keyword string) (*KeywordMetric, error)

	// AnalyzeContent analyzes draft text against a target keyword
	AnalyzeContent(ctx context.Context, text, keyword string) (*ContentInsights, error)

	// KeywordSuggestions returns related keywords for a seed term
	KeywordSuggestions(ctx context.Context, seed string) ([]string, error)

	// CompetitorAnalysis returns the ranked competing pages for a keyword
	CompetitorAnalysis(ctx context.Context, keyword string) ([]Competitor, error)
}

// Analyzer defines the interface for draft content analysis
type Analyzer interface {
	// Analyze scores a draft against SEO and readability heuristics
	Analyze(ctx context.Context, draft ContentDraft) (*ContentAnalysis, error)
}
