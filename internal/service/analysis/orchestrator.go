// internal/service/analysis/orchestrator.go

package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"contentpulse/internal/domain/seo"
)

// maxRecommendations caps the merged recommendation list
const maxRecommendations = 5

// OrchestratorConfig contains configuration for the analysis orchestrator
type OrchestratorConfig struct {
	ExternalTimeout time.Duration
}

// Orchestrator implements the seo.Analyzer interface. It always computes
// local metrics and enriches them with the external signal when the
// provider is reachable.
type Orchestrator struct {
	provider seo.SignalProvider
	logger   *slog.Logger
	config   OrchestratorConfig
}

// NewOrchestrator creates a new analysis orchestrator
func NewOrchestrator(provider seo.SignalProvider, logger *slog.Logger, config OrchestratorConfig) *Orchestrator {
	if config.ExternalTimeout <= 0 {
		config.ExternalTimeout = 10 * time.Second
	}

	return &Orchestrator{
		provider: provider,
		logger:   logger,
		config:   config,
	}
}

// Analyze scores a draft against SEO and readability heuristics. Failure of
// the external signal call narrows the result but never fails the analysis.
func (o *Orchestrator) Analyze(ctx context.Context, draft seo.ContentDraft) (*seo.ContentAnalysis, error) {
	density := KeywordDensity(draft.Text, draft.TargetKeyword)
	readability := ReadabilityScore(draft.Text)
	hasHeadings := HasHeadingStructure(draft.Text)
	wordCount := WordCount(draft.Text)

	recommendations := Recommend(density, readability, hasHeadings, wordCount)

	var external *seo.ExternalSignal

	extCtx, cancel := context.WithTimeout(ctx, o.config.ExternalTimeout)
	defer cancel()

	insights, err := o.provider.AnalyzeContent(extCtx, draft.Text, draft.TargetKeyword)
	if err != nil {
		o.logger.Warn("external signal unavailable, continuing with local analysis",
			"provider", o.provider.Name(),
			"keyword", draft.TargetKeyword,
			"error", err,
		)
	} else {
		// External recommendations lead, local ones follow.
		recommendations = append(append([]string{}, insights.Recommendations...), recommendations...)
		external = &seo.ExternalSignal{
			Score:          insights.Score,
			CompetitorURLs: insights.CompetitorURLs,
		}
	}

	score := OverallScore(density, readability, hasHeadings, len(recommendations))

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return &seo.ContentAnalysis{
		ID:                  uuid.New().String(),
		Keyword:             draft.TargetKeyword,
		Title:               draft.Title,
		OverallScore:        score,
		KeywordDensity:      density,
		ReadabilityScore:    readability,
		HasHeadingStructure: hasHeadings,
		WordCount:           wordCount,
		Recommendations:     recommendations,
		External:            external,
		AnalyzedAt:          time.Now(),
	}, nil
}
