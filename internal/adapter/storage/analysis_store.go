// internal/adapter/storage/analysis_store.go

package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"contentpulse/internal/domain/seo"
)

// AnalysisStore implements storage for draft content analyses
type AnalysisStore struct {
	db *pgxpool.Pool
}

// NewAnalysisStore creates a new analysis store
func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{
		db: db,
	}
}

// SaveAnalysis persists one content analysis result
func (s *AnalysisStore) SaveAnalysis(ctx context.Context, a seo.ContentAnalysis) error {
	query := `
		INSERT INTO content_analyses (
			id, keyword, title, overall_score, keyword_density,
			readability_score, has_heading_structure, word_count,
			recommendations, external_score, competitor_urls, analyzed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	var externalScore *float64
	var competitorURLs []string
	if a.External != nil {
		externalScore = &a.External.Score
		competitorURLs = a.External.CompetitorURLs
	}

	_, err := s.db.Exec(ctx, query,
		a.ID, a.Keyword, a.Title, a.OverallScore, a.KeywordDensity,
		a.ReadabilityScore, a.HasHeadingStructure, a.WordCount,
		a.Recommendations, externalScore, competitorURLs, a.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving analysis: %w", err)
	}

	return nil
}

// FindRecent returns the most recent analyses, newest first
func (s *AnalysisStore) FindRecent(ctx context.Context, limit int) ([]seo.ContentAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, keyword, title, overall_score, keyword_density,
			readability_score, has_heading_structure, word_count,
			recommendations, external_score, competitor_urls, analyzed_at
		FROM content_analyses
		ORDER BY analyzed_at DESC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying analyses: %w", err)
	}
	defer rows.Close()

	var analyses []seo.ContentAnalysis
	for rows.Next() {
		var a seo.ContentAnalysis
		var externalScore *float64
		var competitorURLs []string

		err := rows.Scan(
			&a.ID, &a.Keyword, &a.Title, &a.OverallScore, &a.KeywordDensity,
			&a.ReadabilityScore, &a.HasHeadingStructure, &a.WordCount,
			&a.Recommendations, &externalScore, &competitorURLs, &a.AnalyzedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning analysis: %w", err)
		}

		if externalScore != nil {
			a.External = &seo.ExternalSignal{
				Score:          *externalScore,
				CompetitorURLs: competitorURLs,
			}
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return analyses, nil
}
