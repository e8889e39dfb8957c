package seo

import (
	"time"
)

// CompetitionLevel classifies how contested a keyword is
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// Trend describes the direction of a keyword's search interest
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// ContentDraft is an immutable draft submitted for analysis
type ContentDraft struct {
	Text          string
	TargetKeyword string
	Title         string
}

// KeywordMetric holds research data for a single keyword
type KeywordMetric struct {
	Keyword      string
	SearchVolume int
	Difficulty   int
	CostPerClick float64
	Competition  CompetitionLevel
	Trend        Trend
}

// Competitor is one ranked competing page for a keyword
type Competitor struct {
	Rank  int
	Title string
	URL   string
}

// ExternalSignal carries the parts of an analysis that came from the
// external research source rather than local text metrics
type ExternalSignal struct {
	Score          float64
	CompetitorURLs []string
}

// ContentAnalysis is the result of analyzing one draft
type ContentAnalysis struct {
	ID                  string
	Keyword             string
	Title               string
	OverallScore        int
	KeywordDensity      float64
	ReadabilityScore    float64
	HasHeadingStructure bool
	WordCount           int
	Recommendations     []string
	External            *ExternalSignal
	AnalyzedAt          time.Time
}
