// internal/service/planner/ranker.go

package planner

import (
	"sort"
	"strings"
	"time"

	"contentpulse/internal/domain/content"
)

// DefaultWindowMonths is the historical lookback used for ranking
const DefaultWindowMonths = 6

// maxRankedKeywords bounds the ranked list returned by Rank
const maxRankedKeywords = 20

// defaultKeywords seeds the schedule on a cold start, when no historical
// posts qualify for the window.
var defaultKeywords = []string{
	"content marketing",
	"digital strategy",
	"brand awareness",
	"customer engagement",
	"industry trends",
}

// Rank aggregates engagement-weighted keyword frequency over the given
// window and returns the top keywords, highest weight first. Ties keep
// first-seen order. An empty result falls back to the default keyword set.
func Rank(posts []content.HistoricalPost, windowMonths int) []content.RankedKeyword {
	ranked := RankAll(posts, windowMonths)
	if len(ranked) > maxRankedKeywords {
		ranked = ranked[:maxRankedKeywords]
	}
	return ranked
}

// RankAll is the unbounded variant of Rank
func RankAll(posts []content.HistoricalPost, windowMonths int) []content.RankedKeyword {
	if windowMonths <= 0 {
		windowMonths = DefaultWindowMonths
	}
	cutoff := time.Now().AddDate(0, -windowMonths, 0)

	// Ordered accumulation: the slice preserves first-seen order so the
	// stable sort below breaks weight ties deterministically.
	weights := make(map[string]float64)
	var order []string

	for _, post := range posts {
		if post.PublishedAt.Before(cutoff) {
			continue
		}

		weight := post.EngagementScore
		if weight <= 0 {
			weight = 1
		}

		for _, keyword := range post.Keywords {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			if _, seen := weights[keyword]; !seen {
				order = append(order, keyword)
			}
			weights[keyword] += weight
		}
	}

	if len(order) == 0 {
		return defaultRankedKeywords()
	}

	ranked := make([]content.RankedKeyword, 0, len(order))
	for _, keyword := range order {
		ranked = append(ranked, content.RankedKeyword{
			Keyword: keyword,
			Weight:  weights[keyword],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	return ranked
}

func defaultRankedKeywords() []content.RankedKeyword {
	ranked := make([]content.RankedKeyword, 0, len(defaultKeywords))
	for _, keyword := range defaultKeywords {
		ranked = append(ranked, content.RankedKeyword{Keyword: keyword, Weight: 1})
	}
	return ranked
}
