// internal/service/analysis/recommend.go

package analysis

import (
	"fmt"
)

// minWordCount is the length below which content is considered thin
const minWordCount = 300

// Recommend evaluates the local rule list against measured metrics and
// returns the triggered recommendations in rule order. The list is not
// truncated here; the orchestrator caps the final merged list.
func Recommend(density, readability float64, hasHeadings bool, wordCount int) []string {
	var recommendations []string

	if density < 0.5 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Increase keyword density (currently %.2f%%) by using the target keyword more often", density))
	}

	// Unreachable through KeywordDensity's cap, kept in case the ceiling
	// is ever lifted or a caller supplies a raw measurement.
	if density > 3 {
		recommendations = append(recommendations,
			"Reduce keyword stuffing, the keyword appears too frequently")
	}

	if readability < 60 {
		recommendations = append(recommendations,
			"Improve readability by using shorter sentences and simpler words")
	}

	if !hasHeadings {
		recommendations = append(recommendations,
			"Add proper heading structure with H2 subheadings")
	}

	if wordCount < minWordCount {
		recommendations = append(recommendations, fmt.Sprintf(
			"Expand content (currently %d words) to at least %d words", wordCount, minWordCount))
	}

	return recommendations
}
