// internal/service/analysis/score.go

package analysis

import (
	"math"
)

// OverallScore combines sub-scores into a 0-100 quality score. Each of the
// four buckets contributes up to 25 points: keyword density and heading
// structure pass/fail (25 or 10), readability proportional, and a
// recommendation penalty of 5 points per triggered recommendation floored
// at 0.
func OverallScore(density, readability float64, hasHeadings bool, recommendationCount int) int {
	var score float64

	if density > 0.5 && density < 3 {
		score += 25
	} else {
		score += 10
	}

	score += readability / 100 * 25

	if hasHeadings {
		score += 25
	} else {
		score += 10
	}

	score += math.Max(0, 25-float64(recommendationCount)*5)

	return int(math.Round(score))
}
