// internal/service/planner/engagement.go

package planner

import (
	"math"

	"contentpulse/internal/domain/content"
)

// EngagementScore reduces raw counters to a single 0-100 score. Click,
// share and comment rates are per-view percentages and contribute 0.3,
// 0.3 and 0.2 of the raw score; conversion rate contributes the final 0.2.
func EngagementScore(metrics content.EngagementMetrics) int {
	var clickRate, shareRate, commentRate float64
	if metrics.Views > 0 {
		views := float64(metrics.Views)
		clickRate = float64(metrics.Clicks) / views * 100
		shareRate = float64(metrics.Shares) / views * 100
		commentRate = float64(metrics.Comments) / views * 100
	}

	raw := clickRate*0.3 + shareRate*0.3 + commentRate*0.2 + metrics.ConversionRate*100*0.2

	return int(math.Min(100, math.Round(raw)))
}
