// internal/service/analysis/score_test.go

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contentpulse/internal/service/analysis"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name        string
		density     float64
		readability float64
		hasHeadings bool
		recCount    int
		want        int
	}{
		{name: "perfect", density: 1.5, readability: 100, hasHeadings: true, recCount: 0, want: 100},
		{name: "everything failing", density: 0, readability: 0, hasHeadings: false, recCount: 5, want: 20},
		{name: "density out of band", density: 0.2, readability: 100, hasHeadings: true, recCount: 0, want: 85},
		{name: "no headings", density: 1.5, readability: 100, hasHeadings: false, recCount: 0, want: 85},
		{name: "readability proportional", density: 1.5, readability: 60, hasHeadings: true, recCount: 0, want: 90},
		{name: "each recommendation costs five", density: 1.5, readability: 100, hasHeadings: true, recCount: 2, want: 90},
		{name: "penalty floors at zero", density: 1.5, readability: 100, hasHeadings: true, recCount: 8, want: 75},
		{name: "density boundary exclusive low", density: 0.5, readability: 100, hasHeadings: true, recCount: 0, want: 85},
		{name: "density boundary exclusive high", density: 3, readability: 100, hasHeadings: true, recCount: 0, want: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, analysis.OverallScore(tt.density, tt.readability, tt.hasHeadings, tt.recCount))
		})
	}
}

func TestOverallScoreAlwaysInRange(t *testing.T) {
	densities := []float64{0, 0.5, 1.5, 3}
	readabilities := []float64{0, 50, 100}
	headings := []bool{true, false}
	recCounts := []int{0, 1, 5, 10}

	for _, d := range densities {
		for _, r := range readabilities {
			for _, h := range headings {
				for _, n := range recCounts {
					score := analysis.OverallScore(d, r, h, n)
					require.GreaterOrEqual(t, score, 0)
					require.LessOrEqual(t, score, 100)
				}
			}
		}
	}
}
