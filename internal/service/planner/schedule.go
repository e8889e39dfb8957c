// internal/service/planner/schedule.go

package planner

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"contentpulse/internal/domain/content"
)

// contentTypes frame the ideas synthesized from ranked keywords; the
// rotation keeps adjacent keywords from reading identically.
var contentTypes = []string{
	"How-to Guide",
	"Case Study",
	"Industry Insights",
	"Best Practices",
	"Trend Analysis",
}

// schedulePlatforms is the fixed default platform set for generated items
var schedulePlatforms = []content.Platform{
	content.PlatformBlog,
	content.PlatformLinkedIn,
}

// BuildSchedule turns a ranked keyword list into a dated, platform-tagged
// content item list for one calendar month. One item is produced per
// (idea, platform) pair; publish dates cycle through the month's optimal
// days (Tuesday through Thursday). Every item starts in the scheduled state.
func BuildSchedule(ranked []content.RankedKeyword, month time.Month, year int) []content.Item {
	optimalDays := optimalPublishDays(month, year)
	now := time.Now()

	items := make([]content.Item, 0, len(ranked)*len(schedulePlatforms))
	for i, keyword := range ranked {
		contentType := contentTypes[i%len(contentTypes)]
		title := fmt.Sprintf("%s: %s", contentType, titleCase(keyword.Keyword))
		description := fmt.Sprintf("A %s focused on %q, planned from historical engagement data.",
			strings.ToLower(contentType), keyword.Keyword)

		for _, platform := range schedulePlatforms {
			publishDate := optimalDays[len(items)%len(optimalDays)]

			items = append(items, content.Item{
				ID:          uuid.New().String(),
				Title:       title,
				Description: description,
				Keywords:    []string{keyword.Keyword},
				PublishDate: publishDate,
				Platform:    platform,
				Status:      content.StatusScheduled,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	return items
}

// optimalPublishDays returns the Tuesdays, Wednesdays and Thursdays of the
// target month, the empirically favorable publishing days.
func optimalPublishDays(month time.Month, year int) []time.Time {
	var days []time.Time

	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == month {
		switch day.Weekday() {
		case time.Tuesday, time.Wednesday, time.Thursday:
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	return days
}

// titleCase capitalizes the first rune of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = strings.ToUpper(string(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
