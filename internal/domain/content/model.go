package content

import (
	"time"
)

// Platform identifies where a content item is published
type Platform string

const (
	PlatformBlog      Platform = "blog"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// Status represents the current stage in a content item's lifecycle
type Status string

const (
	StatusScheduled    Status = "scheduled"
	StatusDraft        Status = "draft"
	StatusSEOOptimized Status = "seo_optimized"
	StatusPublished    Status = "published"
)

// statusOrder defines the forward progression of the lifecycle
var statusOrder = map[Status]int{
	StatusScheduled:    0,
	StatusDraft:        1,
	StatusSEOOptimized: 2,
	StatusPublished:    3,
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
// Statuses only ever move forward; backward or repeated transitions are rejected.
func (s Status) CanAdvanceTo(next Status) bool {
	cur, ok := statusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := statusOrder[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// Item represents one scheduled unit of content for one platform on one date
type Item struct {
	ID          string
	Title       string
	Description string
	Keywords    []string
	PublishDate time.Time
	Platform    Platform
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HistoricalPost is a published post supplied by the caller for ranking.
// The engine treats it as read-only.
type HistoricalPost struct {
	ID              string
	Keywords        []string
	EngagementScore float64
	PublishedAt     time.Time
}

// RankedKeyword is a keyword ordered by cumulative historical engagement weight
type RankedKeyword struct {
	Keyword string
	Weight  float64
}

// EngagementMetrics holds raw post-publication counters
type EngagementMetrics struct {
	Views          int
	Clicks         int
	Shares         int
	Comments       int
	ConversionRate float64
}

// Filter defines criteria for filtering content items
type Filter struct {
	Month     time.Month
	Year      int
	Statuses  []Status
	Platforms []Platform
	Limit     int
	Offset    int
}
