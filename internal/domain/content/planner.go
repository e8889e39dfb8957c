// internal/domain/content/planner.go

package content

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested item does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a status change would move an
	// item backward through its lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Planner defines the interface for publishing calendar management
type Planner interface {
	// PlanMonth generates and persists the publishing calendar for a month
	PlanMonth(ctx context.Context, month time.Month, year int) ([]Item, error)

	// GetItem returns a content item by ID
	GetItem(ctx context.Context, id string) (*Item, error)

	// ListItems returns content items matching the given filter
	ListItems(ctx context.Context, filter Filter) ([]Item, error)

	// AdvanceStatus moves an item forward through its lifecycle
	AdvanceStatus(ctx context.Context, itemID string, status Status) error

	// RecordEngagement reduces raw counters to an engagement score and
	// stores the enriched post for the next planning cycle
	RecordEngagement(ctx context.Context, post HistoricalPost, metrics EngagementMetrics) (float64, error)

	// RegisterPlanHandler registers a callback for newly generated calendars
	RegisterPlanHandler(handler func([]Item) error) error
}
