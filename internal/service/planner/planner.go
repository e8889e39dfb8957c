// internal/service/planner/planner.go

package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"contentpulse/internal/domain/content"
)

// ContentStore defines the storage interface for content items
type ContentStore interface {
	// SaveItems persists a batch of content items
	SaveItems(ctx context.Context, items []content.Item) error

	// SaveItem upserts a single content item
	SaveItem(ctx context.Context, item content.Item) error

	// GetItem retrieves a content item by ID
	GetItem(ctx context.Context, id string) (*content.Item, error)

	// FindItems finds content items matching the filter
	FindItems(ctx context.Context, filter content.Filter) ([]content.Item, error)
}

// HistoryStore defines storage for historical post engagement data
type HistoryStore interface {
	// SavePost upserts an enriched historical post
	SavePost(ctx context.Context, post content.HistoricalPost) error

	// FindPostsSince returns posts published after the given time
	FindPostsSince(ctx context.Context, since time.Time) ([]content.HistoricalPost, error)
}

// CalendarPlannerConfig contains configuration for the calendar planner
type CalendarPlannerConfig struct {
	EventsTopic   string
	WindowMonths  int
	CheckInterval time.Duration
}

// CalendarPlanner implements the content.Planner interface. A background
// ticker plans the upcoming month once no calendar exists for it yet;
// planning itself is a single synchronous rank-and-build pass.
type CalendarPlanner struct {
	contentStore ContentStore
	historyStore HistoryStore
	eventBus     *nats.Conn
	logger       *slog.Logger
	config       CalendarPlannerConfig
	planHandlers []func([]content.Item) error
	mu           sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewCalendarPlanner creates a new calendar planner
func NewCalendarPlanner(
	contentStore ContentStore,
	historyStore HistoryStore,
	eventBus *nats.Conn,
	logger *slog.Logger,
	config CalendarPlannerConfig,
) *CalendarPlanner {
	if config.WindowMonths <= 0 {
		config.WindowMonths = DefaultWindowMonths
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &CalendarPlanner{
		contentStore: contentStore,
		historyStore: historyStore,
		eventBus:     eventBus,
		logger:       logger,
		config:       config,
		planHandlers: []func([]content.Item) error{},
		ctx:          ctx,
		cancel:       cancel,
	}
}

// PlanMonth generates and persists the publishing calendar for a month
func (p *CalendarPlanner) PlanMonth(ctx context.Context, month time.Month, year int) ([]content.Item, error) {
	since := time.Now().AddDate(0, -p.config.WindowMonths, 0)

	posts, err := p.historyStore.FindPostsSince(ctx, since)
	if err != nil {
		// Missing history is a cold start, not a planning failure; the
		// ranker falls back to its default keyword set.
		p.logger.Warn("failed to load post history, planning from defaults", "error", err)
		posts = nil
	}

	ranked := Rank(posts, p.config.WindowMonths)
	items := BuildSchedule(ranked, month, year)

	if err := p.contentStore.SaveItems(ctx, items); err != nil {
		return nil, fmt.Errorf("error saving calendar items: %w", err)
	}

	p.logger.Info("publishing calendar generated",
		"month", month.String(), "year", year,
		"keywords", len(ranked), "items", len(items),
	)

	if err := p.publishCalendarEvent(month, year, len(items)); err != nil {
		p.logger.Warn("error publishing calendar event", "error", err)
	}

	p.callPlanHandlers(items)

	return items, nil
}

// GetItem returns a content item by ID
func (p *CalendarPlanner) GetItem(ctx context.Context, id string) (*content.Item, error) {
	return p.contentStore.GetItem(ctx, id)
}

// ListItems returns content items matching the given filter
func (p *CalendarPlanner) ListItems(ctx context.Context, filter content.Filter) ([]content.Item, error) {
	return p.contentStore.FindItems(ctx, filter)
}

// AdvanceStatus moves an item forward through its lifecycle. Backward and
// repeated transitions are rejected with content.ErrInvalidTransition.
func (p *CalendarPlanner) AdvanceStatus(ctx context.Context, itemID string, status content.Status) error {
	item, err := p.contentStore.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("error getting item: %w", err)
	}

	if !item.Status.CanAdvanceTo(status) {
		return fmt.Errorf("%w: %s -> %s", content.ErrInvalidTransition, item.Status, status)
	}

	prev := item.Status
	item.Status = status
	item.UpdatedAt = time.Now()

	if err := p.contentStore.SaveItem(ctx, *item); err != nil {
		return fmt.Errorf("error saving item with updated status: %w", err)
	}

	if err := p.publishStatusEvent(*item, prev); err != nil {
		p.logger.Warn("error publishing status event", "item_id", itemID, "error", err)
	}

	return nil
}

// RecordEngagement reduces raw counters to an engagement score and stores
// the enriched post so the next ranking cycle can consume it.
func (p *CalendarPlanner) RecordEngagement(ctx context.Context, post content.HistoricalPost, metrics content.EngagementMetrics) (float64, error) {
	score := float64(EngagementScore(metrics))
	post.EngagementScore = score

	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now()
	}

	if err := p.historyStore.SavePost(ctx, post); err != nil {
		return 0, fmt.Errorf("error saving engagement data: %w", err)
	}

	if err := p.publishEngagementEvent(post); err != nil {
		p.logger.Warn("error publishing engagement event", "post_id", post.ID, "error", err)
	}

	return score, nil
}

// RegisterPlanHandler registers a callback for newly generated calendars
func (p *CalendarPlanner) RegisterPlanHandler(handler func([]content.Item) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.planHandlers = append(p.planHandlers, handler)
	return nil
}

// Start begins the background planning cycle
func (p *CalendarPlanner) Start(ctx context.Context) error {
	if p.config.CheckInterval <= 0 {
		return nil
	}

	p.wg.Add(1)
	go p.planUpcomingMonths(ctx)

	return nil
}

// Stop gracefully stops the planner
func (p *CalendarPlanner) Stop(ctx context.Context) error {
	p.cancel()

	c := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(c)
	}()

	select {
	case <-c:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// planUpcomingMonths checks periodically whether the next month has a
// calendar yet and plans one when it doesn't.
func (p *CalendarPlanner) planUpcomingMonths(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.ensureNextMonthPlanned(ctx)
		}
	}
}

// ensureNextMonthPlanned plans next month's calendar if none exists
func (p *CalendarPlanner) ensureNextMonthPlanned(ctx context.Context) {
	next := time.Now().AddDate(0, 1, 0)
	month, year := next.Month(), next.Year()

	existing, err := p.contentStore.FindItems(ctx, content.Filter{
		Month: month,
		Year:  year,
		Limit: 1,
	})
	if err != nil {
		p.logger.Warn("error checking for existing calendar", "error", err)
		return
	}

	if len(existing) > 0 {
		return
	}

	if _, err := p.PlanMonth(ctx, month, year); err != nil {
		p.logger.Error("error planning upcoming month",
			"month", month.String(), "year", year, "error", err)
	}
}

// publishCalendarEvent publishes a calendar generated event
func (p *CalendarPlanner) publishCalendarEvent(month time.Month, year, itemCount int) error {
	if p.eventBus == nil {
		return nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"month": int(month),
		"year":  year,
		"items": itemCount,
		"time":  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling calendar event: %w", err)
	}

	topic := fmt.Sprintf("%s.generated", p.config.EventsTopic)
	return p.eventBus.Publish(topic, data)
}

// publishStatusEvent publishes a status change event
func (p *CalendarPlanner) publishStatusEvent(item content.Item, prev content.Status) error {
	if p.eventBus == nil {
		return nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"id":          item.ID,
		"title":       item.Title,
		"platform":    item.Platform,
		"prev_status": prev,
		"new_status":  item.Status,
		"time":        time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling status event: %w", err)
	}

	topic := fmt.Sprintf("%s.item.status", p.config.EventsTopic)
	return p.eventBus.Publish(topic, data)
}

// publishEngagementEvent publishes an engagement recorded event
func (p *CalendarPlanner) publishEngagementEvent(post content.HistoricalPost) error {
	if p.eventBus == nil {
		return nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"post_id": post.ID,
		"score":   post.EngagementScore,
		"time":    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling engagement event: %w", err)
	}

	topic := fmt.Sprintf("%s.engagement", p.config.EventsTopic)
	return p.eventBus.Publish(topic, data)
}

// callPlanHandlers calls all registered plan handlers
func (p *CalendarPlanner) callPlanHandlers(items []content.Item) {
	p.mu.RLock()
	handlers := make([]func([]content.Item) error, len(p.planHandlers))
	copy(handlers, p.planHandlers)
	p.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(items); err != nil {
			p.logger.Warn("error in plan handler", "error", err)
		}
	}
}
