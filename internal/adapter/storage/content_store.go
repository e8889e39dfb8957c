// internal/adapter/storage/content_store.go

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"contentpulse/internal/domain/content"
)

// ContentStore implements storage for calendar content items
type ContentStore struct {
	db *pgxpool.Pool
}

// NewContentStore creates a new content store
func NewContentStore(db *pgxpool.Pool) *ContentStore {
	return &ContentStore{
		db: db,
	}
}

const saveItemQuery = `
	INSERT INTO content_items (
		id, title, description, keywords, publish_date,
		platform, status, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE
	SET
		title = $2,
		description = $3,
		keywords = $4,
		publish_date = $5,
		platform = $6,
		status = $7,
		updated_at = $9
`

// SaveItems persists a batch of content items
func (s *ContentStore) SaveItems(ctx context.Context, items []content.Item) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(saveItemQuery,
			item.ID, item.Title, item.Description, item.Keywords, item.PublishDate,
			string(item.Platform), string(item.Status), item.CreatedAt, item.UpdatedAt,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error saving content items: %w", err)
		}
	}

	return nil
}

// SaveItem upserts a single content item
func (s *ContentStore) SaveItem(ctx context.Context, item content.Item) error {
	_, err := s.db.Exec(ctx, saveItemQuery,
		item.ID, item.Title, item.Description, item.Keywords, item.PublishDate,
		string(item.Platform), string(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving content item: %w", err)
	}

	return nil
}

// GetItem retrieves a content item by ID
func (s *ContentStore) GetItem(ctx context.Context, id string) (*content.Item, error) {
	query := `
		SELECT id, title, description, keywords, publish_date,
			platform, status, created_at, updated_at
		FROM content_items
		WHERE id = $1
	`

	var item content.Item
	var platform, status string

	err := s.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.Keywords, &item.PublishDate,
		&platform, &status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("error querying content item: %w", err)
	}

	item.Platform = content.Platform(platform)
	item.Status = content.Status(status)

	return &item, nil
}

// FindItems finds content items matching the filter
func (s *ContentStore) FindItems(ctx context.Context, filter content.Filter) ([]content.Item, error) {
	query := `
		SELECT id, title, description, keywords, publish_date,
			platform, status, created_at, updated_at
		FROM content_items
		WHERE 1=1
	`

	var args []interface{}
	argIndex := 1

	if filter.Year > 0 && filter.Month > 0 {
		start := time.Date(filter.Year, filter.Month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		query += fmt.Sprintf(" AND publish_date >= $%d AND publish_date < $%d", argIndex, argIndex+1)
		args = append(args, start, end)
		argIndex += 2
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}

		query += fmt.Sprintf(" AND status = ANY($%d)", argIndex)
		args = append(args, statuses)
		argIndex++
	}

	if len(filter.Platforms) > 0 {
		platforms := make([]string, 0, len(filter.Platforms))
		for _, platform := range filter.Platforms {
			platforms = append(platforms, string(platform))
		}

		query += fmt.Sprintf(" AND platform = ANY($%d)", argIndex)
		args = append(args, platforms)
		argIndex++
	}

	query += " ORDER BY publish_date ASC, platform ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var items []content.Item
	for rows.Next() {
		var item content.Item
		var platform, status string

		err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Keywords, &item.PublishDate,
			&platform, &status, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning content item: %w", err)
		}

		item.Platform = content.Platform(platform)
		item.Status = content.Status(status)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content items: %w", err)
	}

	return items, nil
}
