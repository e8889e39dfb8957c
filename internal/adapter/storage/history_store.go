// internal/adapter/storage/history_store.go

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"contentpulse/internal/domain/content"
)

// HistoryStore implements storage for historical post engagement data
type HistoryStore struct {
	db *pgxpool.Pool
}

// NewHistoryStore creates a new history store
func NewHistoryStore(db *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{
		db: db,
	}
}

// SavePost upserts an enriched historical post
func (s *HistoryStore) SavePost(ctx context.Context, post content.HistoricalPost) error {
	query := `
		INSERT INTO post_history (id, keywords, engagement_score, published_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET
			keywords = $2,
			engagement_score = $3,
			published_at = $4
	`

	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now()
	}

	_, err := s.db.Exec(ctx, query,
		post.ID, post.Keywords, post.EngagementScore, post.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving historical post: %w", err)
	}

	return nil
}

// FindPostsSince returns posts published after the given time
func (s *HistoryStore) FindPostsSince(ctx context.Context, since time.Time) ([]content.HistoricalPost, error) {
	query := `
		SELECT id, keywords, engagement_score, published_at
		FROM post_history
		WHERE published_at >= $1
		ORDER BY published_at DESC
	`

	rows, err := s.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("error querying post history: %w", err)
	}
	defer rows.Close()

	var posts []content.HistoricalPost
	for rows.Next() {
		var post content.HistoricalPost

		if err := rows.Scan(&post.ID, &post.Keywords, &post.EngagementScore, &post.PublishedAt); err != nil {
			return nil, fmt.Errorf("error scanning historical post: %w", err)
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post history: %w", err)
	}

	return posts, nil
}
