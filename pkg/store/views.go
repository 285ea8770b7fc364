package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// Count returns how many times an item has been served, zero for unseen items
func (s *Store) Count(ctx context.Context, itemID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT count FROM views WHERE item_id = ?", itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get view count for %s: %w", itemID, err)
	}
	return count, nil
}

// RecordView increments the view count for an item, creating it on first view.
// Retries on SQLite lock errors with exponential backoff.
func (s *Store) RecordView(ctx context.Context, itemID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO views (item_id, count, updated_at) VALUES (?, 1, CURRENT_TIMESTAMP)
			ON CONFLICT(item_id) DO UPDATE SET count = count + 1, updated_at = CURRENT_TIMESTAMP`,
			itemID)
		if err != nil {
			if isLockError(err) {
				return err // retryable
			}
			return &criticalError{err: fmt.Errorf("record view for %s: %w", itemID, err)}
		}
		return nil
	})
}

// PruneViews removes view records not touched since the cutoff
func (s *Store) PruneViews(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := s.db.ExecContext(ctx, "DELETE FROM views WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get pruned rows: %w", err)
	}
	return n, nil
}
