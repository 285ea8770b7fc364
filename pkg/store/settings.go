package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

const blockedKeywordsKey = "blocked_keywords"

// Blocked returns the persisted blocklist, empty when never set
func (s *Store) Blocked(ctx context.Context) ([]string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", blockedKeywordsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blocked keywords: %w", err)
	}

	var keywords []string
	if err := json.Unmarshal([]byte(value), &keywords); err != nil {
		return nil, fmt.Errorf("parse blocked keywords: %w", err)
	}
	return keywords, nil
}

// SetBlocked replaces the persisted blocklist
func (s *Store) SetBlocked(ctx context.Context, keywords []string) error {
	if keywords == nil {
		keywords = []string{}
	}
	value, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("marshal blocked keywords: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			blockedKeywordsKey, string(value))
		if err != nil {
			if isLockError(err) {
				return err // retryable
			}
			return &criticalError{err: fmt.Errorf("save blocked keywords: %w", err)}
		}
		return nil
	})
}
