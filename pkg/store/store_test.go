package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestStore_ViewCounts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	t.Run("unseen item has zero views", func(t *testing.T) {
		count, err := s.Count(ctx, "never-seen")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("record increments count", func(t *testing.T) {
		require.NoError(t, s.RecordView(ctx, "abc123def456"))
		count, err := s.Count(ctx, "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		require.NoError(t, s.RecordView(ctx, "abc123def456"))
		require.NoError(t, s.RecordView(ctx, "abc123def456"))
		count, err = s.Count(ctx, "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("counts are independent per item", func(t *testing.T) {
		require.NoError(t, s.RecordView(ctx, "other-item"))
		count, err := s.Count(ctx, "other-item")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = s.Count(ctx, "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("prune removes stale records only", func(t *testing.T) {
		// backdate one record past the cutoff
		_, err := s.db.ExecContext(ctx, "UPDATE views SET updated_at = ? WHERE item_id = ?",
			time.Now().Add(-48*time.Hour), "other-item")
		require.NoError(t, err)

		pruned, err := s.PruneViews(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pruned)

		count, err := s.Count(ctx, "other-item")
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		count, err = s.Count(ctx, "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestStore_Blocklist(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	t.Run("empty before first set", func(t *testing.T) {
		keywords, err := s.Blocked(ctx)
		require.NoError(t, err)
		assert.Empty(t, keywords)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.SetBlocked(ctx, []string{"casino", "lottery"}))
		keywords, err := s.Blocked(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"casino", "lottery"}, keywords)
	})

	t.Run("set replaces previous list", func(t *testing.T) {
		require.NoError(t, s.SetBlocked(ctx, []string{"spam"}))
		keywords, err := s.Blocked(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"spam"}, keywords)
	})

	t.Run("nil clears the list", func(t *testing.T) {
		require.NoError(t, s.SetBlocked(ctx, nil))
		keywords, err := s.Blocked(ctx)
		require.NoError(t, err)
		assert.Empty(t, keywords)
	})
}
