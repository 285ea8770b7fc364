package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epaperhq/newsrank/pkg/domain"
)

func TestResultCache(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	items := []domain.Item{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}}

	t.Run("hit within ttl", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, true)
		c.nowFn = func() time.Time { return now }

		c.Put("world", items, "two stories today")
		got, digest, ok := c.Get("world")
		require.True(t, ok)
		assert.Equal(t, items, got)
		assert.Equal(t, "two stories today", digest)
	})

	t.Run("miss on unknown section", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, true)
		_, _, ok := c.Get("world")
		assert.False(t, ok)
	})

	t.Run("expires at ttl", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, true)
		c.nowFn = func() time.Time { return now }
		c.Put("world", items, "")

		c.nowFn = func() time.Time { return now.Add(10 * time.Minute) }
		_, _, ok := c.Get("world")
		assert.False(t, ok)
	})

	t.Run("just before ttl still hits", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, true)
		c.nowFn = func() time.Time { return now }
		c.Put("world", items, "")

		c.nowFn = func() time.Time { return now.Add(10*time.Minute - time.Second) }
		_, _, ok := c.Get("world")
		assert.True(t, ok)
	})

	t.Run("disabled cache never stores", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, false)
		c.Put("world", items, "")
		_, _, ok := c.Get("world")
		assert.False(t, ok)
		assert.Zero(t, c.Stats().Entries)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		c := NewResultCache(10*time.Minute, true)
		c.Put("world", items, "")
		c.Put("business", items, "")

		assert.Equal(t, 2, c.ClearAll())
		_, _, ok := c.Get("world")
		assert.False(t, ok)
		assert.Zero(t, c.ClearAll())
	})

	t.Run("stats", func(t *testing.T) {
		c := NewResultCache(5*time.Minute, true)
		c.Put("world", items, "")

		stats := c.Stats()
		assert.Equal(t, 1, stats.Entries)
		assert.Equal(t, 5*time.Minute, stats.TTL)
		assert.True(t, stats.Enabled)
	})
}
