package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epaperhq/newsrank/pkg/domain"
)

func TestKeywordBreaking_Check(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	detector := NewKeywordBreaking(0.5)

	check := func(title string, age time.Duration) BreakingCheck {
		return detector.Check(domain.Item{Title: title, Published: now.Add(-age)}, now)
	}

	t.Run("plain title is not breaking", func(t *testing.T) {
		res := check("markets close flat", 10*time.Minute)
		assert.False(t, res.IsBreaking)
		assert.Zero(t, res.Score)
		assert.InDelta(t, 1.0, res.Multiplier, 0.001)
	})

	t.Run("marker plus exclamation crosses the threshold", func(t *testing.T) {
		res := check("BREAKING: dam collapses!", 10*time.Minute)
		assert.True(t, res.IsBreaking)
		assert.InDelta(t, 0.5, res.Score, 0.001)
		assert.InDelta(t, 1.5, res.Multiplier, 0.001)
	})

	t.Run("markers are case insensitive", func(t *testing.T) {
		assert.InDelta(t, 0.4, check("just in: verdict reached", 10*time.Minute).Score, 0.001)
		assert.InDelta(t, 0.4, check("URGENT evacuation ordered", 10*time.Minute).Score, 0.001)
	})

	t.Run("stale breaking halves", func(t *testing.T) {
		fresh := check("BREAKING: dam collapses!", 1*time.Hour)
		stale := check("BREAKING: dam collapses!", 3*time.Hour)
		assert.InDelta(t, fresh.Score/2, stale.Score, 0.001)
		assert.False(t, stale.IsBreaking)
	})

	t.Run("score caps at one", func(t *testing.T) {
		res := check("BREAKING ALERT URGENT FLASH!!!", 10*time.Minute)
		assert.InDelta(t, 1.0, res.Score, 0.001)
		assert.InDelta(t, 2.0, res.Multiplier, 0.001)
	})

	t.Run("zero threshold falls back to default", func(t *testing.T) {
		d := NewKeywordBreaking(0)
		res := d.Check(domain.Item{Title: "BREAKING: dam collapses!", Published: now}, now)
		assert.True(t, res.IsBreaking)
	})
}
