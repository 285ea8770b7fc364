package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemID(t *testing.T) {
	t.Run("stable across calls", func(t *testing.T) {
		a := ItemID("https://example.com/story", "guid-1", "Title")
		b := ItemID("https://example.com/story", "guid-1", "Title")
		assert.Equal(t, a, b)
		assert.Len(t, a, 12)
	})

	t.Run("link takes precedence", func(t *testing.T) {
		withGUID := ItemID("https://example.com/story", "guid-1", "Title")
		otherGUID := ItemID("https://example.com/story", "guid-2", "Other Title")
		assert.Equal(t, withGUID, otherGUID, "same link hashes identically regardless of guid and title")
	})

	t.Run("guid fallback", func(t *testing.T) {
		a := ItemID("", "guid-1", "Title A")
		b := ItemID("", "guid-1", "Title B")
		assert.Equal(t, a, b)
	})

	t.Run("title as last resort", func(t *testing.T) {
		a := ItemID("", "", "Some Title")
		b := ItemID("", "", "Some Title")
		c := ItemID("", "", "Other Title")
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("different links differ", func(t *testing.T) {
		assert.NotEqual(t,
			ItemID("https://example.com/one", "", ""),
			ItemID("https://example.com/two", "", ""))
	})
}

func TestItem_IsLive(t *testing.T) {
	tests := []struct {
		title string
		live  bool
	}{
		{"LIVE: Election results roll in", true},
		{"Ongoing rescue effort after flood", true},
		{"Developing story in the capital", true},
		{"Storm updates from the coast", true},
		{"Update on yesterday's verdict", true},
		{"Olivers deliver quarterly results", false},
		{"Markets close flat", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.live, Item{Title: tt.title}.IsLive())
		})
	}
}
