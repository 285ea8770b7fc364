package scoring

import (
	"regexp"
	"strings"
	"time"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// breakingPattern matches explicit breaking-news markers in titles
var breakingPattern = regexp.MustCompile(`(?i)\b(breaking|just in|alert|urgent|flash)\b`)

// KeywordBreaking detects breaking news from title markers and recency.
// The heuristic is intentionally cheap: marker hits and exclamation density
// build the raw score, stale items get it halved.
type KeywordBreaking struct {
	threshold float64 // breaking score above which items are flagged
}

// NewKeywordBreaking creates a detector with the given flagging threshold
func NewKeywordBreaking(threshold float64) *KeywordBreaking {
	if threshold <= 0 {
		threshold = 0.5
	}
	return &KeywordBreaking{threshold: threshold}
}

// Check evaluates one item. The multiplier is always >= 1 and capped at 2.
func (d *KeywordBreaking) Check(item domain.Item, now time.Time) BreakingCheck {
	score := 0.4 * float64(len(breakingPattern.FindAllString(item.Title, -1)))
	score += 0.1 * float64(strings.Count(item.Title, "!"))

	// breaking news goes stale fast
	if now.Sub(item.Published) > 2*time.Hour {
		score /= 2
	}

	if score > 1.0 {
		score = 1.0
	}

	return BreakingCheck{
		IsBreaking: score >= d.threshold,
		Score:      score,
		Multiplier: 1 + score,
	}
}
