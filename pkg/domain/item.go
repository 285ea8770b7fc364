package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"
)

// Item represents a single normalized news item flowing through the engine
type Item struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Link               string             `json:"link"`
	Source             string             `json:"source"`
	Published          time.Time          `json:"published"`
	Section            string             `json:"section"`
	Sentiment          *Sentiment         `json:"sentiment,omitempty"`
	ImageURL           string             `json:"image_url,omitempty"`
	Body               string             `json:"body,omitempty"`
	CorroborationCount int                `json:"corroboration_count"`
	IsBreaking         bool               `json:"is_breaking"`
	BreakingScore      float64            `json:"breaking_score"`
	Score              float64            `json:"score"`
	Breakdown          map[string]float64 `json:"breakdown,omitempty"`
}

// liveTitleRe matches live blogs and ongoing coverage
var liveTitleRe = regexp.MustCompile(`(?i)\b(live|ongoing|developing|updates?)\b`)

// IsLive reports whether the item reads like a live blog or ongoing
// coverage. Both the staleness filter and the scoring live boost key off
// this single pattern.
func (i Item) IsLive() bool {
	return liveTitleRe.MatchString(i.Title)
}

// Sentiment holds an optional sentiment label with its magnitude
type Sentiment struct {
	Label     string  `json:"label"` // "positive" or "negative"
	Magnitude float64 `json:"magnitude"`
}

// ItemID derives a stable item identifier from link, guid and title.
// The first non-empty value wins so the same story hashes identically
// across repeated fetches.
func ItemID(link, guid, title string) string {
	key := link
	if key == "" {
		key = guid
	}
	if key == "" {
		key = title
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}

// ParsedFeed represents a fetched feed before normalization
type ParsedFeed struct {
	Title string
	Items []ParsedItem
}

// ParsedItem represents a single raw feed entry
type ParsedItem struct {
	Title       string
	Link        string
	GUID        string
	Description string
	Published   time.Time
	ImageURL    string
}
