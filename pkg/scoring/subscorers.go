package scoring

import (
	"regexp"
	"strings"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// The sub-scorers below are deterministic lexical heuristics. Each returns a
// multiplier >= 0 with 1.0 as the neutral value when the factor does not
// apply, so they compose safely into the multiplicative formula.

// DefaultSubScorers returns the standard six sub-scorers in their canonical
// order: impact, proximity, novelty, currency, human-interest, visual.
func DefaultSubScorers() []SubScorer {
	return []SubScorer{
		&lexicalScorer{name: "impact", perHit: 0.1, maxHits: 3,
			words: []string{"crisis", "war", "election", "death", "record", "historic", "collapse", "landmark"}},
		&lexicalScorer{name: "proximity", perHit: 0.05, maxHits: 3,
			words: []string{"local", "city", "state", "district", "neighborhood", "municipal"}},
		&lexicalScorer{name: "novelty", perHit: 0.1, maxHits: 2,
			words: []string{"first", "unprecedented", "launch", "debut", "discover", "reveal"}},
		&currencyScorer{},
		&lexicalScorer{name: "human_interest", perHit: 0.1, maxHits: 2,
			words: []string{"family", "child", "community", "rescue", "survivor", "volunteer"}},
		&visualScorer{},
	}
}

// lexicalScorer boosts by a fixed step per keyword hit, capped
type lexicalScorer struct {
	name    string
	words   []string
	perHit  float64
	maxHits int
}

func (s *lexicalScorer) Name() string { return s.name }

func (s *lexicalScorer) Multiplier(item domain.Item) float64 {
	text := strings.ToLower(item.Title + " " + item.Description)
	hits := 0
	for _, w := range s.words {
		if strings.Contains(text, w) {
			hits++
		}
	}
	if hits > s.maxHits {
		hits = s.maxHits
	}
	return 1 + float64(hits)*s.perHit
}

// currencyScorer boosts items anchored to the present: explicit today/this
// week markers, or numeric density typical of data-driven reporting
type currencyScorer struct{}

var currencyPattern = regexp.MustCompile(`(?i)\b(today|tonight|this (week|morning|evening))\b`)
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?%?`)

func (s *currencyScorer) Name() string { return "currency" }

func (s *currencyScorer) Multiplier(item domain.Item) float64 {
	mult := 1.0
	if currencyPattern.MatchString(item.Title) {
		mult += 0.1
	}
	if len(numberPattern.FindAllString(item.Title+" "+item.Description, 3)) >= 3 {
		mult += 0.05
	}
	return mult
}

// visualScorer rewards items with an image; missing images stay neutral
type visualScorer struct{}

func (s *visualScorer) Name() string { return "visual" }

func (s *visualScorer) Multiplier(item domain.Item) float64 {
	if item.ImageURL != "" {
		return 1.1
	}
	return 1.0
}
