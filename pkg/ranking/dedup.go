package ranking

import (
	"strings"
	"unicode"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// JaccardClusterer merges near-duplicate items by token-set Jaccard
// similarity over normalized title tokens. The first-seen item becomes the
// cluster representative and accumulates corroboration from merged items.
type JaccardClusterer struct{}

// NewJaccardClusterer creates the default similarity clusterer
func NewJaccardClusterer() *JaccardClusterer {
	return &JaccardClusterer{}
}

// stopwords excluded from title token sets
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "are": true, "was": true, "has": true,
	"have": true, "will": true, "after": true, "over": true, "into": true,
	"amid": true, "says": true, "say": true, "not": true, "its": true,
}

// Cluster merges items whose title similarity meets the threshold. Each
// representative's corroboration count grows by the merged items' counts;
// a representative missing an image inherits one from a merged duplicate.
func (c *JaccardClusterer) Cluster(items []domain.Item, threshold float64) []domain.Item {
	if len(items) <= 1 {
		return items
	}

	reps := make([]domain.Item, 0, len(items))
	tokens := make([]map[string]bool, 0, len(items))

	for _, item := range items {
		if item.CorroborationCount < 1 {
			item.CorroborationCount = 1
		}
		itemTokens := titleTokens(item.Title)

		merged := false
		for i := range reps {
			if jaccard(tokens[i], itemTokens) >= threshold {
				reps[i].CorroborationCount += item.CorroborationCount
				if reps[i].ImageURL == "" && item.ImageURL != "" {
					reps[i].ImageURL = item.ImageURL
				}
				merged = true
				break
			}
		}
		if !merged {
			reps = append(reps, item)
			tokens = append(tokens, itemTokens)
		}
	}

	return reps
}

// titleTokens normalizes a title to a set of significant lowercase tokens
func titleTokens(title string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		set[f] = true
	}
	return set
}

// jaccard computes intersection-over-union for two token sets
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
