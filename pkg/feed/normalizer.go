package feed

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// SentimentAnalyzer labels finance items with sentiment
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, title, description string) (*domain.Sentiment, error)
}

// Normalizer converts raw feed entries into engine items: stable id, cleaned
// description, section classification, image extraction, and sentiment for
// finance items.
type Normalizer struct {
	sanitizer *bluemonday.Policy
	sentiment SentimentAnalyzer // optional
}

// section reclassification rules, checked in order against title+description
var sectionRules = []struct {
	section string
	pattern *regexp.Regexp
}{
	{"business", regexp.MustCompile(`(?i)\b(sensex|nifty|stocks?|shares?|ipo|rbi|gdp|inflation|rupee|earnings)\b`)},
	{"sports", regexp.MustCompile(`(?i)\b(cricket|football|tennis|olympics|world cup|ipl|match|tournament)\b`)},
}

// whitespaceRe collapses runs of whitespace left over after tag stripping
var whitespaceRe = regexp.MustCompile(`\s+`)

// NewNormalizer creates a normalizer; the sentiment analyzer may be nil
func NewNormalizer(sentiment SentimentAnalyzer) *Normalizer {
	return &Normalizer{
		sanitizer: bluemonday.StrictPolicy(),
		sentiment: sentiment,
	}
}

// Normalize converts one feed's raw entries into items for the given section
func (n *Normalizer) Normalize(ctx context.Context, feedTitle string, items []domain.ParsedItem, section string) []domain.Item {
	out := make([]domain.Item, 0, len(items))

	for _, raw := range items {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}

		description := n.cleanDescription(raw.Description)

		imageURL := raw.ImageURL
		if imageURL == "" {
			imageURL = firstImage(raw.Description)
		}

		published := raw.Published
		if published.IsZero() {
			// feeds without dates still deserve a chance at freshness
			published = time.Now()
		}

		item := domain.Item{
			ID:                 domain.ItemID(raw.Link, raw.GUID, title),
			Title:              title,
			Description:        description,
			Link:               raw.Link,
			Source:             feedTitle,
			Published:          published,
			Section:            classifySection(section, title+" "+description),
			ImageURL:           imageURL,
			CorroborationCount: 1,
		}

		// sentiment applies to finance items only
		if item.Section == "business" && n.sentiment != nil {
			s, err := n.sentiment.Analyze(ctx, item.Title, item.Description)
			if err != nil {
				lgr.Printf("[WARN] sentiment analysis failed for %q: %v", item.Title, err)
			} else {
				item.Sentiment = s
			}
		}

		out = append(out, item)
	}

	return out
}

// cleanDescription strips markup and collapses whitespace
func (n *Normalizer) cleanDescription(raw string) string {
	clean := n.sanitizer.Sanitize(raw)
	clean = html.UnescapeString(clean)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
}

// classifySection reclassifies an item when its text clearly belongs to a
// different topic than the feed it arrived on
func classifySection(requested, text string) string {
	for _, rule := range sectionRules {
		if rule.section == requested {
			continue
		}
		if rule.pattern.MatchString(text) {
			return rule.section
		}
	}
	return requested
}

// firstImage returns the src of the first img tag in an HTML fragment
func firstImage(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var find func(*html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" && attr.Val != "" {
					return attr.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if src := find(c); src != "" {
				return src
			}
		}
		return ""
	}
	return find(doc)
}
