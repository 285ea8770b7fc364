package scoring

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
)

//go:generate moq -out mocks/source_weigher.go -pkg mocks -skip-ensure -fmt goimports . SourceWeigher
//go:generate moq -out mocks/breaking_detector.go -pkg mocks -skip-ensure -fmt goimports . BreakingDetector

// SourceWeigher yields authority and category relevance for a (source, section) pair
type SourceWeigher interface {
	Weight(source, section string) (authority, categoryWeight float64)
}

// BreakingDetector checks whether an item looks like breaking news
type BreakingDetector interface {
	Check(item domain.Item, now time.Time) BreakingCheck
}

// BreakingCheck is the result of a breaking-news detection
type BreakingCheck struct {
	IsBreaking bool
	Score      float64
	Multiplier float64 // always >= 1
}

// SubScorer computes one of the per-topic relevance multipliers
type SubScorer interface {
	Name() string
	Multiplier(item domain.Item) float64
}

// Input carries everything a single scoring call needs. The calculator never
// mutates it; annotation of the item is a separate explicit step.
type Input struct {
	Item      domain.Item
	Section   string
	Tags      []string
	Buzz      *config.BuzzConfig
	ViewCount int
	Now       time.Time
}

// Result holds the computed score with its observability data
type Result struct {
	Score     float64
	Breakdown map[string]float64
	Breaking  BreakingCheck
}

// Calculator computes the relevance score for a single item. It is a pure
// function of its input and the settings snapshot taken at construction.
type Calculator struct {
	cfg        config.ScoringConfig
	sources    SourceWeigher
	breaking   BreakingDetector
	subScorers []SubScorer
	keywordRe  *regexp.Regexp
}

// NewCalculator creates a calculator from a settings snapshot and collaborators
func NewCalculator(cfg config.ScoringConfig, sources SourceWeigher, breaking BreakingDetector, subScorers []SubScorer) *Calculator {
	return &Calculator{
		cfg:        cfg,
		sources:    sources,
		breaking:   breaking,
		subScorers: subScorers,
		keywordRe:  compileKeywordPattern(cfg.Keywords),
	}
}

// Score computes the relevance score for one item. The breakdown map is
// populated only when debug mode is enabled in settings.
func (c *Calculator) Score(in Input) Result {
	bd := map[string]float64{}
	record := func(name string, v float64) {
		if c.cfg.Debug {
			bd[name] = v
		}
	}

	ageHours := in.Now.Sub(in.Item.Published).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	freshness := c.freshness(ageHours)
	record("freshness", freshness)

	authority, categoryWeight := c.sources.Weight(in.Item.Source, in.Section)
	sourceScore := authority * categoryWeight
	record("source", sourceScore)

	keywordBoost := 0.0
	text := in.Item.Title + " " + in.Item.Description
	if c.keywordRe != nil && c.keywordRe.MatchString(text) {
		keywordBoost = c.cfg.KeywordBoost
	}
	record("keywords", keywordBoost)

	sentimentBoost := c.sentimentBoost(in.Item.Sentiment)
	record("sentiment", sentimentBoost)

	liveMult := 1.0
	if in.Item.IsLive() {
		liveMult = 1.5
	}
	record("live", liveMult)

	check := c.breaking.Check(in.Item, in.Now)
	if check.Multiplier < 1 {
		check.Multiplier = 1
	}
	record("breaking", check.Multiplier)

	priority := 1.0
	if p, ok := c.cfg.SectionPriority[in.Section]; ok && p > 0 {
		priority = p
	}
	record("priority", priority)

	seenPenalty := c.seenPenalty(in.ViewCount)
	record("seen", seenPenalty)

	buzzBoost, buzzHidden := c.buzz(in.Buzz, text)
	record("buzz", buzzBoost)

	var total float64
	if c.cfg.UseSmartFormula() {
		core := freshness + keywordBoost + sentimentBoost
		sourceMult := 1 + sourceScore*c.cfg.TierBoost
		record("source_multiplier", sourceMult)

		total = core * sourceMult
		total += buzzBoost

		for _, sub := range c.subScorers {
			m := sub.Multiplier(in.Item)
			if m < 0 {
				m = 0
			}
			record(sub.Name(), m)
			total *= m
		}

		temporal := c.temporal(in.Tags, in.Now)
		record("temporal", temporal)

		total *= temporal * priority * check.Multiplier * liveMult * seenPenalty
	} else {
		total = freshness + sourceScore + keywordBoost + sentimentBoost
		total += buzzBoost
		total *= priority * check.Multiplier * liveMult
	}

	if buzzHidden {
		total *= 0.01
		record("buzz_penalty", 0.01)
	}

	if total < 0 {
		total = 0
	}
	record("final", total)

	res := Result{Score: total, Breaking: check}
	if c.cfg.Debug {
		res.Breakdown = bd
	}
	return res
}

// Annotate applies a scoring result to the item. This is the only place
// scoring touches the item, keeping Score itself referentially transparent.
func Annotate(item *domain.Item, res Result) {
	item.Score = res.Score
	item.IsBreaking = res.Breaking.IsBreaking
	item.BreakingScore = res.Breaking.Score
	item.Breakdown = res.Breakdown
}

// freshness computes the age-decay factor. Smart mode holds the boost through
// the first half-day then drops sharply; legacy mode decays linearly.
func (c *Calculator) freshness(ageHours float64) float64 {
	f := c.cfg.Freshness
	if c.cfg.Mode == "smart" {
		return f.MaxBoost / (1 + math.Exp(f.Steepness*(ageHours-f.HalfLifeHours)))
	}
	if ageHours >= f.DecayHours {
		return 0
	}
	return (f.DecayHours - ageHours) / f.DecayHours * f.MaxBoost
}

// sentimentBoost returns the additive bonus for sentiment-labeled items
func (c *Calculator) sentimentBoost(s *domain.Sentiment) float64 {
	if s == nil {
		return 0
	}
	switch s.Label {
	case "positive":
		return c.cfg.SentimentPositiveBoost
	case "negative":
		return c.cfg.SentimentNegativeBoost
	}
	return 0
}

// seenPenalty is monotonically non-increasing in the view count
func (c *Calculator) seenPenalty(viewCount int) float64 {
	switch {
	case viewCount == 0:
		return 1.0
	case viewCount <= 3:
		return c.cfg.SeenPenaltyBase
	default:
		return c.cfg.SeenPenaltyBase / 2
	}
}

// temporal computes the entertainment/weekend multiplier from section tags
func (c *Calculator) temporal(tags []string, now time.Time) float64 {
	mult := 1.0
	weekend := now.Weekday() == time.Friday || now.Weekday() == time.Saturday || now.Weekday() == time.Sunday
	for _, tag := range tags {
		switch tag {
		case "entertainment":
			mult *= c.cfg.EntertainmentBoost
		case "leisure", "local":
			if weekend {
				mult *= c.cfg.WeekendBoost
			}
		}
	}
	return mult
}

// buzz evaluates the per-section buzz override. Returns the additive boost
// and whether the item falls below the filter threshold and must be hidden.
func (c *Calculator) buzz(buzz *config.BuzzConfig, text string) (boost float64, hidden bool) {
	if buzz == nil || !buzz.Enabled {
		return 0, false
	}

	lower := strings.ToLower(text)
	posCount := countMatches(lower, buzz.Positive)
	negCount := countMatches(lower, buzz.Negative)

	categoryScore := float64(posCount)*buzz.PositiveMultiplier - float64(negCount)*buzz.NegativeMultiplier
	if categoryScore < buzz.FilterThreshold {
		return 0, true
	}
	return categoryScore * 2.0, false
}

// countMatches counts how many of the keywords appear in the text
func countMatches(lowerText string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

// compileKeywordPattern builds a single case-insensitive alternation over the
// high-impact keyword set, nil when the set is empty
func compileKeywordPattern(keywords []string) *regexp.Regexp {
	if len(keywords) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}
