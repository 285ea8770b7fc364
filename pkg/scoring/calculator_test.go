package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
	"github.com/epaperhq/newsrank/pkg/scoring"
	"github.com/epaperhq/newsrank/pkg/scoring/mocks"
)

// tuesday keeps temporal weekend boosts out of the way
var tuesday = time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

func boolPtr(b bool) *bool { return &b }

func smartConfig() config.ScoringConfig {
	cfg := config.ScoringConfig{
		Mode:                   "smart",
		SmartFormula:           boolPtr(true),
		TierBoost:              0.5,
		KeywordBoost:           2.5,
		Keywords:               []string{"election", "war", "crisis", "economy"},
		SentimentPositiveBoost: 0.5,
		SentimentNegativeBoost: 0.8,
		SeenPenaltyBase:        0.4,
		TrendingThreshold:      0.5,
		EntertainmentBoost:     1.2,
		WeekendBoost:           1.3,
		SectionPriority:        map[string]float64{"world": 1.5, "business": 1.2},
		Sources: map[string]config.SourceConfig{
			"Reuters": {Weight: 1.0, Sections: map[string]float64{"world": 1.0, "business": 1.1}},
		},
	}
	cfg.Freshness.MaxBoost = 10
	cfg.Freshness.HalfLifeHours = 12
	cfg.Freshness.Steepness = 0.5
	cfg.Freshness.DecayHours = 26
	return cfg
}

func newTestCalculator(cfg config.ScoringConfig) *scoring.Calculator {
	return scoring.NewCalculator(cfg, scoring.NewConfigSources(cfg.Sources),
		scoring.NewKeywordBreaking(cfg.TrendingThreshold), scoring.DefaultSubScorers())
}

// neutralCalculator isolates the factor under test: untiered source, no
// breaking boost, no sub-scorers
func neutralCalculator(cfg config.ScoringConfig) *scoring.Calculator {
	weigher := &mocks.SourceWeigherMock{
		WeightFunc: func(source, section string) (float64, float64) { return 0, 1.0 },
	}
	breaking := &mocks.BreakingDetectorMock{
		CheckFunc: func(item domain.Item, now time.Time) scoring.BreakingCheck {
			return scoring.BreakingCheck{Multiplier: 1}
		},
	}
	return scoring.NewCalculator(cfg, weigher, breaking, nil)
}

func TestCalculator_FreshnessDecay(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	score := func(age time.Duration) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: tuesday.Add(-age)},
			Section: "sports",
			Now:     tuesday,
		}).Score
	}

	t.Run("monotonically decreasing with age", func(t *testing.T) {
		fresh := score(1 * time.Hour)
		mid := score(12 * time.Hour)
		old := score(24 * time.Hour)
		assert.Greater(t, fresh, mid)
		assert.Greater(t, mid, old)
	})

	t.Run("half boost at half-life", func(t *testing.T) {
		assert.InDelta(t, 5.0, score(12*time.Hour), 0.001)
	})

	t.Run("holds near max through first hours", func(t *testing.T) {
		assert.Greater(t, score(2*time.Hour), 9.0)
	})

	t.Run("future publish dates clamp to zero age", func(t *testing.T) {
		future := calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: tuesday.Add(3 * time.Hour)},
			Section: "sports",
			Now:     tuesday,
		}).Score
		assert.InDelta(t, score(0), future, 0.001)
	})
}

func TestCalculator_LegacyFreshness(t *testing.T) {
	cfg := smartConfig()
	cfg.Mode = "legacy"
	cfg.SmartFormula = boolPtr(false)
	calc := neutralCalculator(cfg)

	score := func(age time.Duration) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: tuesday.Add(-age)},
			Section: "sports",
			Now:     tuesday,
		}).Score
	}

	t.Run("linear decay", func(t *testing.T) {
		// (26-13)/26 * 10
		assert.InDelta(t, 5.0, score(13*time.Hour), 0.001)
	})

	t.Run("zero past the decay window", func(t *testing.T) {
		assert.Zero(t, score(26*time.Hour))
		assert.Zero(t, score(40*time.Hour))
	})
}

func TestCalculator_KeywordBoost(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	plain := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "quiet afternoon stroll", Published: tuesday},
		Section: "sports",
		Now:     tuesday,
	}).Score
	boosted := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "election results announced", Published: tuesday},
		Section: "sports",
		Now:     tuesday,
	}).Score

	assert.InDelta(t, cfg.KeywordBoost, boosted-plain, 0.001)

	t.Run("keyword in description counts", func(t *testing.T) {
		viaDesc := calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon stroll", Description: "the economy shrank", Published: tuesday},
			Section: "sports",
			Now:     tuesday,
		}).Score
		assert.InDelta(t, boosted, viaDesc, 0.001)
	})

	t.Run("boost applied once regardless of hits", func(t *testing.T) {
		multi := calc.Score(scoring.Input{
			Item:    domain.Item{Title: "election crisis deepens", Published: tuesday},
			Section: "sports",
			Now:     tuesday,
		}).Score
		assert.InDelta(t, boosted, multi, 0.001)
	})
}

func TestCalculator_SentimentBoost(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	score := func(s *domain.Sentiment) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: tuesday, Sentiment: s},
			Section: "business",
			Now:     tuesday,
		}).Score
	}

	base := score(nil)
	assert.InDelta(t, cfg.SentimentPositiveBoost*1.2, score(&domain.Sentiment{Label: "positive"})-base, 0.001)
	assert.InDelta(t, cfg.SentimentNegativeBoost*1.2, score(&domain.Sentiment{Label: "negative"})-base, 0.001)
	assert.InDelta(t, base, score(&domain.Sentiment{Label: "neutral"}), 0.001)
}

func TestCalculator_SeenPenalty(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	score := func(views int) float64 {
		return calc.Score(scoring.Input{
			Item:      domain.Item{Title: "quiet afternoon", Published: tuesday},
			Section:   "sports",
			ViewCount: views,
			Now:       tuesday,
		}).Score
	}

	base := score(0)
	require.Positive(t, base)

	t.Run("first views drop to base penalty", func(t *testing.T) {
		for _, views := range []int{1, 2, 3} {
			assert.InDelta(t, 0.4, score(views)/base, 0.001, "views=%d", views)
		}
	})

	t.Run("heavy repeats halve again", func(t *testing.T) {
		assert.InDelta(t, 0.2, score(4)/base, 0.001)
		assert.InDelta(t, 0.2, score(10)/base, 0.001)
	})

	t.Run("never increases with views", func(t *testing.T) {
		prev := base
		for views := 1; views <= 8; views++ {
			cur := score(views)
			assert.LessOrEqual(t, cur, prev, "views=%d", views)
			prev = cur
		}
	})
}

func TestCalculator_Buzz(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	buzz := &config.BuzzConfig{
		Enabled:            true,
		Positive:           []string{"blockbuster", "award"},
		Negative:           []string{"flop", "controversy"},
		PositiveMultiplier: 1.0,
		NegativeMultiplier: 1.0,
		FilterThreshold:    -1.0,
	}

	score := func(title string, b *config.BuzzConfig) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: title, Published: tuesday},
			Section: "entertainment",
			Buzz:    b,
			Now:     tuesday,
		}).Score
	}

	t.Run("positive matches add to the score", func(t *testing.T) {
		base := score("new release this season", buzz)
		lifted := score("blockbuster award season", buzz)
		assert.Greater(t, lifted, base)
	})

	t.Run("below threshold effectively hides the item", func(t *testing.T) {
		base := score("new release this season", buzz)
		hidden := score("major flop sparks controversy", buzz)
		assert.LessOrEqual(t, hidden, 0.02*base)
	})

	t.Run("disabled buzz is inert", func(t *testing.T) {
		disabled := *buzz
		disabled.Enabled = false
		assert.InDelta(t, score("new release", nil), score("new release", &disabled), 0.001)
	})
}

func TestCalculator_Scenarios(t *testing.T) {
	cfg := smartConfig()
	calc := newTestCalculator(cfg)

	t.Run("perfect storm scores high", func(t *testing.T) {
		res := calc.Score(scoring.Input{
			Item: domain.Item{
				Title:     "BREAKING: War crisis escalates!",
				Source:    "Reuters",
				Published: tuesday.Add(-30 * time.Minute),
			},
			Section: "world",
			Now:     tuesday,
		})
		assert.Greater(t, res.Score, 15.0)
		assert.True(t, res.Breaking.IsBreaking)
	})

	t.Run("stale noise scores low", func(t *testing.T) {
		res := calc.Score(scoring.Input{
			Item: domain.Item{
				Title:     "local club meets again",
				Source:    "Unknown Blog",
				Published: tuesday.Add(-48 * time.Hour),
			},
			Section: "sports",
			Now:     tuesday,
		})
		assert.Less(t, res.Score, 5.0)
		assert.False(t, res.Breaking.IsBreaking)
	})
}

func TestCalculator_LegacyFormulaIgnoresViews(t *testing.T) {
	cfg := smartConfig()
	cfg.SmartFormula = boolPtr(false)
	calc := neutralCalculator(cfg)

	unseen := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "quiet afternoon", Published: tuesday},
		Section: "sports",
		Now:     tuesday,
	}).Score
	seen := calc.Score(scoring.Input{
		Item:      domain.Item{Title: "quiet afternoon", Published: tuesday},
		Section:   "sports",
		ViewCount: 7,
		Now:       tuesday,
	}).Score

	assert.InDelta(t, unseen, seen, 0.001)
}

func TestCalculator_LiveMultiplier(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	base := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "election results announced", Published: tuesday},
		Section: "sports",
		Now:     tuesday,
	}).Score
	live := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "LIVE election results announced", Published: tuesday},
		Section: "sports",
		Now:     tuesday,
	}).Score

	assert.InDelta(t, 1.5, live/base, 0.001)
}

func TestCalculator_SectionPriority(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	score := func(section string) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: tuesday},
			Section: section,
			Now:     tuesday,
		}).Score
	}

	sports := score("sports") // no priority configured
	assert.InDelta(t, 1.5, score("world")/sports, 0.001)
	assert.InDelta(t, 1.2, score("business")/sports, 0.001)
}

func TestCalculator_Temporal(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	saturday := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	score := func(tags []string, now time.Time) float64 {
		return calc.Score(scoring.Input{
			Item:    domain.Item{Title: "quiet afternoon", Published: now},
			Section: "leisure",
			Tags:    tags,
			Now:     now,
		}).Score
	}

	t.Run("entertainment boost applies any day", func(t *testing.T) {
		assert.InDelta(t, 1.2, score([]string{"entertainment"}, tuesday)/score(nil, tuesday), 0.001)
	})

	t.Run("weekend boost only on weekend", func(t *testing.T) {
		assert.InDelta(t, 1.0, score([]string{"leisure"}, tuesday)/score(nil, tuesday), 0.001)
		assert.InDelta(t, 1.3, score([]string{"leisure"}, saturday)/score(nil, saturday), 0.001)
	})
}

func TestCalculator_DebugBreakdown(t *testing.T) {
	cfg := smartConfig()

	t.Run("no breakdown by default", func(t *testing.T) {
		res := neutralCalculator(cfg).Score(scoring.Input{
			Item: domain.Item{Title: "quiet afternoon", Published: tuesday}, Section: "world", Now: tuesday,
		})
		assert.Nil(t, res.Breakdown)
	})

	t.Run("debug attaches factors", func(t *testing.T) {
		dbg := cfg
		dbg.Debug = true
		res := neutralCalculator(dbg).Score(scoring.Input{
			Item: domain.Item{Title: "quiet afternoon", Published: tuesday}, Section: "world", Now: tuesday,
		})
		require.NotNil(t, res.Breakdown)
		assert.Contains(t, res.Breakdown, "freshness")
		assert.Contains(t, res.Breakdown, "priority")
		assert.Contains(t, res.Breakdown, "final")
	})
}

func TestCalculator_NeverNegative(t *testing.T) {
	cfg := smartConfig()
	calc := neutralCalculator(cfg)

	// negative buzz score above a very low threshold stays additive
	buzz := &config.BuzzConfig{
		Enabled:            true,
		Negative:           []string{"flop"},
		NegativeMultiplier: 100,
		FilterThreshold:    -1000,
	}
	res := calc.Score(scoring.Input{
		Item:    domain.Item{Title: "complete flop", Published: tuesday},
		Section: "sports",
		Buzz:    buzz,
		Now:     tuesday,
	})
	assert.GreaterOrEqual(t, res.Score, 0.0)
}

func TestAnnotate(t *testing.T) {
	item := domain.Item{Title: "something"}
	scoring.Annotate(&item, scoring.Result{
		Score:     7.5,
		Breakdown: map[string]float64{"final": 7.5},
		Breaking:  scoring.BreakingCheck{IsBreaking: true, Score: 0.6, Multiplier: 1.6},
	})

	assert.InDelta(t, 7.5, item.Score, 0.001)
	assert.True(t, item.IsBreaking)
	assert.InDelta(t, 0.6, item.BreakingScore, 0.001)
	assert.Equal(t, map[string]float64{"final": 7.5}, item.Breakdown)
}
