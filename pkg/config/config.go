package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsrank.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration for the view-count and settings store"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Cache struct {
		Enabled *bool         `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable section result caching"`
		TTL     time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=5m,description=Cache entry time to live"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Result cache configuration"`

	Filtering FilteringConfig `yaml:"filtering" json:"filtering" jsonschema:"description=Item filtering configuration"`

	Scoring ScoringConfig `yaml:"scoring" json:"scoring" jsonschema:"description=Relevance scoring configuration"`

	Sections map[string]SectionConfig `yaml:"sections" json:"sections" jsonschema:"description=Per-section feed lists and overrides"`

	Refresh struct {
		Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable background section prefetch"`
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Prefetch interval"`
		Limit    int           `yaml:"limit" json:"limit" jsonschema:"default=30,description=Items per section to prefetch"`
	} `yaml:"refresh" json:"refresh" jsonschema:"description=Background refresh configuration"`

	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment" jsonschema:"description=Article body enrichment configuration"`

	Sentiment SentimentConfig `yaml:"sentiment" json:"sentiment" jsonschema:"description=Sentiment analysis configuration"`

	Summary SummaryConfig `yaml:"summary" json:"summary" jsonschema:"description=Per-section digest configuration"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-feed fetch timeout"`
	RetryBackoff time.Duration `yaml:"retry_backoff" json:"retry_backoff" jsonschema:"default=2s,description=Backoff before retrying failed feeds"`
	MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed fetches"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsrank/1.0,description=User agent for feed requests"`
}

// FilteringConfig holds item filtering settings
type FilteringConfig struct {
	BlockedKeywords []string `yaml:"blocked_keywords" json:"blocked_keywords" jsonschema:"description=Globally blocked keywords"`
	MaxAgeHours     float64  `yaml:"max_age_hours" json:"max_age_hours" jsonschema:"default=48,description=Maximum item age in hours"`
	TopSources      []string `yaml:"top_sources" json:"top_sources" jsonschema:"description=Sources used by the top-sources-only policy"`
	StrictKeywords  []string `yaml:"strict_keywords" json:"strict_keywords" jsonschema:"description=Keywords used by the strict-keyword policy"`
}

// ScoringConfig holds the relevance scoring weight table
type ScoringConfig struct {
	Mode         string `yaml:"mode" json:"mode" jsonschema:"default=smart,enum=smart,enum=legacy,description=Ranking mode"`
	SmartFormula *bool  `yaml:"smart_formula" json:"smart_formula" jsonschema:"default=true,description=Use the multiplicative 9-factor formula"`
	Debug        bool   `yaml:"debug" json:"debug" jsonschema:"default=false,description=Attach score breakdowns to items"`

	Freshness struct {
		MaxBoost      float64 `yaml:"max_boost" json:"max_boost" jsonschema:"default=10,description=Maximum freshness boost"`
		HalfLifeHours float64 `yaml:"half_life_hours" json:"half_life_hours" jsonschema:"default=12,description=Logistic decay half-life in hours"`
		Steepness     float64 `yaml:"steepness" json:"steepness" jsonschema:"default=0.5,description=Logistic decay steepness"`
		DecayHours    float64 `yaml:"decay_hours" json:"decay_hours" jsonschema:"default=26,description=Linear decay window in hours (legacy formula)"`
	} `yaml:"freshness" json:"freshness" jsonschema:"description=Freshness decay parameters"`

	TierBoost              float64  `yaml:"tier_boost" json:"tier_boost" jsonschema:"default=0.5,description=Source tier multiplier strength"`
	KeywordBoost           float64  `yaml:"keyword_boost" json:"keyword_boost" jsonschema:"default=2.5,description=Additive boost for high-impact keywords"`
	Keywords               []string `yaml:"keywords" json:"keywords" jsonschema:"description=High-impact keyword set"`
	SentimentPositiveBoost float64  `yaml:"sentiment_positive_boost" json:"sentiment_positive_boost" jsonschema:"default=0.5,description=Additive boost for positive sentiment"`
	SentimentNegativeBoost float64  `yaml:"sentiment_negative_boost" json:"sentiment_negative_boost" jsonschema:"default=0.8,description=Additive boost for negative sentiment"`
	SeenPenaltyBase        float64  `yaml:"seen_penalty_base" json:"seen_penalty_base" jsonschema:"default=0.4,description=Score multiplier once an item has been viewed"`
	TrendingThreshold      float64  `yaml:"trending_threshold" json:"trending_threshold" jsonschema:"default=0.5,description=Breaking score above which items are flagged"`
	EntertainmentBoost     float64  `yaml:"entertainment_boost" json:"entertainment_boost" jsonschema:"default=1.2,description=Multiplier for entertainment-tagged sections"`
	WeekendBoost           float64  `yaml:"weekend_boost" json:"weekend_boost" jsonschema:"default=1.3,description=Friday-Sunday multiplier for leisure and local sections"`

	SectionPriority map[string]float64      `yaml:"section_priority" json:"section_priority" jsonschema:"description=Static per-section priority multipliers"`
	Sources         map[string]SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Source authority and per-section relevance weights"`
}

// SourceConfig holds authority and category relevance for one source
type SourceConfig struct {
	Weight   float64            `yaml:"weight" json:"weight" jsonschema:"description=Source authority score"`
	Sections map[string]float64 `yaml:"sections" json:"sections" jsonschema:"description=Per-section relevance weight"`
}

// SectionConfig holds feed URLs and overrides for one section
type SectionConfig struct {
	Feeds []string    `yaml:"feeds" json:"feeds" jsonschema:"description=Feed URLs for the section"`
	Tags  []string    `yaml:"tags" json:"tags" jsonschema:"description=Section tags (entertainment, leisure, local)"`
	Buzz  *BuzzConfig `yaml:"buzz,omitempty" json:"buzz,omitempty" jsonschema:"description=Per-section buzz override"`
}

// BuzzConfig holds the per-section keyword-driven score adjustment
type BuzzConfig struct {
	Enabled            bool     `yaml:"enabled" json:"enabled" jsonschema:"description=Enable the buzz override"`
	Positive           []string `yaml:"positive" json:"positive" jsonschema:"description=Positive keywords"`
	Negative           []string `yaml:"negative" json:"negative" jsonschema:"description=Negative keywords"`
	PositiveMultiplier float64  `yaml:"positive_multiplier" json:"positive_multiplier" jsonschema:"default=1,description=Weight per positive match"`
	NegativeMultiplier float64  `yaml:"negative_multiplier" json:"negative_multiplier" jsonschema:"default=1,description=Weight per negative match"`
	FilterThreshold    float64  `yaml:"filter_threshold" json:"filter_threshold" jsonschema:"description=Category score below which items are hidden"`
}

// EnrichmentConfig holds article body extraction settings
type EnrichmentConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable body extraction for top items"`
	TopItems     int           `yaml:"top_items" json:"top_items" jsonschema:"default=5,description=Number of top-ranked items to enrich"`
	MaxBodyChars int           `yaml:"max_body_chars" json:"max_body_chars" jsonschema:"default=3000,description=Body text cap per item"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Extraction timeout per article"`
}

// SentimentConfig holds sentiment analyzer settings
type SentimentConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for lexicon fallback)"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string        `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Request timeout"`
}

// SummaryConfig holds per-section digest settings
type SummaryConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable per-section digests"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for extractive fallback)"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string        `yaml:"model" json:"model" jsonschema:"description=Model name"`
	TopItems int           `yaml:"top_items" json:"top_items" jsonschema:"default=5,description=Ranked items fed into the digest"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// SetDefaults fills in zero values with defaults
func (c *Config) SetDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsrank.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.RetryBackoff == 0 {
		c.Fetch.RetryBackoff = 2 * time.Second
	}
	if c.Fetch.MaxWorkers == 0 {
		c.Fetch.MaxWorkers = 5
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Newsrank/1.0"
	}

	if c.Cache.Enabled == nil {
		c.Cache.Enabled = boolPtr(true)
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}

	if c.Filtering.MaxAgeHours == 0 {
		c.Filtering.MaxAgeHours = 48
	}

	c.Scoring.setDefaults()

	if c.Refresh.Interval == 0 {
		c.Refresh.Interval = 30 * time.Minute
	}
	if c.Refresh.Limit == 0 {
		c.Refresh.Limit = 30
	}

	if c.Enrichment.TopItems == 0 {
		c.Enrichment.TopItems = 5
	}
	if c.Enrichment.MaxBodyChars == 0 {
		c.Enrichment.MaxBodyChars = 3000
	}
	if c.Enrichment.Timeout == 0 {
		c.Enrichment.Timeout = 15 * time.Second
	}

	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = 20 * time.Second
	}

	if c.Summary.TopItems == 0 {
		c.Summary.TopItems = 5
	}
	if c.Summary.Timeout == 0 {
		c.Summary.Timeout = 20 * time.Second
	}
}

// setDefaults fills in the scoring weight table defaults
func (s *ScoringConfig) setDefaults() {
	if s.Mode == "" {
		s.Mode = "smart"
	}
	if s.SmartFormula == nil {
		s.SmartFormula = boolPtr(true)
	}
	if s.Freshness.MaxBoost == 0 {
		s.Freshness.MaxBoost = 10
	}
	if s.Freshness.HalfLifeHours == 0 {
		s.Freshness.HalfLifeHours = 12
	}
	if s.Freshness.Steepness == 0 {
		s.Freshness.Steepness = 0.5
	}
	if s.Freshness.DecayHours == 0 {
		s.Freshness.DecayHours = 26
	}
	if s.TierBoost == 0 {
		s.TierBoost = 0.5
	}
	if s.KeywordBoost == 0 {
		s.KeywordBoost = 2.5
	}
	if len(s.Keywords) == 0 {
		s.Keywords = []string{"election", "war", "crisis", "economy", "breakthrough", "disaster", "verdict", "budget"}
	}
	if s.SentimentPositiveBoost == 0 {
		s.SentimentPositiveBoost = 0.5
	}
	if s.SentimentNegativeBoost == 0 {
		s.SentimentNegativeBoost = 0.8
	}
	if s.SeenPenaltyBase == 0 {
		s.SeenPenaltyBase = 0.4
	}
	if s.TrendingThreshold == 0 {
		s.TrendingThreshold = 0.5
	}
	if s.EntertainmentBoost == 0 {
		s.EntertainmentBoost = 1.2
	}
	if s.WeekendBoost == 0 {
		s.WeekendBoost = 1.3
	}
	if s.SectionPriority == nil {
		s.SectionPriority = map[string]float64{"world": 1.5, "business": 1.2}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Scoring.Mode != "smart" && cfg.Scoring.Mode != "legacy" {
		return fmt.Errorf("scoring.mode must be smart or legacy, got %q", cfg.Scoring.Mode)
	}
	if cfg.Scoring.SeenPenaltyBase < 0 || cfg.Scoring.SeenPenaltyBase > 1 {
		return fmt.Errorf("scoring.seen_penalty_base must be between 0 and 1")
	}
	if cfg.Scoring.Freshness.MaxBoost < 0 {
		return fmt.Errorf("scoring.freshness.max_boost must be non-negative")
	}
	if cfg.Cache.TTL < time.Second {
		return fmt.Errorf("cache.ttl must be at least 1 second")
	}
	if cfg.Fetch.RetryBackoff < 0 {
		return fmt.Errorf("fetch.retry_backoff must be non-negative")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	for name, sec := range cfg.Sections {
		if sec.Buzz == nil {
			continue
		}
		if sec.Buzz.PositiveMultiplier < 0 || sec.Buzz.NegativeMultiplier < 0 {
			return fmt.Errorf("sections.%s.buzz multipliers must be non-negative", name)
		}
	}

	for name, src := range cfg.Scoring.Sources {
		if src.Weight < 0 {
			return fmt.Errorf("scoring.sources.%s.weight must be non-negative", name)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// CacheEnabled reports whether result caching is on, treating an unset flag
// as enabled
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// UseSmartFormula reports whether the multiplicative formula applies,
// treating an unset flag as on
func (s *ScoringConfig) UseSmartFormula() bool {
	return s.SmartFormula == nil || *s.SmartFormula
}

func boolPtr(b bool) *bool { return &b }

// SectionFeeds returns the configured feed URLs for a section, nil if unknown
func (c *Config) SectionFeeds(section string) []string {
	sec, ok := c.Sections[section]
	if !ok {
		return nil
	}
	return sec.Feeds
}

// SectionNames returns all configured section names
func (c *Config) SectionNames() []string {
	names := make([]string, 0, len(c.Sections))
	for name := range c.Sections {
		names = append(names, name)
	}
	return names
}
