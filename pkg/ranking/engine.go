package ranking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
	"github.com/epaperhq/newsrank/pkg/scoring"
)

//go:generate moq -out mocks/section_fetcher.go -pkg mocks -skip-ensure -fmt goimports . SectionFetcher
//go:generate moq -out mocks/clusterer.go -pkg mocks -skip-ensure -fmt goimports . Clusterer
//go:generate moq -out mocks/view_counter.go -pkg mocks -skip-ensure -fmt goimports . ViewCounter
//go:generate moq -out mocks/blocklist_provider.go -pkg mocks -skip-ensure -fmt goimports . BlocklistProvider
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// similarityThreshold is the fixed near-duplicate clustering threshold
const similarityThreshold = 0.75

// SectionFetcher retrieves the raw normalized items for a section
type SectionFetcher interface {
	FetchSection(ctx context.Context, section string, feeds []string) domain.FetchReport
}

// Clusterer merges near-duplicate items into representatives
type Clusterer interface {
	Cluster(items []domain.Item, threshold float64) []domain.Item
}

// ViewCounter reports how many times an item has been viewed
type ViewCounter interface {
	Count(ctx context.Context, itemID string) (int, error)
}

// BlocklistProvider supplies persisted blocked keywords merged with the
// configured ones
type BlocklistProvider interface {
	Blocked(ctx context.Context) ([]string, error)
}

// Enricher extracts article body text for top-ranked items
type Enricher interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Summarizer builds a short digest of a ranked section
type Summarizer interface {
	Summarize(ctx context.Context, section string, items []domain.Item) (string, error)
}

// Scorer computes the relevance score for one item
type Scorer interface {
	Score(in scoring.Input) scoring.Result
}

// EngineConfig holds the pipeline's configuration snapshot
type EngineConfig struct {
	Sections     map[string]config.SectionConfig
	Filtering    config.FilteringConfig
	Mode         string // smart or legacy
	EnrichTop    int    // 0 disables body enrichment
	MaxBodyChars int
}

// Engine is the ranking pipeline: it consumes orchestrator output (or cache),
// filters, deduplicates, scores, sorts and truncates, and records section
// health. Its public entry point never returns an error - failures degrade
// to raw or stale data instead.
type Engine struct {
	cfg        EngineConfig
	fetcher    SectionFetcher
	clusterer  Clusterer
	scorer     Scorer
	cache      *ResultCache
	health     *HealthTracker
	views      ViewCounter
	blocklist  BlocklistProvider // optional
	enricher   Enricher          // optional
	summarizer Summarizer        // optional
	nowFn      func() time.Time
}

// NewEngine creates the ranking pipeline. blocklist and enricher may be nil.
func NewEngine(cfg EngineConfig, fetcher SectionFetcher, clusterer Clusterer, scorer Scorer,
	cache *ResultCache, health *HealthTracker, views ViewCounter,
	blocklist BlocklistProvider, enricher Enricher) *Engine {
	return &Engine{
		cfg:       cfg,
		fetcher:   fetcher,
		clusterer: clusterer,
		scorer:    scorer,
		cache:     cache,
		health:    health,
		views:     views,
		blocklist: blocklist,
		enricher:  enricher,
		nowFn:     time.Now,
	}
}

// WithSummarizer attaches an optional section digest builder
func (e *Engine) WithSummarizer(s Summarizer) *Engine {
	e.summarizer = s
	return e
}

// FetchSectionNews returns the ranked, size-bounded item list for a section.
// allowedSources, when non-empty, activates the source allow-list policy.
// The call never fails: partial feed failures, ranking errors and cache
// misses all degrade to the best available data.
func (e *Engine) FetchSectionNews(ctx context.Context, section string, limit int, allowedSources []string) domain.SectionResult {
	if limit <= 0 {
		limit = 30
	}

	if cached, digest, ok := e.cache.Get(section); ok {
		lgr.Printf("[DEBUG] cache hit for section %s (%d items)", section, len(cached))
		final := truncate(cached, limit)
		return domain.SectionResult{
			Section:        section,
			Items:          final,
			Summary:        digest,
			IsSingleSource: singleSource(final),
			FromCache:      true,
			FetchedAt:      e.nowFn(),
		}
	}

	report := e.fetcher.FetchSection(ctx, section, e.sectionFeeds(section))
	raw := report.Items
	lgr.Printf("[INFO] fetched %d raw items for section %s (%d feeds ok, %d failed)",
		len(raw), section, report.Succeeded, report.Failed)

	ranked, degraded := e.rank(ctx, section, raw, allowedSources)
	if degraded {
		// fall back to the first N raw items rather than failing the call
		result := domain.SectionResult{
			Section:   section,
			Items:     truncate(raw, limit),
			Degraded:  true,
			FetchedAt: e.nowFn(),
		}
		e.recordHealth(section, len(result.Items))
		return result
	}

	e.recordHealth(section, len(ranked))
	e.enrichTop(ctx, ranked)
	digest := e.summarize(ctx, section, ranked)
	e.cache.Put(section, ranked, digest)

	final := truncate(ranked, limit)
	return domain.SectionResult{
		Section:        section,
		Items:          final,
		Summary:        digest,
		IsSingleSource: singleSource(final),
		FetchedAt:      e.nowFn(),
	}
}

// CacheStats reports the result cache state
func (e *Engine) CacheStats() domain.CacheStats { return e.cache.Stats() }

// ClearCache drops all cached sections and returns the evicted entry count
func (e *Engine) ClearCache() int {
	count := e.cache.ClearAll()
	lgr.Printf("[INFO] cleared %d cached sections", count)
	return count
}

// SectionHealth classifies the latest recorded fetch for a section
func (e *Engine) SectionHealth(section string) domain.SectionHealth {
	return e.health.Status(section)
}

// rank runs the filtering/dedup/scoring/sorting steps. degraded is true when
// a step panicked; the caller then falls back to raw data.
func (e *Engine) rank(ctx context.Context, section string, raw []domain.Item, allowedSources []string) (ranked []domain.Item, degraded bool) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] ranking failed for section %s, degrading to raw items: %v", section, r)
			ranked, degraded = nil, true
		}
	}()

	// work on a copy - the raw list must stay intact for the degraded path
	items := append([]domain.Item(nil), raw...)
	items = e.filterBlocked(ctx, items)
	items = e.filterStale(items)
	items = e.filterPolicy(items, allowedSources)
	items = dedupByID(items)
	items = e.clusterer.Cluster(items, similarityThreshold)
	e.scoreAll(ctx, section, items)
	e.sortItems(items)

	return items, false
}

// filterBlocked drops items whose text matches the global blocklist
func (e *Engine) filterBlocked(ctx context.Context, items []domain.Item) []domain.Item {
	blocked := append([]string(nil), e.cfg.Filtering.BlockedKeywords...)
	if e.blocklist != nil {
		persisted, err := e.blocklist.Blocked(ctx)
		if err != nil {
			lgr.Printf("[WARN] failed to load persisted blocklist: %v", err)
		} else {
			blocked = append(blocked, persisted...)
		}
	}
	if len(blocked) == 0 {
		return items
	}

	kept := items[:0]
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		hit := false
		for _, kw := range blocked {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, item)
		}
	}
	return kept
}

// filterStale drops items older than the configured max age; live coverage
// gets the cutoff relaxed threefold
func (e *Engine) filterStale(items []domain.Item) []domain.Item {
	maxAge := e.cfg.Filtering.MaxAgeHours
	if maxAge <= 0 {
		return items
	}
	now := e.nowFn()

	kept := items[:0]
	for _, item := range items {
		cutoff := maxAge
		if item.IsLive() {
			cutoff = maxAge * 3
		}
		if now.Sub(item.Published).Hours() <= cutoff {
			kept = append(kept, item)
		}
	}
	return kept
}

// filterPolicy applies the single active filtering policy: a per-request
// source allow-list takes precedence, then the configured strict-keyword
// mode, then the top-sources-only mode. At most one ever applies.
func (e *Engine) filterPolicy(items []domain.Item, allowedSources []string) []domain.Item {
	switch {
	case len(allowedSources) > 0:
		return filterBySource(items, allowedSources)
	case len(e.cfg.Filtering.StrictKeywords) > 0:
		kept := items[:0]
		for _, item := range items {
			text := strings.ToLower(item.Title + " " + item.Description)
			for _, kw := range e.cfg.Filtering.StrictKeywords {
				if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
					kept = append(kept, item)
					break
				}
			}
		}
		return kept
	case len(e.cfg.Filtering.TopSources) > 0:
		return filterBySource(items, e.cfg.Filtering.TopSources)
	}
	return items
}

// filterBySource keeps only items from the named sources
func filterBySource(items []domain.Item, sources []string) []domain.Item {
	allowed := make(map[string]bool, len(sources))
	for _, s := range sources {
		allowed[strings.ToLower(s)] = true
	}
	kept := items[:0]
	for _, item := range items {
		if allowed[strings.ToLower(item.Source)] {
			kept = append(kept, item)
		}
	}
	return kept
}

// dedupByID removes exact duplicates, keeping the first occurrence
func dedupByID(items []domain.Item) []domain.Item {
	seen := make(map[string]bool, len(items))
	kept := items[:0]
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		kept = append(kept, item)
	}
	return kept
}

// scoreAll scores every item in place; legacy mode skips scoring entirely
func (e *Engine) scoreAll(ctx context.Context, section string, items []domain.Item) {
	if e.cfg.Mode == "legacy" {
		return
	}

	sec := e.cfg.Sections[section]
	now := e.nowFn()

	for i := range items {
		viewCount := 0
		if e.views != nil {
			count, err := e.views.Count(ctx, items[i].ID)
			if err != nil {
				lgr.Printf("[WARN] view count lookup failed for %s: %v", items[i].ID, err)
			} else {
				viewCount = count
			}
		}

		res := e.scorer.Score(scoring.Input{
			Item:      items[i],
			Section:   section,
			Tags:      sec.Tags,
			Buzz:      sec.Buzz,
			ViewCount: viewCount,
			Now:       now,
		})
		scoring.Annotate(&items[i], res)
	}
}

// sortItems orders by score in smart mode and by publish time in legacy mode
func (e *Engine) sortItems(items []domain.Item) {
	if e.cfg.Mode == "legacy" {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Published.After(items[j].Published)
		})
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Published.After(items[j].Published)
	})
}

// enrichTop extracts article bodies for the highest-ranked items
func (e *Engine) enrichTop(ctx context.Context, items []domain.Item) {
	if e.enricher == nil || e.cfg.EnrichTop <= 0 {
		return
	}

	top := e.cfg.EnrichTop
	if top > len(items) {
		top = len(items)
	}
	for i := 0; i < top; i++ {
		body, err := e.enricher.Extract(ctx, items[i].Link)
		if err != nil {
			lgr.Printf("[DEBUG] body extraction failed for %s: %v", items[i].Link, err)
			continue
		}
		if e.cfg.MaxBodyChars > 0 && len(body) > e.cfg.MaxBodyChars {
			body = body[:e.cfg.MaxBodyChars]
		}
		items[i].Body = body
	}
}

// summarize builds the section digest; a failing summarizer yields an empty
// digest rather than failing the request
func (e *Engine) summarize(ctx context.Context, section string, items []domain.Item) string {
	if e.summarizer == nil {
		return ""
	}
	digest, err := e.summarizer.Summarize(ctx, section, items)
	if err != nil {
		lgr.Printf("[WARN] section digest failed for %s: %v", section, err)
		return ""
	}
	return digest
}

// recordHealth records the fetch yield and logs degraded sections
func (e *Engine) recordHealth(section string, count int) {
	health := e.health.Classify(section, count)
	if health.Status != domain.HealthOK {
		lgr.Printf("[WARN] section %s health %s: yield %d against average %.1f",
			section, health.Status, count, health.Average)
	}
	e.health.Record(section, count)
}

// sectionFeeds returns the configured feed URLs for a section
func (e *Engine) sectionFeeds(section string) []string {
	return e.cfg.Sections[section].Feeds
}

// truncate slices to the requested limit without sharing backing arrays
func truncate(items []domain.Item, limit int) []domain.Item {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}

// singleSource reports whether more than three items all share one source
func singleSource(items []domain.Item) bool {
	if len(items) <= 3 {
		return false
	}
	first := items[0].Source
	for _, item := range items[1:] {
		if item.Source != first {
			return false
		}
	}
	return true
}
