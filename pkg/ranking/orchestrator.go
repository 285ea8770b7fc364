package ranking

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/epaperhq/newsrank/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/normalizer.go -pkg mocks -skip-ensure -fmt goimports . Normalizer
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator

// Fetcher retrieves and parses a single feed URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Normalizer converts raw feed entries into engine items
type Normalizer interface {
	Normalize(ctx context.Context, feedTitle string, items []domain.ParsedItem, section string) []domain.Item
}

// Aggregator is the dedicated entertainment aggregation collaborator whose
// output is treated as already normalized
type Aggregator interface {
	Section() string
	Aggregate(ctx context.Context) ([]domain.Item, error)
}

// Orchestrator fans a section's feed list out to the fetcher, aggregates
// partial failures, and retries failed feeds once. Per-feed errors never
// surface to the caller; a feed that fails twice is dropped with a log line.
type Orchestrator struct {
	fetcher    Fetcher
	normalizer Normalizer
	aggregator Aggregator // optional section bypass
	backoff    time.Duration
	maxWorkers int
}

// NewOrchestrator creates a fetch orchestrator. The aggregator may be nil.
func NewOrchestrator(fetcher Fetcher, normalizer Normalizer, aggregator Aggregator, backoff time.Duration, maxWorkers int) *Orchestrator {
	if maxWorkers <= 0 {
		maxWorkers = 5
	}
	return &Orchestrator{
		fetcher:    fetcher,
		normalizer: normalizer,
		aggregator: aggregator,
		backoff:    backoff,
		maxWorkers: maxWorkers,
	}
}

// feedResult is the per-feed outcome of one fan-out pass
type feedResult struct {
	url   string
	items []domain.Item
	err   error
}

// FetchSection retrieves all feeds for a section and returns the flattened
// normalized items. An empty feed list yields an empty report, not an error.
func (o *Orchestrator) FetchSection(ctx context.Context, section string, feeds []string) domain.FetchReport {
	report := domain.FetchReport{Section: section}

	if o.aggregator != nil && o.aggregator.Section() == section {
		items, err := o.aggregator.Aggregate(ctx)
		if err != nil {
			lgr.Printf("[WARN] aggregator failed for section %s: %v", section, err)
			report.Failed = 1
			return report
		}
		report.Succeeded = 1
		report.Items = items
		return report
	}

	if len(feeds) == 0 {
		lgr.Printf("[DEBUG] no feeds configured for section %s", section)
		return report
	}

	results := o.fetchAll(ctx, section, feeds)

	var failed []string
	for _, res := range results {
		if res.err != nil {
			lgr.Printf("[WARN] feed %s failed for section %s: %v", res.url, section, res.err)
			failed = append(failed, res.url)
			continue
		}
		report.Succeeded++
		report.Items = append(report.Items, res.items...)
	}
	report.Failed = len(failed)

	// retry failed feeds once, but only when something succeeded - a section
	// that is completely down is not worth hammering
	if len(failed) > 0 && report.Succeeded > 0 {
		select {
		case <-time.After(o.backoff):
		case <-ctx.Done():
			return report
		}

		lgr.Printf("[INFO] retrying %d failed feeds for section %s", len(failed), section)
		retryResults := o.fetchAll(ctx, section, failed)
		for _, res := range retryResults {
			report.Retried++
			if res.err != nil {
				lgr.Printf("[WARN] feed %s failed twice for section %s, dropping: %v", res.url, section, res.err)
				continue
			}
			report.Succeeded++
			report.Failed--
			report.Items = append(report.Items, res.items...)
		}
	}

	return report
}

// fetchAll runs one concurrent fan-out pass over the given feed URLs
func (o *Orchestrator) fetchAll(ctx context.Context, section string, feeds []string) []feedResult {
	results := make([]feedResult, len(feeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxWorkers)

	for i, url := range feeds {
		g.Go(func() error {
			parsed, err := o.fetcher.Fetch(ctx, url)
			res := feedResult{url: url, err: err}
			if err == nil {
				res.items = o.normalizer.Normalize(ctx, parsed.Title, parsed.Items, section)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] fetch group error for section %s: %v", section, err)
	}

	return results
}
