package feed

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// entertainmentSection is the section served by the dedicated aggregator
const entertainmentSection = "entertainment"

// Fetcher retrieves and parses a single feed URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// EntertainmentAggregator is the dedicated collaborator for the
// entertainment section. It bypasses the generic fan-out: sources are fetched
// sequentially and partial failures are tolerated as long as anything loads.
type EntertainmentAggregator struct {
	fetcher    Fetcher
	normalizer *Normalizer
	sources    []string
}

// NewEntertainmentAggregator creates the aggregator over the given sources
func NewEntertainmentAggregator(fetcher Fetcher, normalizer *Normalizer, sources []string) *EntertainmentAggregator {
	return &EntertainmentAggregator{fetcher: fetcher, normalizer: normalizer, sources: sources}
}

// Section returns the section this aggregator serves
func (a *EntertainmentAggregator) Section() string { return entertainmentSection }

// Aggregate fetches all entertainment sources and returns the merged,
// already-normalized items
func (a *EntertainmentAggregator) Aggregate(ctx context.Context) ([]domain.Item, error) {
	var merged []domain.Item
	failures := 0

	for _, url := range a.sources {
		parsed, err := a.fetcher.Fetch(ctx, url)
		if err != nil {
			lgr.Printf("[WARN] entertainment source %s failed: %v", url, err)
			failures++
			continue
		}
		merged = append(merged, a.normalizer.Normalize(ctx, parsed.Title, parsed.Items, entertainmentSection)...)
	}

	if len(merged) == 0 && failures > 0 {
		return nil, &AggregateError{Failures: failures}
	}
	return merged, nil
}

// AggregateError reports that every entertainment source failed
type AggregateError struct {
	Failures int
}

func (e *AggregateError) Error() string {
	return "all entertainment sources failed"
}
