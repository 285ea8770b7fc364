package ranking

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
)

// Refresher periodically warms every configured section through the public
// engine entry point so interactive requests hit a fresh cache.
type Refresher struct {
	engine   *Engine
	sections []string
	interval time.Duration
	limit    int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewRefresher creates a background section prefetcher
func NewRefresher(engine *Engine, sections []string, interval time.Duration, limit int) *Refresher {
	if interval == 0 {
		interval = 30 * time.Minute
	}
	if limit == 0 {
		limit = 30
	}
	return &Refresher{engine: engine, sections: sections, interval: interval, limit: limit}
}

// Start begins the refresh loop; the first pass runs immediately
func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.refreshAll(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refreshAll(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] refresher started for %d sections, interval %v", len(r.sections), r.interval)
}

// Stop gracefully stops the refresher
func (r *Refresher) Stop() {
	lgr.Printf("[INFO] stopping refresher...")
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	lgr.Printf("[INFO] refresher stopped")
}

// refreshAll warms every section, a few at a time
func (r *Refresher) refreshAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)

	for _, section := range r.sections {
		g.Go(func() error {
			res := r.engine.FetchSectionNews(ctx, section, r.limit, nil)
			lgr.Printf("[DEBUG] refreshed section %s: %d items (cache hit: %v)", section, len(res.Items), res.FromCache)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] refresh error: %v", err)
	}
	lgr.Printf("[INFO] section refresh completed")
}
