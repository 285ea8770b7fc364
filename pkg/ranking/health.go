package ranking

import (
	"sync"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// healthHistoryDepth caps the per-section fetch-yield history
const healthHistoryDepth = 3

// HealthTracker keeps a rolling, most-recent-first history of per-section
// fetch yields and classifies the latest fetch against the historical average.
type HealthTracker struct {
	mu      sync.Mutex
	history map[string][]int
}

// NewHealthTracker creates an empty tracker
func NewHealthTracker() *HealthTracker {
	return &HealthTracker{history: make(map[string][]int)}
}

// Record prepends a fetch yield to the section's history, keeping the three
// most recent values
func (t *HealthTracker) Record(section string, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	hist := append([]int{count}, t.history[section]...)
	if len(hist) > healthHistoryDepth {
		hist = hist[:healthHistoryDepth]
	}
	t.history[section] = hist
}

// Classify judges a fetch yield against the section's recorded history.
// A section with no history is always ok - a first run cannot be judged.
func (t *HealthTracker) Classify(section string, currentCount int) domain.SectionHealth {
	t.mu.Lock()
	hist := append([]int(nil), t.history[section]...)
	t.mu.Unlock()

	return classify(section, hist, currentCount)
}

// Status classifies the most recent recorded fetch against the fetches that
// preceded it. Sections with fewer than two records are ok.
func (t *HealthTracker) Status(section string) domain.SectionHealth {
	t.mu.Lock()
	hist := append([]int(nil), t.history[section]...)
	t.mu.Unlock()

	if len(hist) < 2 {
		return domain.SectionHealth{Section: section, Status: domain.HealthOK, Ratio: 1.0, History: hist}
	}
	return classify(section, hist[1:], hist[0])
}

func classify(section string, hist []int, currentCount int) domain.SectionHealth {
	health := domain.SectionHealth{
		Section: section,
		Status:  domain.HealthOK,
		Ratio:   1.0,
		History: hist,
	}
	if len(hist) == 0 {
		return health
	}

	sum := 0
	for _, c := range hist {
		sum += c
	}
	avg := float64(sum) / float64(len(hist))
	health.Average = avg

	if avg > 0 {
		health.Ratio = float64(currentCount) / avg
	}

	switch {
	case health.Ratio < 0.10:
		health.Status = domain.HealthCritical
	case health.Ratio < 0.50:
		health.Status = domain.HealthWarning
	}
	return health
}
