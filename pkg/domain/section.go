package domain

import "time"

// Health status values for a section's latest fetch
const (
	HealthOK       = "ok"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// SectionHealth describes how the latest fetch compares to recent history
type SectionHealth struct {
	Section string  `json:"section"`
	Status  string  `json:"status"`
	Ratio   float64 `json:"ratio"`
	Average float64 `json:"average"`
	History []int   `json:"history"`
}

// SectionResult is the ranked, size-bounded output for one section request
type SectionResult struct {
	Section        string    `json:"section"`
	Items          []Item    `json:"items"`
	Summary        string    `json:"summary,omitempty"`
	IsSingleSource bool      `json:"is_single_source"`
	Degraded       bool      `json:"degraded"`
	FromCache      bool      `json:"from_cache"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// FetchReport summarizes one feed fan-out pass for a section
type FetchReport struct {
	Section   string
	Succeeded int
	Failed    int
	Retried   int
	Items     []Item
}

// CacheStats reports the state of the section result cache
type CacheStats struct {
	Entries int           `json:"entries"`
	TTL     time.Duration `json:"ttl"`
	Enabled bool          `json:"enabled"`
}
