package scoring

import "github.com/epaperhq/newsrank/pkg/config"

// ConfigSources is the configuration-backed source weigher. Sources absent
// from the table are untiered: zero authority with a neutral category weight.
type ConfigSources struct {
	sources map[string]config.SourceConfig
}

// NewConfigSources creates a source weigher from the scoring configuration
func NewConfigSources(sources map[string]config.SourceConfig) *ConfigSources {
	return &ConfigSources{sources: sources}
}

// Weight returns the authority score and per-section relevance weight
func (s *ConfigSources) Weight(source, section string) (authority, categoryWeight float64) {
	src, ok := s.sources[source]
	if !ok {
		return 0, 1.0
	}
	categoryWeight = 1.0
	if cw, ok := src.Sections[section]; ok {
		categoryWeight = cw
	}
	return src.Weight, categoryWeight
}
