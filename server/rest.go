package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

const defaultSectionLimit = 20

// statusHandler returns server status with configured sections
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"sections": s.config.SectionNames(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// sectionNewsHandler returns ranked items for a section.
// Query params: limit (default 20), sources (comma-separated allowlist).
func (s *Server) sectionNewsHandler(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if !slices.Contains(s.config.SectionNames(), section) {
		renderError(w, r, fmt.Errorf("unknown section %q", section), http.StatusNotFound)
		return
	}

	limit := defaultSectionLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var allowedSources []string
	if sourcesStr := r.URL.Query().Get("sources"); sourcesStr != "" {
		for _, src := range strings.Split(sourcesStr, ",") {
			if src = strings.TrimSpace(src); src != "" {
				allowedSources = append(allowedSources, src)
			}
		}
	}

	result := s.engine.FetchSectionNews(r.Context(), section, limit, allowedSources)
	renderJSON(w, r, http.StatusOK, result)
}

// recordViewHandler bumps the view count for a served item
func (s *Server) recordViewHandler(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		renderError(w, r, fmt.Errorf("missing item ID"), http.StatusBadRequest)
		return
	}

	if err := s.views.RecordView(r.Context(), itemID); err != nil {
		log.Printf("[ERROR] failed to record view for %s: %v", itemID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "recorded", "id": itemID})
}

// sectionHealthHandler reports fetch health for a section
func (s *Server) sectionHealthHandler(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if !slices.Contains(s.config.SectionNames(), section) {
		renderError(w, r, fmt.Errorf("unknown section %q", section), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, s.engine.SectionHealth(section))
}

// cacheStatsHandler returns current cache statistics
func (s *Server) cacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.CacheStats())
}

// clearCacheHandler drops all cached section results
func (s *Server) clearCacheHandler(w http.ResponseWriter, r *http.Request) {
	cleared := s.engine.ClearCache()
	log.Printf("[INFO] cache cleared, %d entries dropped", cleared)
	renderJSON(w, r, http.StatusOK, map[string]int{"cleared": cleared})
}

// getBlocklistHandler returns the persisted keyword blocklist
func (s *Server) getBlocklistHandler(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.blocklist.Blocked(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load blocklist: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if keywords == nil {
		keywords = []string{}
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"blocked": keywords})
}

// setBlocklistHandler replaces the persisted keyword blocklist
func (s *Server) setBlocklistHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Blocked []string `json:"blocked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.blocklist.SetBlocked(r.Context(), req.Blocked); err != nil {
		log.Printf("[ERROR] failed to save blocklist: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"blocked": req.Blocked})
}
