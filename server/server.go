package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/epaperhq/newsrank/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/blocklist.go -pkg mocks -skip-ensure -fmt goimports . Blocklist
//go:generate moq -out mocks/views.go -pkg mocks -skip-ensure -fmt goimports . ViewRecorder

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	engine    Engine
	blocklist Blocklist
	views     ViewRecorder
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Engine serves ranked section results and exposes cache and health state
type Engine interface {
	FetchSectionNews(ctx context.Context, section string, limit int, allowedSources []string) domain.SectionResult
	CacheStats() domain.CacheStats
	ClearCache() int
	SectionHealth(section string) domain.SectionHealth
}

// Blocklist manages the persisted keyword blocklist
type Blocklist interface {
	Blocked(ctx context.Context) ([]string, error)
	SetBlocked(ctx context.Context, keywords []string) error
}

// ViewRecorder records item views for the seen penalty
type ViewRecorder interface {
	RecordView(ctx context.Context, itemID string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	SectionNames() []string
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine Engine, blocklist Blocklist, views ViewRecorder, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		engine:    engine,
		blocklist: blocklist,
		views:     views,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsrank", "epaperhq", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /news/{section}", s.sectionNewsHandler)
		r.HandleFunc("POST /news/{section}/items/{id}/view", s.recordViewHandler)
		r.HandleFunc("GET /health/{section}", s.sectionHealthHandler)
		r.HandleFunc("GET /cache/stats", s.cacheStatsHandler)
		r.HandleFunc("DELETE /cache", s.clearCacheHandler)
		r.HandleFunc("GET /blocklist", s.getBlocklistHandler)
		r.HandleFunc("PUT /blocklist", s.setBlocklistHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
