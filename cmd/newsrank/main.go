package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/content"
	"github.com/epaperhq/newsrank/pkg/feed"
	"github.com/epaperhq/newsrank/pkg/ranking"
	"github.com/epaperhq/newsrank/pkg/scoring"
	"github.com/epaperhq/newsrank/pkg/sentiment"
	"github.com/epaperhq/newsrank/pkg/store"
	"github.com/epaperhq/newsrank/pkg/summary"
	"github.com/epaperhq/newsrank/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting newsrank version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	db, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	// feed acquisition
	analyzer := sentiment.NewAnalyzer(cfg.Sentiment)
	feedParser := feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	normalizer := feed.NewNormalizer(analyzer)

	var aggregator ranking.Aggregator
	if feeds := cfg.SectionFeeds("entertainment"); len(feeds) > 0 {
		aggregator = feed.NewEntertainmentAggregator(feedParser, normalizer, feeds)
	}
	orchestrator := ranking.NewOrchestrator(feedParser, normalizer, aggregator,
		cfg.Fetch.RetryBackoff, cfg.Fetch.MaxWorkers)

	// scoring
	calculator := scoring.NewCalculator(cfg.Scoring,
		scoring.NewConfigSources(cfg.Scoring.Sources),
		scoring.NewKeywordBreaking(cfg.Scoring.TrendingThreshold),
		scoring.DefaultSubScorers())

	// ranking pipeline
	var enricher ranking.Enricher
	enrichTop := 0
	if cfg.Enrichment.Enabled {
		enricher = content.NewExtractor(cfg.Enrichment.Timeout, cfg.Fetch.UserAgent)
		enrichTop = cfg.Enrichment.TopItems
	}

	engine := ranking.NewEngine(
		ranking.EngineConfig{
			Sections:     cfg.Sections,
			Filtering:    cfg.Filtering,
			Mode:         cfg.Scoring.Mode,
			EnrichTop:    enrichTop,
			MaxBodyChars: cfg.Enrichment.MaxBodyChars,
		},
		orchestrator,
		ranking.NewJaccardClusterer(),
		calculator,
		ranking.NewResultCache(cfg.Cache.TTL, cfg.CacheEnabled()),
		ranking.NewHealthTracker(),
		db,
		db,
		enricher,
	)
	if cfg.Summary.Enabled {
		engine.WithSummarizer(summary.New(cfg.Summary))
	}

	if cfg.Refresh.Enabled {
		refresher := ranking.NewRefresher(engine, cfg.SectionNames(), cfg.Refresh.Interval, cfg.Refresh.Limit)
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	srv := server.New(cfg, engine, db, db, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
