// Harmony - Holistic wealth diagnostics for the whole client.
// Copyright (c) 2025 Heru AI
// Licensed under the Apache License 2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/heru-ai/harmony/internal/api"
	"github.com/heru-ai/harmony/internal/assessment"
	"github.com/heru-ai/harmony/internal/bus"
	"github.com/heru-ai/harmony/internal/cache"
	"github.com/heru-ai/harmony/internal/domain"
	"github.com/heru-ai/harmony/internal/recommend"
	"github.com/heru-ai/harmony/internal/repository"
	"github.com/heru-ai/harmony/internal/screen"
	"github.com/heru-ai/harmony/internal/worker"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	// Initialize structured logger
	logLevel := slog.LevelInfo
	if os.Getenv("HARMONY_DEBUG") == "true" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting harmony",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	// Load configuration
	cfg := domain.DefaultConfig()

	// Check for Pro tier via environment
	if os.Getenv("HARMONY_TIER") == "pro" {
		cfg = domain.ProConfig()
		slog.Info("running in Pro tier mode")
	}

	slog.Info("configuration loaded",
		"tier", cfg.Tier,
		"repository", cfg.Repository.Driver,
		"cache", cfg.Cache.Type,
		"eventbus", cfg.EventBus.Type,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Initialize Repository
	repo, err := repository.New(cfg.Repository)
	if err != nil {
		slog.Error("failed to initialize repository", "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	slog.Info("repository initialized", "driver", cfg.Repository.Driver)

	// Seed tenant catalogs with the default 12 products on first run.
	tenantIDs := parseTenants(os.Getenv("HARMONY_TENANTS"))
	if sqlRepo, ok := repo.(*repository.SQLRepository); ok {
		for _, tenantID := range tenantIDs {
			if err := sqlRepo.SeedCatalog(ctx, tenantID, recommend.DefaultCatalog()); err != nil {
				slog.Warn("catalog seeding failed", "tenant_id", tenantID, "error", err)
			}
		}
	}

	// Initialize Cache
	cacheImpl, err := cache.New(cfg.Cache)
	if err != nil {
		slog.Error("failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer cacheImpl.Close()
	slog.Info("cache initialized", "type", cfg.Cache.Type)

	// Initialize EventBus
	busImpl, err := bus.New(cfg.EventBus)
	if err != nil {
		slog.Error("failed to initialize event bus", "error", err)
		os.Exit(1)
	}
	defer busImpl.Close()
	slog.Info("event bus initialized", "type", cfg.EventBus.Type)

	// Initialize Screening Engine
	screenEngine, err := screen.NewEngine(100)
	if err != nil {
		slog.Error("failed to initialize screening engine", "error", err)
		os.Exit(1)
	}
	defer screenEngine.Close()

	// Load screening rules from database (no hardcoded defaults - configure via API)
	if err := loadScreenRulesFromDatabase(ctx, repo, screenEngine); err != nil {
		slog.Error("failed to load screening rules", "error", err)
		os.Exit(1)
	}
	slog.Info("screening engine initialized", "rules_count", screenEngine.RulesCount())

	// Initialize Assessment Pipeline
	pipeline := assessment.NewPipeline(repo, cacheImpl, busImpl, screenEngine, logger)
	slog.Info("assessment pipeline initialized")

	// Initialize async Worker (Pro tier)
	var asyncWorker *worker.Worker
	if cfg.Tier == domain.TierPro || os.Getenv("HARMONY_ASYNC_WORKER") == "true" {
		asyncWorker = worker.NewWorker(busImpl, pipeline)

		workerCfg := worker.Config{
			TenantIDs: tenantIDs,
		}

		if err := asyncWorker.Start(workerCfg); err != nil {
			slog.Error("failed to start async worker", "error", err)
		} else {
			slog.Info("async worker started", "tenant_count", len(tenantIDs))
		}
	}

	// Initialize Server
	srv := api.NewServer(cfg.Server, repo, cacheImpl, busImpl, pipeline, screenEngine, Version)

	// Start Server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("harmony is ready",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	printBanner(cfg, Version)

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down...")

	// Stop async worker first
	if asyncWorker != nil {
		if err := asyncWorker.Stop(); err != nil {
			slog.Error("failed to stop async worker", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("harmony shutdown complete")
}

// GlobalTenantID is used for screening rules that apply to all tenants.
const GlobalTenantID = "*"

// parseTenants splits a comma-separated tenant list from the environment.
func parseTenants(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// loadScreenRulesFromDatabase loads screening rules into the engine.
// All rules must be configured via POST /screens API - no hardcoded defaults.
func loadScreenRulesFromDatabase(ctx context.Context, repo domain.Repository, engine *screen.Engine) error {
	dbRules, err := repo.ListScreenRules(ctx, GlobalTenantID)
	if err != nil {
		slog.Warn("failed to list screening rules from database", "error", err)
		return nil // Start with empty rules - they can be added via API
	}

	if len(dbRules) > 0 {
		slog.Info("loading screening rules from database", "count", len(dbRules))
		return engine.LoadRules(dbRules)
	}

	slog.Info("no screening rules in database - configure via POST /screens API")
	return nil
}

func printBanner(cfg *domain.Config, version string) {
	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════╗")
	fmt.Println("  ║               🪷 HARMONY                  ║")
	fmt.Println("  ║     Holistic Wealth Diagnostic Engine     ║")
	fmt.Println("  ║      Wealth in tune with wellbeing.       ║")
	fmt.Println("  ╚═══════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Version:  %s\n", version)
	fmt.Printf("  Tier:     %s\n", cfg.Tier)
	fmt.Printf("  Server:   http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println()
	fmt.Println("  Endpoints:")
	fmt.Println("    POST /assess                    - Run a full assessment")
	fmt.Println("    GET  /assessments/{id}          - Get assessment by ID")
	fmt.Println("    GET  /assessments/{id}/report   - Get the holistic report")
	fmt.Println("    GET  /clients/{id}/assessments  - Per-client history")
	fmt.Println("    GET  /products                  - List the product catalog")
	fmt.Println("    POST /products                  - Add or update a product")
	fmt.Println("    POST /products/reload           - Re-read the catalog")
	fmt.Println("    GET  /archetypes                - List wealth archetypes")
	fmt.Println("    GET  /screens                   - List screening rules")
	fmt.Println("    POST /screens                   - Create a screening rule")
	fmt.Println("    POST /screens/reload            - Hot-reload screening rules")
	fmt.Println("    GET  /health                    - Health check")
	fmt.Println()
}
