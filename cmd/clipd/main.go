// Clipd backend server: the clipper HTTP API, tiered LLM calling
// with usage accounting, and the smart-routed agent orchestrator.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clipdock/clipd/pkg/agent"
	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/api"
	"github.com/clipdock/clipd/pkg/billing"
	"github.com/clipdock/clipd/pkg/catalog"
	"github.com/clipdock/clipd/pkg/cleanup"
	"github.com/clipdock/clipd/pkg/config"
	"github.com/clipdock/clipd/pkg/database"
	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/personalize"
	"github.com/clipdock/clipd/pkg/plan"
	"github.com/clipdock/clipd/pkg/routing"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting clipd", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	cfgStats := cfg.Stats()
	slog.Info("Configuration loaded",
		"seed_models", cfgStats.SeedModels,
		"enabled_providers", cfgStats.EnabledProviders)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	catalogService := services.NewCatalogService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	callLogService := services.NewCallLogService(dbClient.Client)
	cacheService := services.NewCacheService(dbClient.Client)
	tagService := services.NewTagService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Model catalog: seed from models.yaml, then serve from a snapshot
	// filtered to providers with credentials.
	registry := catalog.NewRegistry(catalogService, cfg.Providers, cfg.Defaults.CatalogCacheTTL)
	seedEntries := make([]models.ModelEntry, len(cfg.CatalogSeed))
	for i, e := range cfg.CatalogSeed {
		seedEntries[i] = e.ToModelEntry()
	}
	if err := registry.Seed(ctx, seedEntries); err != nil {
		slog.Error("Failed to seed model catalog", "error", err)
		os.Exit(1)
	}

	// 5. LLM stack: provider gateway, tiered caller, accountant
	gateway := llm.NewGateway(cfg.Providers, cfg.Defaults.LLMCallTimeout)
	caller := llm.NewCaller(registry, gateway, callLogService)
	accountant := billing.NewAccountant(usageService, registry, cfg.Defaults.MonthlyQuotaWTU)

	// 6. Personalization and the clipper pipeline
	ranker := personalize.NewRanker(tagService, caller, cfg.Defaults.Personalization)
	backfiller := personalize.NewBackfiller(tagService, caller)
	pipeline := summarize.NewPipeline(
		extract.New(), caller, cacheService, accountant, ranker,
		cfg.Defaults.CacheTTL, cfg.Defaults.TagCount)

	// 7. Agent orchestration
	sessions := agentctx.NewManager(cfg.Defaults.SessionMaxAge)
	agents := agent.NewRegistry()
	agent.RegisterBuiltins(agents, gateway, defaultAgentAlias(ctx, registry))
	base := agent.NewBase(registry, accountant)
	coordinator := agent.NewCoordinator(agents, base, sessions)
	planExecutor := plan.NewExecutor(agents, base)

	// 8. Smart routing: selector, legacy adapter, router
	stats := routing.NewStats()
	selector := routing.NewSelector(registry, accountant, stats)
	legacy := routing.NewPipelineLegacy(pipeline, dbClient)
	router := routing.NewRouter(selector, coordinator, sessions, legacy, stats, accountant)

	// 9. Background janitor
	janitor := cleanup.NewService(cfg.Defaults.JanitorInterval, cacheService, sessions, backfiller)
	janitor.Start(ctx)
	defer janitor.Stop()

	// 10. HTTP server
	server := api.NewServer(cfg, api.Deps{
		DB:         dbClient,
		Summarizer: pipeline,
		Accounts:   accountant,
		Router:     router,
		Catalog:    catalogService,
		Plans:      planExecutor,
		Sessions:   sessions,
		CallStats:  callLogService,
		CacheStats: cacheService,
	})
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Clipd started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// defaultAgentAlias resolves the compiled-in fallback model for built-in
// agents from the standard tier. An empty alias is tolerated; agents then
// fail per-request until the catalog has a serving standard model.
func defaultAgentAlias(ctx context.Context, registry *catalog.Registry) string {
	entry, err := registry.Primary(ctx, models.TierStandard)
	if err != nil {
		slog.Warn("No standard-tier model available for agent default", "error", err)
		return ""
	}
	return entry.Alias
}
