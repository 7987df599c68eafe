// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/config"
	"github.com/dockly/dockly-go/internal/handler/api"
	"github.com/dockly/dockly-go/internal/logging"
	"github.com/dockly/dockly-go/internal/middleware"
	"github.com/dockly/dockly-go/internal/scheduler"
	"github.com/dockly/dockly-go/internal/session"
	"github.com/dockly/dockly-go/internal/store"
	"github.com/dockly/dockly-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// crudHandlers defines the standard CRUD handler methods for one content kind.
type crudHandlers struct {
	List   http.HandlerFunc
	Get    http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a resource. Reads accept
// any authenticated caller; mutations require the admin role.
func registerCRUD(r chi.Router, base string, admin func(http.Handler) http.Handler, h crudHandlers) {
	baseID := base + "/{id}"
	r.Get(base, h.List)
	r.Get(baseID, h.Get)
	r.With(admin).Post(base, h.Create)
	r.With(admin).Put(baseID, h.Update)
	r.With(admin).Delete(baseID, h.Delete)
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Dockly - cruise ship work content backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_SESSION_SECRET       Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_DB_PATH              SQLite database path (default: ./data/dockly.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_SERVER_PORT          Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_ENV                  Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_DO_SEED              Seed default content at startup (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_OWNER_OPEN_ID        Open ID auto-promoted to admin on sign-in\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_AUTH_CALLBACK_SECRET Shared secret for the OAuth callback endpoint\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DOCKLY_REDIS_URL            Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("dockly %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	slog.Info("starting dockly", "version", versionInfo.Version, "commit", versionInfo.GitCommit)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the events table
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	eventLogHandler := logging.NewEventLogHandler(textHandler, db)
	logger = slog.New(eventLogHandler)
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Seed default content when enabled
	ctx := context.Background()
	queries := store.New(db)
	if cfg.DoSeed {
		if err := queries.Seed(ctx, logger); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize content cache (memory, or Redis when configured)
	cacher := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	contentCache := cache.NewContentCache(cacher, time.Duration(cfg.CacheTTL)*time.Second)

	// Initialize and start scheduler
	sched := scheduler.New(db, contentCache, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// API handler
	apiHandler := api.NewHandler(db, cfg, sessionManager, contentCache)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	r.Route("/api/v1", func(r chi.Router) {
		// Global rate limiting for the whole API surface
		apiRateLimiter := middleware.NewGlobalRateLimiter(100, 200)
		r.Use(apiRateLimiter.Middleware())

		r.Get("/status", apiHandler.Status)

		// Public read endpoints: no authentication, language negotiation,
		// tighter rate limit
		r.Route("/public", func(r chi.Router) {
			publicRateLimiter := middleware.NewGlobalRateLimiter(10, 20)
			r.Use(publicRateLimiter.Middleware())
			r.Use(middleware.Language())

			r.Get("/work-areas", apiHandler.PublicListWorkAreas)
			r.Get("/boarding-steps", apiHandler.PublicListBoardingSteps)
			r.Get("/requirements", apiHandler.PublicListRequirements)
			r.Get("/salaries", apiHandler.PublicListSalaries)
			r.Get("/fraud-signals", apiHandler.PublicListFraudSignals)
			r.Get("/myths", apiHandler.PublicListMyths)
			r.Get("/disclaimers", apiHandler.PublicListDisclaimers)
			r.Get("/disclaimers/{key}", apiHandler.PublicGetDisclaimer)
			r.Get("/pages", apiHandler.PublicListPages)
			r.Get("/pages/{slug}", apiHandler.PublicGetPageBySlug)
			r.Get("/about", apiHandler.PublicGetAboutPage)
		})

		// Auth endpoints: session cookie based, CSRF protected. The login
		// endpoint additionally runs through per-IP login protection.
		r.Route("/auth", func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.LoadUser(sessionManager, db))
			r.With(apiHandler.LoginProtection().Middleware()).Post("/login", apiHandler.Login)
			r.Post("/callback", apiHandler.Callback)
			r.Post("/logout", apiHandler.Logout)
			r.Get("/me", apiHandler.Me)
		})

		// Admin surface: session or API key. API-key requests carry an
		// Authorization header and skip CSRF; per-key rate limiting applies.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SkipCSRF())
			r.Use(csrfMiddleware)
			r.Use(middleware.LoadUser(sessionManager, db))
			r.Use(middleware.OptionalAPIKeyAuth(db))
			r.Use(middleware.APIRateLimit(10, 20))
			r.Use(middleware.RequireAuth())

			admin := middleware.RequireAdmin()

			registerCRUD(r, "/work-areas", admin, crudHandlers{
				List: apiHandler.ListWorkAreas, Get: apiHandler.GetWorkArea, Create: apiHandler.CreateWorkArea,
				Update: apiHandler.UpdateWorkArea, Delete: apiHandler.DeleteWorkArea,
			})
			registerCRUD(r, "/boarding-steps", admin, crudHandlers{
				List: apiHandler.ListBoardingSteps, Get: apiHandler.GetBoardingStep, Create: apiHandler.CreateBoardingStep,
				Update: apiHandler.UpdateBoardingStep, Delete: apiHandler.DeleteBoardingStep,
			})
			registerCRUD(r, "/requirements", admin, crudHandlers{
				List: apiHandler.ListRequirements, Get: apiHandler.GetRequirement, Create: apiHandler.CreateRequirement,
				Update: apiHandler.UpdateRequirement, Delete: apiHandler.DeleteRequirement,
			})
			registerCRUD(r, "/salaries", admin, crudHandlers{
				List: apiHandler.ListSalaryEntries, Get: apiHandler.GetSalaryEntry, Create: apiHandler.CreateSalaryEntry,
				Update: apiHandler.UpdateSalaryEntry, Delete: apiHandler.DeleteSalaryEntry,
			})
			registerCRUD(r, "/fraud-signals", admin, crudHandlers{
				List: apiHandler.ListFraudSignals, Get: apiHandler.GetFraudSignal, Create: apiHandler.CreateFraudSignal,
				Update: apiHandler.UpdateFraudSignal, Delete: apiHandler.DeleteFraudSignal,
			})
			registerCRUD(r, "/myths", admin, crudHandlers{
				List: apiHandler.ListMyths, Get: apiHandler.GetMyth, Create: apiHandler.CreateMyth,
				Update: apiHandler.UpdateMyth, Delete: apiHandler.DeleteMyth,
			})

			// Disclaimers are addressed by key, not numeric id
			r.Get("/disclaimers", apiHandler.ListDisclaimers)
			r.Get("/disclaimers/{key}", apiHandler.GetDisclaimer)
			r.With(admin).Post("/disclaimers", apiHandler.CreateDisclaimer)
			r.With(admin).Put("/disclaimers/{key}", apiHandler.UpdateDisclaimer)
			r.With(admin).Delete("/disclaimers/{key}", apiHandler.DeleteDisclaimer)

			registerCRUD(r, "/pages", admin, crudHandlers{
				List: apiHandler.ListPages, Get: apiHandler.GetPage, Create: apiHandler.CreatePage,
				Update: apiHandler.UpdatePage, Delete: apiHandler.DeletePage,
			})
			r.Get("/pages/slug/{slug}", apiHandler.GetPageBySlug)

			r.Get("/about", apiHandler.GetAboutPage)
			r.With(admin).Put("/about", apiHandler.UpdateAboutPage)

			// Admin-only operations
			r.Group(func(r chi.Router) {
				r.Use(admin)

				r.Post("/seed", apiHandler.Seed)
				r.Get("/audit", apiHandler.ListAuditEntries)
				r.Get("/events", apiHandler.ListEvents)
				r.Get("/api-keys", apiHandler.ListAPIKeys)
				r.Post("/api-keys", apiHandler.CreateAPIKey)
				r.Delete("/api-keys/{id}", apiHandler.RevokeAPIKey)
			})
		})
	})
	slog.Info("REST API v1 mounted at /api/v1")

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
