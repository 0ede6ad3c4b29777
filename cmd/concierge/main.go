package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/chat"
	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/healthinfo"
	"github.com/dubai-health/concierge/internal/insurance"
	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/shared/config"
	"github.com/dubai-health/concierge/internal/shared/logger"
	"github.com/dubai-health/concierge/internal/shared/metrics"
	"github.com/dubai-health/concierge/internal/shared/middleware"
	"github.com/dubai-health/concierge/internal/synthesis"
)

// App holds the long-lived application dependencies.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Cache  cache.Cache
	Redis  *cache.Redis
	Sheet  *facility.SheetSource
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	app := &App{Config: cfg, Logger: log}

	// Cache backend: Redis when configured, in-process otherwise.
	if cfg.Cache.RedisAddr != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, log)
		if err != nil {
			log.Warn("redis not available, using in-memory cache", zap.Error(err))
			app.Cache = cache.NewMemory()
		} else {
			app.Redis = rdb
			app.Cache = rdb
			defer rdb.Close()
		}
	} else {
		app.Cache = cache.NewMemory()
	}

	model := llm.NewClient(cfg.OpenAI, log)

	// Google Sheets pricing source (optional).
	if cfg.Sheets.Enabled() {
		sheet, err := facility.NewSheetSource(ctx, cfg.Sheets, app.Cache, cfg.Cache.SearchTTL, log)
		if err != nil {
			log.Warn("sheets source not available", zap.Error(err))
		} else {
			app.Sheet = sheet
			log.Info("sheets pricing source enabled", zap.String("sheetId", cfg.Sheets.SheetID))
		}
	}

	facilities := facility.NewResolver(model, app.Sheet, app.Cache, cfg.Cache.SearchTTL, log)
	plans := insurance.NewResolver(model, app.Cache, cfg.Cache.SearchTTL, log)
	health := healthinfo.NewResolver(model, app.Cache, cfg.Cache.SearchTTL, cfg.Cache.FallbackTTL, log)
	classifier := intent.NewClassifier(model, log)
	synth := synthesis.NewSynthesizer(model, log)

	orchestrator := chat.NewOrchestrator(classifier, facilities, plans, health, synth, log)
	chatHandler := chat.NewHandler(orchestrator, log)
	procedureHandler := facility.NewHandler(app.Sheet, facilities, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS)

	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(app))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/", infoHandler)

	limiter := middleware.NewIPRateLimiter(10, 20)
	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Mount("/chat", chatHandler.Routes())
		r.Mount("/procedures", procedureHandler.Routes())
	})

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No write deadline: the chat stream stays open for the whole
		// pipeline run.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
		close(done)
	}()

	log.Info("dubai health concierge started",
		zap.String("env", cfg.Server.Env),
		zap.Int("port", cfg.Server.Port),
		zap.String("model", cfg.OpenAI.Model),
		zap.Bool("redis", app.Redis != nil),
		zap.Bool("sheets", app.Sheet != nil))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}

	<-done
	log.Info("server stopped")
}

func infoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"name":    "Dubai Health Concierge",
		"version": "0.1.0",
		"docs":    "/api",
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func readyHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"server": "ready"}

		if app.Redis != nil {
			if err := app.Redis.Health(r.Context()); err != nil {
				checks["redis"] = "not ready: " + err.Error()
			} else {
				checks["redis"] = "ready"
			}
		} else {
			checks["redis"] = "not configured"
		}

		if app.Sheet != nil {
			checks["sheets"] = "ready"
		} else {
			checks["sheets"] = "not configured"
		}

		allReady := true
		for _, status := range checks {
			if status != "ready" && status != "not configured" {
				allReady = false
				break
			}
		}

		status := http.StatusOK
		if !allReady {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[bool]string{true: "ready", false: "not ready"}[allReady],
			"checks": checks,
		})
	}
}
