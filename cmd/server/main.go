// Package main is the entrypoint for the FormCoach API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunmehta/formcoach/internal/analysis"
	"github.com/arjunmehta/formcoach/internal/api"
	"github.com/arjunmehta/formcoach/internal/api/handler"
	"github.com/arjunmehta/formcoach/internal/api/response"
	"github.com/arjunmehta/formcoach/internal/cache"
	"github.com/arjunmehta/formcoach/internal/config"
	"github.com/arjunmehta/formcoach/internal/metrics"
	"github.com/arjunmehta/formcoach/internal/pipeline"
	"github.com/arjunmehta/formcoach/internal/registry"
	"github.com/arjunmehta/formcoach/internal/store"
	"github.com/arjunmehta/formcoach/internal/video"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "env", cfg.Server.Env, "data_dir", cfg.Storage.DataDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Create the file store (also creates the directories)
	fileStore, err := store.NewFileStore(cfg.Storage.DataDir, cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("create file store: %w", err)
	}
	slog.Info("storage ready", "data_dir", cfg.Storage.DataDir, "upload_dir", cfg.Storage.UploadDir)

	// 3. In-process state: job registry and analysis cache. Both live in
	// memory only; a restart forgets every in-flight and historical job.
	jobRegistry := registry.NewInMemory()
	analysisCache := cache.NewMemory()

	// 4. Background pipeline
	synth := analysis.NewSynthesizer(nil)
	runner := pipeline.NewRunner(jobRegistry, fileStore, analysisCache, synth, pipeline.DefaultStages())

	// 5. Service + metrics
	svc := video.NewService(fileStore, jobRegistry, analysisCache, runner)
	metrics.MustRegister()

	// 6. Build router with dependencies
	deps := api.Dependencies{
		HealthHandler:     healthHandler(fileStore, runner),
		UploadHandler:     handler.NewUploadHandler(svc, cfg.Upload.MaxBytes),
		StatusHandler:     handler.NewStatusHandler(svc),
		AnalysisHandler:   handler.NewAnalysisHandler(svc),
		UserVideosHandler: handler.NewUserVideosHandler(svc),
		MetricsHandler:    metrics.Handler(),
	}
	router := api.NewRouter(deps)

	// 7. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  5 * time.Minute, // large multipart bodies
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Stop in-flight simulations after the listener has drained; canceled
	// jobs transition to failed rather than lingering at partial progress.
	if err := runner.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("pipeline shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks storage reachability and reports pipeline load.
func healthHandler(s store.Store, runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"storage": "ok",
		}
		if err := s.Ping(r.Context()); err != nil {
			checks["storage"] = "degraded"
		}

		if checks["storage"] != "ok" {
			response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
				"One or more services degraded", checks)
			return
		}

		response.JSON(w, map[string]any{
			"status":         "ok",
			"services":       checks,
			"jobs_in_flight": runner.InFlight(),
		})
	}
}
