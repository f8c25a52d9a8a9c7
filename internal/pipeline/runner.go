// Package pipeline simulates the multi-stage video analysis. Each job runs in
// its own goroutine, advancing the job registry through the fixed stage table
// and pausing between stages; no frame of the upload is ever inspected.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arjunmehta/formcoach/internal/analysis"
	"github.com/arjunmehta/formcoach/internal/metrics"
	"github.com/arjunmehta/formcoach/internal/registry"
	"github.com/arjunmehta/formcoach/pkg/models"
)

// ResultStore persists finished analysis records.
type ResultStore interface {
	SaveAnalysis(ctx context.Context, analysis *models.Analysis) error
}

// ResultCache keeps finished analysis records in memory for the read path.
type ResultCache interface {
	SetAnalysis(ctx context.Context, analysis *models.Analysis) error
}

// Runner owns the background simulation tasks. Every task holds a cancel
// handle in the running map so shutdown has somewhere to attach; the
// originating HTTP request never blocks on, or hears back from, its task.
type Runner struct {
	registry registry.Registry
	store    ResultStore
	cache    ResultCache
	synth    *analysis.Synthesizer
	stages   []Stage

	mu      sync.Mutex
	running map[string]context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

func NewRunner(reg registry.Registry, store ResultStore, cache ResultCache, synth *analysis.Synthesizer, stages []Stage) *Runner {
	return &Runner{
		registry: reg,
		store:    store,
		cache:    cache,
		synth:    synth,
		stages:   stages,
		running:  make(map[string]context.CancelFunc),
	}
}

// Start launches the simulation for one uploaded video and returns
// immediately. After Shutdown has been called new jobs are failed right away
// instead of being silently dropped.
func (r *Runner) Start(meta *models.VideoMetadata) {
	ctx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		cancel()
		if err := r.registry.Fail(meta.VideoID, "server is shutting down"); err != nil {
			slog.Warn("fail job on closed runner", "video_id", meta.VideoID, "error", err)
		}
		return
	}
	r.running[meta.VideoID] = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	metrics.JobStarted()
	go r.run(ctx, meta.VideoID, meta.Sport)
}

// InFlight reports how many simulations are currently running.
func (r *Runner) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.running)
}

// Shutdown cancels all in-flight simulations and waits for them to drain, or
// returns the context error if the deadline expires first.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	for _, cancel := range r.running {
		cancel()
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) run(ctx context.Context, videoID, sport string) {
	defer func() {
		r.mu.Lock()
		delete(r.running, videoID)
		r.mu.Unlock()
		r.wg.Done()
		metrics.JobFinished()
	}()

	for _, stage := range r.stages {
		if err := r.registry.Advance(videoID, stage.Progress, stage.Label); err != nil {
			// Only the owning task writes this entry, so this means the
			// registry lost the record; nothing useful left to do.
			slog.Error("advance job", "video_id", videoID, "stage", stage.Label, "error", err)
			return
		}

		timer := time.NewTimer(stage.Duration)
		select {
		case <-ctx.Done():
			timer.Stop()
			r.fail(videoID, "processing canceled")
			return
		case <-timer.C:
		}
	}

	result := r.synth.Synthesize(videoID, sport)

	if err := r.store.SaveAnalysis(ctx, result); err != nil {
		slog.Error("persist analysis", "video_id", videoID, "error", err)
		r.fail(videoID, "failed to persist analysis")
		return
	}
	if err := r.cache.SetAnalysis(ctx, result); err != nil {
		slog.Warn("cache analysis", "video_id", videoID, "error", err)
	}

	if err := r.registry.Complete(videoID); err != nil {
		slog.Error("complete job", "video_id", videoID, "error", err)
		return
	}
	metrics.IncJobProcessed(models.JobStateCompleted)
	slog.Info("analysis complete", "video_id", videoID, "sport", result.Sport, "form_score", result.FormScore)
}

func (r *Runner) fail(videoID, reason string) {
	if err := r.registry.Fail(videoID, reason); err != nil {
		slog.Error("fail job", "video_id", videoID, "error", err)
		return
	}
	metrics.IncJobProcessed(models.JobStateFailed)
}
