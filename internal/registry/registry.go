// Package registry tracks the live status of processing jobs. Records exist
// only in process memory: a restart loses all in-flight and historical jobs.
package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/arjunmehta/formcoach/pkg/models"
)

var ErrJobNotFound = errors.New("job not found")

// Registry is the job status interface. The upload path creates entries, the
// pipeline runner advances them, and the status endpoint reads them.
// Implementations must be safe for concurrent use.
type Registry interface {
	Create(videoID string) *models.Job
	Advance(videoID string, progress int, stage string) error
	Complete(videoID string) error
	Fail(videoID string, reason string) error
	Get(videoID string) (*models.Job, error)
}

// InMemory implements Registry with a mutex-guarded map. There is no
// eviction; entries live until process termination.
type InMemory struct {
	mu   sync.RWMutex
	jobs map[string]*models.Job
}

func NewInMemory() *InMemory {
	return &InMemory{jobs: make(map[string]*models.Job)}
}

// Create inserts a fresh record at progress 0, state processing. Callers
// always generate fresh UUIDs, so a collision is not expected; if one occurs
// the last write wins.
func (r *InMemory) Create(videoID string) *models.Job {
	job := &models.Job{
		VideoID:   videoID,
		Progress:  0,
		State:     models.JobStateProcessing,
		StartTime: time.Now().UTC(),
	}
	r.mu.Lock()
	r.jobs[videoID] = job
	r.mu.Unlock()

	snapshot := *job
	return &snapshot
}

// Advance overwrites progress and the current stage label, preserving the
// original start time.
func (r *InMemory) Advance(videoID string, progress int, stage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[videoID]
	if !ok {
		return ErrJobNotFound
	}
	job.Progress = progress
	job.CurrentStage = stage
	return nil
}

// Complete marks the job finished: progress 100, stage dropped, completion
// time stamped.
func (r *InMemory) Complete(videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[videoID]
	if !ok {
		return ErrJobNotFound
	}
	now := time.Now().UTC()
	job.State = models.JobStateCompleted
	job.Progress = 100
	job.CurrentStage = ""
	job.CompletedTime = &now
	return nil
}

// Fail transitions the job into the failed state with a reason. Progress is
// left where the pipeline last set it.
func (r *InMemory) Fail(videoID string, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[videoID]
	if !ok {
		return ErrJobNotFound
	}
	now := time.Now().UTC()
	job.State = models.JobStateFailed
	job.CurrentStage = ""
	job.Error = reason
	job.CompletedTime = &now
	return nil
}

// Get returns a snapshot copy of the record, so callers never observe partial
// writes from the owning pipeline task.
func (r *InMemory) Get(videoID string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[videoID]
	if !ok {
		return nil, ErrJobNotFound
	}
	snapshot := *job
	return &snapshot, nil
}
