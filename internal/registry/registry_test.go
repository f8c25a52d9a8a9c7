package registry

import (
	"sync"
	"testing"

	"github.com/arjunmehta/formcoach/pkg/models"
)

func TestCreate_InitialRecord(t *testing.T) {
	r := NewInMemory()
	job := r.Create("vid-1")

	if job.Progress != 0 {
		t.Errorf("expected progress 0, got %d", job.Progress)
	}
	if job.State != models.JobStateProcessing {
		t.Errorf("expected state processing, got %q", job.State)
	}
	if job.StartTime.IsZero() {
		t.Error("start time not stamped")
	}
	if job.CompletedTime != nil {
		t.Error("completed time should be unset on create")
	}
}

func TestCreate_CollisionLastWriteWins(t *testing.T) {
	r := NewInMemory()
	r.Create("vid-1")
	if err := r.Advance("vid-1", 50, "Running pose estimation"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	r.Create("vid-1")

	job, err := r.Get("vid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Progress != 0 || job.CurrentStage != "" {
		t.Errorf("second create should reset the record, got progress=%d stage=%q", job.Progress, job.CurrentStage)
	}
}

func TestAdvance_PreservesStartTime(t *testing.T) {
	r := NewInMemory()
	created := r.Create("vid-1")

	if err := r.Advance("vid-1", 20, "Extracting frames"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	job, err := r.Get("vid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Progress != 20 {
		t.Errorf("expected progress 20, got %d", job.Progress)
	}
	if job.CurrentStage != "Extracting frames" {
		t.Errorf("unexpected stage %q", job.CurrentStage)
	}
	if !job.StartTime.Equal(created.StartTime) {
		t.Error("advance must preserve the original start time")
	}
}

func TestAdvance_UnknownJob(t *testing.T) {
	r := NewInMemory()
	if err := r.Advance("nope", 20, "Extracting frames"); err != ErrJobNotFound {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	r := NewInMemory()
	r.Create("vid-1")
	if err := r.Advance("vid-1", 100, "Finalizing"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if err := r.Complete("vid-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	job, _ := r.Get("vid-1")
	if job.State != models.JobStateCompleted {
		t.Errorf("expected completed, got %q", job.State)
	}
	if job.Progress != 100 {
		t.Errorf("expected progress 100, got %d", job.Progress)
	}
	if job.CurrentStage != "" {
		t.Errorf("current stage should be dropped on completion, got %q", job.CurrentStage)
	}
	if job.CompletedTime == nil {
		t.Error("completed time not stamped")
	}
}

func TestFail(t *testing.T) {
	r := NewInMemory()
	r.Create("vid-1")
	if err := r.Advance("vid-1", 100, "Finalizing"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if err := r.Fail("vid-1", "failed to persist analysis"); err != nil {
		t.Fatalf("fail: %v", err)
	}

	job, _ := r.Get("vid-1")
	if job.State != models.JobStateFailed {
		t.Errorf("expected failed, got %q", job.State)
	}
	if job.Error != "failed to persist analysis" {
		t.Errorf("unexpected error message %q", job.Error)
	}
	if job.Progress != 100 {
		t.Errorf("fail should leave progress untouched, got %d", job.Progress)
	}
	if job.CompletedTime == nil {
		t.Error("completed time not stamped on failure")
	}
}

func TestGet_UnknownJob(t *testing.T) {
	r := NewInMemory()
	if _, err := r.Get("nope"); err != ErrJobNotFound {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	r := NewInMemory()
	r.Create("vid-1")

	job, _ := r.Get("vid-1")
	job.Progress = 99

	again, _ := r.Get("vid-1")
	if again.Progress != 0 {
		t.Error("mutating a returned record must not affect the registry")
	}
}

func TestConcurrentWriters(t *testing.T) {
	r := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		id := "vid-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
		r.Create(id)
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for p := 10; p <= 100; p += 10 {
				if err := r.Advance(id, p, "stage"); err != nil {
					t.Errorf("advance %s: %v", id, err)
					return
				}
				if _, err := r.Get(id); err != nil {
					t.Errorf("get %s: %v", id, err)
					return
				}
			}
			if err := r.Complete(id); err != nil {
				t.Errorf("complete %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()
}
