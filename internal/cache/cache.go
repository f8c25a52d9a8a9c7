package cache

import (
	"context"
	"sync"

	"github.com/arjunmehta/formcoach/pkg/models"
)

// Cache holds completed analysis results so repeated reads skip the disk.
// Implementations must be safe for concurrent use.
type Cache interface {
	SetAnalysis(ctx context.Context, analysis *models.Analysis) error
	GetAnalysis(ctx context.Context, videoID string) (*models.Analysis, bool, error)
}

// Memory implements Cache with a mutex-guarded map. Entries are never
// evicted; they live until process termination, like the job registry.
type Memory struct {
	mu       sync.RWMutex
	analyses map[string]*models.Analysis
}

func NewMemory() *Memory {
	return &Memory{analyses: make(map[string]*models.Analysis)}
}

func (c *Memory) SetAnalysis(_ context.Context, analysis *models.Analysis) error {
	c.mu.Lock()
	c.analyses[analysis.VideoID] = analysis
	c.mu.Unlock()
	return nil
}

func (c *Memory) GetAnalysis(_ context.Context, videoID string) (*models.Analysis, bool, error) {
	c.mu.RLock()
	analysis, ok := c.analyses[videoID]
	c.mu.RUnlock()
	return analysis, ok, nil
}
