// Package video orchestrates the upload lifecycle: persist the artifact,
// record its metadata, register the job, and hand it to the pipeline runner.
package video

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arjunmehta/formcoach/internal/cache"
	"github.com/arjunmehta/formcoach/internal/metrics"
	"github.com/arjunmehta/formcoach/internal/registry"
	"github.com/arjunmehta/formcoach/internal/store"
	"github.com/arjunmehta/formcoach/pkg/models"
)

// Starter launches the background simulation for an accepted upload.
type Starter interface {
	Start(meta *models.VideoMetadata)
}

// UploadInput carries one validated multipart upload.
type UploadInput struct {
	File         io.Reader
	OriginalName string
	Sport        string
	Collection   string
	UserID       string
}

// UploadReceipt is the immediate acknowledgment; all further communication
// happens through the status and analysis endpoints.
type UploadReceipt struct {
	VideoID  string
	Filename string
	Size     int64
}

type Service struct {
	store    store.Store
	registry registry.Registry
	cache    cache.Cache
	runner   Starter
}

func NewService(st store.Store, reg registry.Registry, c cache.Cache, runner Starter) *Service {
	return &Service{store: st, registry: reg, cache: c, runner: runner}
}

// Upload stores the binary and metadata, creates the job record, and starts
// the simulator. It returns as soon as the job is registered; processing
// continues detached from the request.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadReceipt, error) {
	videoID := uuid.New().String()
	storedName := videoID + strings.ToLower(filepath.Ext(in.OriginalName))

	size, err := s.store.SaveUpload(ctx, storedName, in.File)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	meta := &models.VideoMetadata{
		VideoID:      videoID,
		Filename:     storedName,
		OriginalName: in.OriginalName,
		Size:         size,
		Sport:        in.Sport,
		Collection:   in.Collection,
		UserID:       in.UserID,
		UploadedAt:   time.Now().UTC(),
		// Upload-time snapshot only; the registry owns live status.
		Status:   models.JobStateProcessing,
		Progress: 0,
	}
	if err := s.store.SaveMetadata(ctx, meta); err != nil {
		return nil, fmt.Errorf("save metadata: %w", err)
	}

	s.registry.Create(videoID)
	s.runner.Start(meta)
	metrics.ObserveUpload(size)

	return &UploadReceipt{VideoID: videoID, Filename: in.OriginalName, Size: size}, nil
}

// Status returns the live job record from the registry.
func (s *Service) Status(_ context.Context, videoID string) (*models.Job, error) {
	return s.registry.Get(videoID)
}

// Analysis reads the result from the memory cache, falling back to the
// persisted file and backfilling the cache on a hit.
func (s *Service) Analysis(ctx context.Context, videoID string) (*models.Analysis, error) {
	if analysis, ok, err := s.cache.GetAnalysis(ctx, videoID); err == nil && ok {
		return analysis, nil
	}

	analysis, err := s.store.GetAnalysis(ctx, videoID)
	if err != nil {
		return nil, err
	}
	// Best-effort backfill; a cache fault must not mask a good read.
	_ = s.cache.SetAnalysis(ctx, analysis)
	return analysis, nil
}

// ListByUser returns the metadata records owned by userID.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*models.VideoMetadata, error) {
	return s.store.ListMetadataByUser(ctx, userID)
}
