package store

import (
	"context"
	"errors"
	"io"

	"github.com/arjunmehta/formcoach/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the persistence interface. All disk operations go through here so
// tests can substitute a fake instead of touching the filesystem.
type Store interface {
	Ping(ctx context.Context) error

	SaveUpload(ctx context.Context, storedName string, src io.Reader) (int64, error)

	SaveMetadata(ctx context.Context, meta *models.VideoMetadata) error
	ListMetadataByUser(ctx context.Context, userID string) ([]*models.VideoMetadata, error)

	SaveAnalysis(ctx context.Context, analysis *models.Analysis) error
	GetAnalysis(ctx context.Context, videoID string) (*models.Analysis, error)
}
