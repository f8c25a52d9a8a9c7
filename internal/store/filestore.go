package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/arjunmehta/formcoach/pkg/models"
)

const metadataSuffix = "-metadata.json"
const analysisSuffix = "-analysis.json"

// FileStore implements the Store interface on a flat directory of per-job
// JSON files: one {videoId}-metadata.json and one {videoId}-analysis.json
// each, plus uploaded binaries in a separate directory. Analysis files are
// written once per job to a unique path, so no write contention arises.
type FileStore struct {
	dataDir   string
	uploadDir string
}

// NewFileStore creates both directories if they do not exist.
func NewFileStore(dataDir, uploadDir string) (*FileStore, error) {
	for _, dir := range []string{dataDir, uploadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return &FileStore{dataDir: dataDir, uploadDir: uploadDir}, nil
}

// Ping checks that the data directory is still reachable.
func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dataDir)
	return err
}

// SaveUpload streams the uploaded binary to the upload directory and returns
// the number of bytes written.
func (s *FileStore) SaveUpload(_ context.Context, storedName string, src io.Reader) (int64, error) {
	if storedName != filepath.Base(storedName) {
		return 0, fmt.Errorf("invalid stored name %q", storedName)
	}
	dst, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return 0, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		return 0, fmt.Errorf("write upload file: %w", err)
	}
	return n, nil
}

func (s *FileStore) SaveMetadata(_ context.Context, meta *models.VideoMetadata) error {
	if err := validID(meta.VideoID); err != nil {
		return err
	}
	return s.writeJSON(meta.VideoID+metadataSuffix, meta)
}

// ListMetadataByUser scans every metadata file in the data directory and
// returns the records whose userId matches.
func (s *FileStore) ListMetadataByUser(_ context.Context, userID string) ([]*models.VideoMetadata, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}

	videos := make([]*models.VideoMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metadataSuffix) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read metadata %s: %w", entry.Name(), err)
		}
		var meta models.VideoMetadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode metadata %s: %w", entry.Name(), err)
		}
		if meta.UserID == userID {
			videos = append(videos, &meta)
		}
	}
	return videos, nil
}

func (s *FileStore) SaveAnalysis(_ context.Context, analysis *models.Analysis) error {
	if err := validID(analysis.VideoID); err != nil {
		return err
	}
	return s.writeJSON(analysis.VideoID+analysisSuffix, analysis)
}

func (s *FileStore) GetAnalysis(_ context.Context, videoID string) (*models.Analysis, error) {
	if err := validID(videoID); err != nil {
		return nil, ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(s.dataDir, videoID+analysisSuffix))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}
	var analysis models.Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &analysis, nil
}

func (s *FileStore) writeJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, name), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// validID rejects anything that is not a plain UUID before it reaches a path
// join. Unknown-but-well-formed ids fall through to a normal not-found.
func validID(videoID string) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return fmt.Errorf("invalid video id %q: %w", videoID, err)
	}
	return nil
}
