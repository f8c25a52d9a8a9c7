package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/arjunmehta/formcoach/pkg/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	base := t.TempDir()
	s, err := NewFileStore(filepath.Join(base, "data"), filepath.Join(base, "uploads"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return s
}

func testMetadata(userID string) *models.VideoMetadata {
	id := uuid.New().String()
	return &models.VideoMetadata{
		VideoID:      id,
		Filename:     id + ".mp4",
		OriginalName: "swing.mp4",
		Size:         1024,
		Sport:        "golf",
		Collection:   "practice",
		UserID:       userID,
		UploadedAt:   time.Now().UTC(),
		Status:       models.JobStateProcessing,
	}
}

func TestSaveUpload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.SaveUpload(ctx, "abc.mp4", strings.NewReader("fake video bytes"))
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}
	if n != int64(len("fake video bytes")) {
		t.Errorf("expected %d bytes written, got %d", len("fake video bytes"), n)
	}

	raw, err := os.ReadFile(filepath.Join(s.uploadDir, "abc.mp4"))
	if err != nil {
		t.Fatalf("read back upload: %v", err)
	}
	if string(raw) != "fake video bytes" {
		t.Errorf("unexpected upload content %q", raw)
	}
}

func TestSaveUpload_RejectsPathTraversal(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.SaveUpload(context.Background(), "../escape.mp4", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal name")
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := uuid.New().String()

	analysis := &models.Analysis{
		VideoID:   id,
		Sport:     "golf",
		FormScore: 84,
		Duration:  12.5,
		Feedback:  []models.FeedbackItem{{Icon: "target", Title: "Grip", Description: "Loosen grip", Category: "technique"}},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SaveAnalysis(ctx, analysis); err != nil {
		t.Fatalf("save analysis: %v", err)
	}

	got, err := s.GetAnalysis(ctx, id)
	if err != nil {
		t.Fatalf("get analysis: %v", err)
	}
	if got.FormScore != 84 || got.Sport != "golf" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Feedback) != 1 || got.Feedback[0].Title != "Grip" {
		t.Errorf("feedback not preserved: %+v", got.Feedback)
	}
}

func TestGetAnalysis_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAnalysis(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAnalysis_MalformedID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAnalysis(context.Background(), "../../etc/passwd")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestListMetadataByUser_FiltersOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := testMetadata("alice")
	bob := testMetadata("bob")
	if err := s.SaveMetadata(ctx, alice); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	if err := s.SaveMetadata(ctx, bob); err != nil {
		t.Fatalf("save bob: %v", err)
	}

	videos, err := s.ListMetadataByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected exactly one record for alice, got %d", len(videos))
	}
	if videos[0].VideoID != alice.VideoID {
		t.Errorf("wrong record returned: %s", videos[0].VideoID)
	}
}

func TestListMetadataByUser_Empty(t *testing.T) {
	s := newTestStore(t)

	videos, err := s.ListMetadataByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if videos == nil || len(videos) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", videos)
	}
}

func TestListMetadataByUser_IgnoresAnalysisFiles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	meta := testMetadata("alice")
	if err := s.SaveMetadata(ctx, meta); err != nil {
		t.Fatalf("save metadata: %v", err)
	}
	if err := s.SaveAnalysis(ctx, &models.Analysis{VideoID: meta.VideoID, Sport: "golf"}); err != nil {
		t.Fatalf("save analysis: %v", err)
	}

	videos, err := s.ListMetadataByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != 1 {
		t.Errorf("analysis files must not be picked up by the scan, got %d records", len(videos))
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("ping on a fresh store: %v", err)
	}

	if err := os.RemoveAll(s.dataDir); err != nil {
		t.Fatalf("remove data dir: %v", err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Error("expected ping failure after data dir removal")
	}
}
