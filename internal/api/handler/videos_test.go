package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arjunmehta/formcoach/pkg/models"
)

type mockLister struct {
	fn func(userID string) ([]*models.VideoMetadata, error)
}

func (m *mockLister) ListByUser(_ context.Context, userID string) ([]*models.VideoMetadata, error) {
	return m.fn(userID)
}

func TestUserVideosHandler_Success(t *testing.T) {
	h := NewUserVideosHandler(&mockLister{fn: func(userID string) ([]*models.VideoMetadata, error) {
		return []*models.VideoMetadata{
			{VideoID: "v1", UserID: userID, Sport: "golf"},
			{VideoID: "v2", UserID: userID, Sport: "tennis"},
		}, nil
	}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, getWithParam(t, "/api/users/alice/videos", "userID", "alice"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var videos []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&videos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(videos) != 2 {
		t.Errorf("expected 2 records, got %d", len(videos))
	}
}

func TestUserVideosHandler_EmptyArrayNotNull(t *testing.T) {
	h := NewUserVideosHandler(&mockLister{fn: func(string) ([]*models.VideoMetadata, error) {
		return nil, nil
	}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, getWithParam(t, "/api/users/nobody/videos", "userID", "nobody"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Errorf("expected a JSON array, got %s", rec.Body.String())
	}

	var videos []any
	if err := json.NewDecoder(rec.Body).Decode(&videos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("expected empty array, got %v", videos)
	}
}

func TestUserVideosHandler_ScanFault(t *testing.T) {
	h := NewUserVideosHandler(&mockLister{fn: func(string) ([]*models.VideoMetadata, error) {
		return nil, errors.New("data dir unreadable")
	}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, getWithParam(t, "/api/users/alice/videos", "userID", "alice"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "INTERNAL_ERROR" {
		t.Errorf("unexpected code %q", code)
	}
}
