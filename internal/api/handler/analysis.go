package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunmehta/formcoach/internal/api/response"
	"github.com/arjunmehta/formcoach/internal/store"
	"github.com/arjunmehta/formcoach/pkg/models"
)

// AnalysisProvider defines the interface the handler depends on.
type AnalysisProvider interface {
	Analysis(ctx context.Context, videoID string) (*models.Analysis, error)
}

// NewAnalysisHandler returns an http.HandlerFunc for
// GET /api/analyses/{videoID}.
func NewAnalysisHandler(svc AnalysisProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID := chi.URLParam(r, "videoID")

		analysis, err := svc.Analysis(r.Context(), videoID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "ANALYSIS_NOT_FOUND",
					"No analysis exists for that video", nil)
				return
			}
			slog.Error("analysis lookup failed", "video_id", videoID, "error", err)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, analysis)
	}
}
