package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunmehta/formcoach/internal/api/response"
	"github.com/arjunmehta/formcoach/internal/registry"
	"github.com/arjunmehta/formcoach/pkg/models"
)

// StatusProvider defines the interface the handler depends on.
type StatusProvider interface {
	Status(ctx context.Context, videoID string) (*models.Job, error)
}

// NewStatusHandler returns an http.HandlerFunc for
// GET /api/videos/{videoID}/status.
func NewStatusHandler(svc StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID := chi.URLParam(r, "videoID")

		job, err := svc.Status(r.Context(), videoID)
		if err != nil {
			if errors.Is(err, registry.ErrJobNotFound) {
				response.Error(w, http.StatusNotFound, "VIDEO_NOT_FOUND",
					"No processing job for that video", nil)
				return
			}
			slog.Error("status lookup failed", "video_id", videoID, "error", err)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, job)
	}
}
