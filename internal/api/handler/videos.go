package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunmehta/formcoach/internal/api/response"
	"github.com/arjunmehta/formcoach/pkg/models"
)

// VideoLister defines the interface the handler depends on.
type VideoLister interface {
	ListByUser(ctx context.Context, userID string) ([]*models.VideoMetadata, error)
}

// NewUserVideosHandler returns an http.HandlerFunc for
// GET /api/users/{userID}/videos. An unknown user is not an error; the
// response is an empty array.
func NewUserVideosHandler(svc VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		videos, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			slog.Error("list videos failed", "user_id", userID, "error", err)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}
		if videos == nil {
			videos = []*models.VideoMetadata{}
		}

		response.JSON(w, videos)
	}
}
