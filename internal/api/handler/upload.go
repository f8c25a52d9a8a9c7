package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arjunmehta/formcoach/internal/api/response"
	"github.com/arjunmehta/formcoach/internal/video"
)

// multipartMemory is how much of the form is held in memory before spilling
// to temp files; the video part itself streams either way.
const multipartMemory = 32 << 20

// Uploader defines the interface the handler depends on.
type Uploader interface {
	Upload(ctx context.Context, in video.UploadInput) (*video.UploadReceipt, error)
}

type uploadResponse struct {
	VideoID  string `json:"videoId"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// NewUploadHandler returns an http.HandlerFunc for POST /api/videos/upload.
// All request validation happens here; a rejected upload never reaches the
// service, so no job record is ever created for it.
func NewUploadHandler(svc Uploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Allow some slack for the non-file form fields and part headers.
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.Error(w, http.StatusBadRequest, "UPLOAD_TOO_LARGE",
					"The uploaded file exceeds the size limit", nil)
				return
			}
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
				"Expected multipart form data", nil)
			return
		}

		file, header, err := r.FormFile("video")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "MISSING_FILE",
				"A video file is required in the \"video\" field", nil)
			return
		}
		defer file.Close()

		if header.Size > maxBytes {
			response.Error(w, http.StatusBadRequest, "UPLOAD_TOO_LARGE",
				"The uploaded file exceeds the size limit", nil)
			return
		}
		if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "video/") {
			response.Error(w, http.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE",
				"Only video uploads are accepted", nil)
			return
		}

		sport := r.FormValue("sport")
		if sport == "" {
			sport = "auto-detect"
		}

		receipt, err := svc.Upload(r.Context(), video.UploadInput{
			File:         file,
			OriginalName: header.Filename,
			Sport:        sport,
			Collection:   r.FormValue("collection"),
			UserID:       r.FormValue("userId"),
		})
		if err != nil {
			slog.Error("upload failed", "filename", header.Filename, "error", err)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, uploadResponse{
			VideoID:  receipt.VideoID,
			Message:  "Video uploaded successfully. Analysis in progress.",
			Filename: receipt.Filename,
			Size:     receipt.Size,
		})
	}
}
