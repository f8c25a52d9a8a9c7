package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/arjunmehta/formcoach/internal/api/middleware"
	"github.com/arjunmehta/formcoach/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	HealthHandler     http.HandlerFunc
	UploadHandler     http.HandlerFunc
	StatusHandler     http.HandlerFunc
	AnalysisHandler   http.HandlerFunc
	UserVideosHandler http.HandlerFunc

	MetricsHandler http.Handler
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/health", orNotImplemented(deps.HealthHandler))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Post("/api/videos/upload", orNotImplemented(deps.UploadHandler))
	r.Get("/api/videos/{videoID}/status", orNotImplemented(deps.StatusHandler))
	r.Get("/api/analyses/{videoID}", orNotImplemented(deps.AnalysisHandler))
	r.Get("/api/users/{userID}/videos", orNotImplemented(deps.UserVideosHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
