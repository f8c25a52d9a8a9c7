package models

import "time"

const (
	JobStateProcessing = "processing"
	JobStateCompleted  = "completed"
	JobStateFailed     = "failed"
)

// Job is the live, in-memory status record for one uploaded video. The API
// returns a videoId on POST /api/videos/upload; the client polls
// GET /api/videos/{videoId}/status until state is completed or failed.
// Job records exist only in process memory and are lost on restart.
type Job struct {
	VideoID       string     `json:"videoId"`
	Progress      int        `json:"progress"`
	State         string     `json:"state"`
	CurrentStage  string     `json:"currentStage,omitempty"`
	Error         string     `json:"error,omitempty"`
	StartTime     time.Time  `json:"startTime"`
	CompletedTime *time.Time `json:"completedTime,omitempty"`
}
