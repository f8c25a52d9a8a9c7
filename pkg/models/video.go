package models

import "time"

// VideoMetadata describes one uploaded artifact. It is written once at upload
// time and never updated; Status and Progress are the upload-time snapshot
// only. The job registry is the single source of truth for live status.
type VideoMetadata struct {
	VideoID      string    `json:"videoId"`
	Filename     string    `json:"filename"` // stored filename, unique
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Sport        string    `json:"sport"`
	Collection   string    `json:"collection"`
	UserID       string    `json:"userId"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
}
