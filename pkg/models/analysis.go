package models

import "time"

// Analysis is the synthesized output presented to the client as the result of
// the processing pipeline. Created exactly once per job; immutable after that.
type Analysis struct {
	VideoID         string         `json:"videoId"`
	Sport           string         `json:"sport"`
	FormScore       int            `json:"formScore"`
	Duration        float64        `json:"duration"` // seconds
	Feedback        []FeedbackItem `json:"feedback"`
	Pose            PoseData       `json:"pose"`
	Phases          []string       `json:"phases"`
	Recommendations []string       `json:"recommendations"`
	Comparison      Comparison     `json:"comparison"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// FeedbackItem is one coaching remark shown in the results view.
type FeedbackItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PoseData carries the synthetic keypoint payload.
type PoseData struct {
	TotalFrames int        `json:"totalFrames"`
	Keyframes   []Keyframe `json:"keyframes"`
}

// Keyframe holds joint positions for one sampled frame.
type Keyframe struct {
	Frame  int              `json:"frame"`
	Joints map[string]Joint `json:"joints"`
}

// Joint is a named keypoint in normalized image coordinates.
type Joint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Comparison relates the computed score to a fixed reference population.
type Comparison struct {
	ReferenceAverage int    `json:"referenceAverage"`
	YourScore        int    `json:"yourScore"`
	Improvement      string `json:"improvement"`
}
