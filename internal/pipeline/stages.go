package pipeline

import "time"

// Stage is one named step of the simulated pipeline with its delay and the
// cumulative progress it reports.
type Stage struct {
	Label    string
	Duration time.Duration
	Progress int
}

// DefaultStages returns the production stage table. Jobs walk it strictly in
// order; the whole walk takes 8.5s.
func DefaultStages() []Stage {
	return []Stage{
		{Label: "Extracting frames", Duration: 2000 * time.Millisecond, Progress: 20},
		{Label: "Running pose estimation", Duration: 3000 * time.Millisecond, Progress: 50},
		{Label: "Analyzing movement", Duration: 2000 * time.Millisecond, Progress: 70},
		{Label: "Generating feedback", Duration: 1000 * time.Millisecond, Progress: 90},
		{Label: "Finalizing", Duration: 500 * time.Millisecond, Progress: 100},
	}
}
