// Package analysis fabricates performance feedback for the demo pipeline.
// Nothing here reads the uploaded bytes; output is templated per sport with a
// randomized score.
package analysis

import (
	"math/rand"
	"sync"
	"time"

	"github.com/arjunmehta/formcoach/pkg/models"
)

const (
	minFormScore = 70
	maxFormScore = 90

	clipDuration     = 12.5 // seconds, fixed for every clip
	totalFrames      = 240
	keyframeCount    = 5
	referenceAverage = 82
)

// autoDetectSport is the sentinel clients send when they want the sport
// inferred. Detection is faked: it always resolves to golf.
const autoDetectSport = "auto-detect"

var jointNames = []string{"head", "leftShoulder", "rightShoulder", "leftHip", "rightHip"}

// Synthesizer assembles Analysis records. The random source is injectable so
// tests can pin the form score; everything else is deterministic.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSynthesizer returns a Synthesizer backed by the given source, or a
// time-seeded one when src is nil.
func NewSynthesizer(src rand.Source) *Synthesizer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Synthesizer{rng: rand.New(src), now: time.Now}
}

// Synthesize builds the full fabricated result for one job. The output schema
// is stable across calls; only the score and timestamp vary.
func (s *Synthesizer) Synthesize(videoID, sport string) *models.Analysis {
	resolved := sport
	if resolved == autoDetectSport {
		resolved = "golf"
	}

	feedback, ok := sportFeedback[resolved]
	if !ok {
		feedback = defaultFeedback
	}
	phases, ok := sportPhases[resolved]
	if !ok {
		phases = defaultPhases
	}
	recommendations, ok := sportRecommendations[resolved]
	if !ok {
		recommendations = defaultRecommendations
	}

	s.mu.Lock()
	score := minFormScore + s.rng.Intn(maxFormScore-minFormScore+1)
	s.mu.Unlock()

	return &models.Analysis{
		VideoID:         videoID,
		Sport:           resolved,
		FormScore:       score,
		Duration:        clipDuration,
		Feedback:        feedback,
		Pose:            synthesizePose(),
		Phases:          phases,
		Recommendations: recommendations,
		Comparison: models.Comparison{
			ReferenceAverage: referenceAverage,
			YourScore:        score,
			Improvement:      "+5% within reach",
		},
		CreatedAt: s.now().UTC(),
	}
}

// synthesizePose produces the static keypoint scaffolding: five evenly spaced
// keyframes whose joint coordinates drift linearly with the frame index.
func synthesizePose() models.PoseData {
	step := (totalFrames - 1) / (keyframeCount - 1)

	keyframes := make([]models.Keyframe, 0, keyframeCount)
	for i := 0; i < keyframeCount; i++ {
		drift := 0.02 * float64(i)
		joints := make(map[string]models.Joint, len(jointNames))
		for j, name := range jointNames {
			joints[name] = models.Joint{
				X:          0.35 + 0.06*float64(j) + drift,
				Y:          0.20 + 0.12*float64(j) + drift/2,
				Confidence: 0.90 - 0.01*float64(i),
			}
		}
		keyframes = append(keyframes, models.Keyframe{Frame: i * step, Joints: joints})
	}
	return models.PoseData{TotalFrames: totalFrames, Keyframes: keyframes}
}
