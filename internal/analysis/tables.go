package analysis

import "github.com/arjunmehta/formcoach/pkg/models"

// Demo feedback tables keyed by sport label. Lookup is a case-sensitive exact
// match; anything unrecognized falls back to defaultFeedback.

var sportFeedback = map[string][]models.FeedbackItem{
	"golf": {
		{Icon: "rotate-cw", Title: "Hip rotation", Description: "Open your hips earlier in the downswing to generate more clubhead speed.", Category: "power"},
		{Icon: "move", Title: "Weight transfer", Description: "Shift more weight onto your lead foot through impact.", Category: "balance"},
		{Icon: "eye", Title: "Head position", Description: "Keep your head steady behind the ball until after contact.", Category: "technique"},
	},
	"tennis": {
		{Icon: "wind", Title: "Racket lag", Description: "Let the racket head trail your elbow longer for extra whip on the forehand.", Category: "power"},
		{Icon: "footprints", Title: "Split step", Description: "Time your split step to land as your opponent makes contact.", Category: "footwork"},
		{Icon: "arrow-up", Title: "Follow-through", Description: "Finish the swing over your shoulder to keep depth on the ball.", Category: "technique"},
	},
	"basketball": {
		{Icon: "target", Title: "Elbow alignment", Description: "Tuck your shooting elbow under the ball for a straighter release.", Category: "technique"},
		{Icon: "chevrons-up", Title: "Leg drive", Description: "Start the shot from your legs; the arms only finish it.", Category: "power"},
		{Icon: "clock", Title: "Release timing", Description: "Release at the top of your jump, not on the way down.", Category: "timing"},
	},
	"weightlifting": {
		{Icon: "align-center", Title: "Bar path", Description: "Keep the bar close to your body through the pull.", Category: "technique"},
		{Icon: "shield", Title: "Core brace", Description: "Brace before the bar leaves the floor and hold it through lockout.", Category: "safety"},
		{Icon: "trending-up", Title: "Hip extension", Description: "Finish the hips fully before bending the arms.", Category: "power"},
	},
}

var defaultFeedback = []models.FeedbackItem{
	{Icon: "info", Title: "General movement", Description: "Movement captured. Select a specific sport for targeted coaching feedback.", Category: "general"},
}

var sportPhases = map[string][]string{
	"golf":          {"address", "backswing", "downswing", "impact", "follow-through"},
	"tennis":        {"ready", "preparation", "acceleration", "contact", "recovery"},
	"basketball":    {"set", "dip", "rise", "release", "landing"},
	"weightlifting": {"setup", "first pull", "second pull", "catch", "recovery"},
}

var defaultPhases = []string{"setup", "preparation", "execution", "follow-through", "recovery"}

var sportRecommendations = map[string][]string{
	"golf": {
		"Record your swing face-on and down-the-line for a fuller picture.",
		"Practice slow-motion swings focusing on hip rotation.",
	},
	"tennis": {
		"Shadow-swing ten forehands focusing on racket lag before each session.",
		"Film your split step against different serve speeds.",
	},
	"basketball": {
		"Do form shooting from close range before moving back.",
		"Practice catch-and-shoot reps with a consistent dip.",
	},
	"weightlifting": {
		"Work with lighter loads until the bar path is consistent.",
		"Add paused pulls at knee height to groove positions.",
	},
}

var defaultRecommendations = []string{
	"Upload more footage from different angles for richer feedback.",
}
