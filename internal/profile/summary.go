package profile

import (
	"strings"

	"github.com/abhisek/confidex/internal/features"
	"github.com/abhisek/confidex/internal/textsignal"
)

// BehaviorSummary describes pacing, revision habits and explanation depth in
// one paragraph.
func BehaviorSummary(fs []features.BehavioralFeatures) string {
	if len(fs) == 0 {
		return "No assessment data available."
	}

	var b strings.Builder

	switch avg := avgResponseTime(fs); {
	case avg < 10:
		b.WriteString("You answer quickly, which might indicate confidence or rushing. ")
	case avg < 30:
		b.WriteString("Your response time is well-balanced for thoughtful analysis. ")
	default:
		b.WriteString("You take significant time to answer, suggesting careful deliberation. ")
	}

	revisions, deep, shallow := 0, 0, 0
	for _, f := range fs {
		revisions += f.Revisions
		switch f.ExplanationDepth {
		case textsignal.DepthDeep:
			deep++
		case textsignal.DepthShallow:
			shallow++
		}
	}

	switch {
	case revisions == 0:
		b.WriteString("You rarely revise your answers, showing confidence in your initial responses. ")
	case revisions < len(fs):
		b.WriteString("You occasionally refine your answers, showing thoughtful editing. ")
	default:
		b.WriteString("You frequently revise your answers, suggesting you're refining your thinking. ")
	}

	half := float64(len(fs)) / 2
	switch {
	case float64(deep) > half:
		b.WriteString("Most of your explanations are thorough and well-reasoned.")
	case float64(shallow) > half:
		b.WriteString("Your explanations tend to be brief; consider providing more detail.")
	default:
		b.WriteString("Your explanations show mixed depth levels.")
	}

	return b.String()
}
