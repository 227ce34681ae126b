package profile

import "github.com/abhisek/confidex/internal/features"

// MaxRecommendations caps the recommendation list.
const MaxRecommendations = 3

// Recommendation triggers.
const (
	WeakDimensionCutoff = 50
	RushedResponseTime  = 8.0 // seconds
	IndecisiveRevisions = 3.0
)

const growthRecommendation = "Continue practicing to deepen your expertise."

var remediation = map[DimensionName]string{
	ConceptClarity:        "Review fundamental concepts to improve clarity and depth.",
	LogicalConfidence:     "Work on calibrating your confidence with actual performance.",
	ApplicationConfidence: "Practice applying concepts to real-world scenarios.",
	IndustryReadiness:     "Focus on professional-level understanding and communication.",
}

// Recommendations returns at most three next steps in the order they were
// triggered. The growth recommendation is always generated last.
func Recommendations(dims []Dimension, fs []features.BehavioralFeatures) []string {
	recs := []string{}

	if len(dims) > 0 {
		weakest := dims[0]
		for _, d := range dims[1:] {
			if d.Score < weakest.Score {
				weakest = d
			}
		}
		if weakest.Score < WeakDimensionCutoff {
			if msg, ok := remediation[weakest.Name]; ok {
				recs = append(recs, msg)
			}
		}
	}

	if len(fs) > 0 {
		if avgResponseTime(fs) < RushedResponseTime {
			recs = append(recs, "Consider slowing down to provide more detailed responses.")
		}
		if avgRevisions(fs) > IndecisiveRevisions {
			recs = append(recs, "Try to be more decisive in your initial responses.")
		}
	}

	recs = append(recs, growthRecommendation)

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
