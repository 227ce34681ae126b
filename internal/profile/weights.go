package profile

import "github.com/abhisek/confidex/internal/textsignal"

// Concept Clarity: depth, keyword coverage and a time-consistency proxy.
const (
	ClarityDepthWeight    = 0.4
	ClarityCoverageWeight = 0.4
	ClarityTimeWeight     = 0.2

	// Time consistency is a fixed proxy: one answer reads as steadier than many.
	SingleAnswerTimeConsistency = 75.0
	MultiAnswerTimeConsistency  = 50.0
)

// Logical Confidence: cross-question consistency and calibration.
const (
	LogicalConsistencyWeight = 0.5
	LogicalAlignmentWeight   = 0.5
)

// Application Confidence: applied answers, correctness and explanation length.
const (
	ApplicationSuccessWeight     = 0.4
	ApplicationCorrectnessWeight = 0.4
	ApplicationLengthWeight      = 0.2

	// TypicalExplanationLength is the length that earns a full length score.
	TypicalExplanationLength = 500.0
)

// Industry Readiness: depth, correctness, pacing and revisions.
const (
	IndustryDepthWeight       = 0.3
	IndustryCorrectnessWeight = 0.3
	IndustryTimeWeight        = 0.2
	IndustryRevisionWeight    = 0.2
)

// OverallDimensionWeight is the equal share of each axis in the overall score.
const OverallDimensionWeight = 0.25

// NeutralCorrectnessRate is used when no correctness flags are supplied.
const NeutralCorrectnessRate = 50.0

// clarityDepthScore and industryDepthScore map explanation depth to points.
var (
	clarityDepthScore = map[textsignal.Depth]float64{
		textsignal.DepthShallow: 20,
		textsignal.DepthMedium:  60,
		textsignal.DepthDeep:    100,
	}
	industryDepthScore = map[textsignal.Depth]float64{
		textsignal.DepthShallow: 0,
		textsignal.DepthMedium:  50,
		textsignal.DepthDeep:    100,
	}
)

// industryTimeScore rewards balanced pacing by average response time.
func industryTimeScore(avgSeconds float64) float64 {
	switch {
	case avgSeconds < 10:
		return 50
	case avgSeconds < 30:
		return 80
	case avgSeconds < 60:
		return 60
	default:
		return 40
	}
}

// industryRevisionScore rewards few revisions per answer.
func industryRevisionScore(avgRevisions float64) float64 {
	switch {
	case avgRevisions < 2:
		return 80
	case avgRevisions < 4:
		return 60
	default:
		return 40
	}
}
