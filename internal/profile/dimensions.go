package profile

import (
	"github.com/montanaflynn/stats"

	"github.com/abhisek/confidex/internal/calc"
	"github.com/abhisek/confidex/internal/features"
)

// Clarity scores depth and coverage of explanations.
func Clarity(fs []features.BehavioralFeatures) Dimension {
	if len(fs) == 0 {
		return neutralDimension(ConceptClarity)
	}

	depth := meanOf(fs, func(f features.BehavioralFeatures) float64 { return clarityDepthScore[f.ExplanationDepth] })
	coverage := meanOf(fs, func(f features.BehavioralFeatures) float64 { return float64(f.ConceptCoverage) })
	timeConsistency := SingleAnswerTimeConsistency
	if len(fs) > 1 {
		timeConsistency = MultiAnswerTimeConsistency
	}

	score := calc.RoundInt(calc.Weighted(
		depth, ClarityDepthWeight,
		coverage, ClarityCoverageWeight,
		timeConsistency, ClarityTimeWeight,
	))
	return newDimension(ConceptClarity, score)
}

// Logic scores cross-question consistency and confidence calibration. The
// alignment is rescaled from [-100,100] to [0,100] before averaging.
func Logic(fs []features.BehavioralFeatures) Dimension {
	if len(fs) == 0 {
		return neutralDimension(LogicalConfidence)
	}

	consistency := meanOf(fs, func(f features.BehavioralFeatures) float64 { return float64(f.ConsistencyScore) })
	alignment := meanOf(fs, func(f features.BehavioralFeatures) float64 { return (f.AnswerConfidenceAlignment + 100) / 2 })

	score := calc.RoundInt(calc.Weighted(
		consistency, LogicalConsistencyWeight,
		alignment, LogicalAlignmentWeight,
	))
	return newDimension(LogicalConfidence, score)
}

// Application scores applied answers, correctness and explanation length.
func Application(fs []features.BehavioralFeatures, correctness []bool) Dimension {
	if len(fs) == 0 {
		return neutralDimension(ApplicationConfidence)
	}

	applied := meanOf(fs, func(f features.BehavioralFeatures) float64 {
		if f.ApplicationSuccess {
			return 100
		}
		return 0
	})
	length := meanOf(fs, func(f features.BehavioralFeatures) float64 { return float64(f.ExplanationLength) })
	lengthScore := min(100, length/TypicalExplanationLength*100)

	score := calc.RoundInt(calc.Weighted(
		applied, ApplicationSuccessWeight,
		CorrectnessRate(correctness), ApplicationCorrectnessWeight,
		lengthScore, ApplicationLengthWeight,
	))
	return newDimension(ApplicationConfidence, score)
}

// Industry scores depth, correctness, pacing and revision habits.
func Industry(fs []features.BehavioralFeatures, correctness []bool) Dimension {
	if len(fs) == 0 {
		return neutralDimension(IndustryReadiness)
	}

	depth := meanOf(fs, func(f features.BehavioralFeatures) float64 { return industryDepthScore[f.ExplanationDepth] })

	score := calc.RoundInt(calc.Weighted(
		depth, IndustryDepthWeight,
		CorrectnessRate(correctness), IndustryCorrectnessWeight,
		industryTimeScore(avgResponseTime(fs)), IndustryTimeWeight,
		industryRevisionScore(avgRevisions(fs)), IndustryRevisionWeight,
	))
	return newDimension(IndustryReadiness, score)
}

// CorrectnessRate is the percentage of true flags, or the neutral rate when
// there are none.
func CorrectnessRate(correctness []bool) float64 {
	if len(correctness) == 0 {
		return NeutralCorrectnessRate
	}
	n := 0
	for _, c := range correctness {
		if c {
			n++
		}
	}
	return float64(n) / float64(len(correctness)) * 100
}

func avgResponseTime(fs []features.BehavioralFeatures) float64 {
	return meanOf(fs, func(f features.BehavioralFeatures) float64 { return float64(f.ResponseTime) })
}

func avgRevisions(fs []features.BehavioralFeatures) float64 {
	return meanOf(fs, func(f features.BehavioralFeatures) float64 { return float64(f.Revisions) })
}

// meanOf averages one projected field. Callers guard against empty input.
func meanOf(fs []features.BehavioralFeatures, field func(features.BehavioralFeatures) float64) float64 {
	xs := make(stats.Float64Data, len(fs))
	for i, f := range fs {
		xs[i] = field(f)
	}
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}
