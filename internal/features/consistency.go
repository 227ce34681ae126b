package features

import (
	"math"

	"github.com/abhisek/confidex/internal/calc"
	"github.com/abhisek/confidex/internal/textsignal"
)

// NeutralConsistency is the consistency score used when no earlier answers
// exist to compare against.
const NeutralConsistency = 50

var depthRank = map[textsignal.Depth]float64{
	textsignal.DepthShallow: 0,
	textsignal.DepthMedium:  1,
	textsignal.DepthDeep:    2,
}

// ConsistencyScore compares the current answer with the earlier ones. Up to 50
// points come from depth similarity and 25 or 50 from whether correctness
// follows the earlier majority.
func ConsistencyScore(current textsignal.Depth, previous []textsignal.Depth, currentCorrect bool, previousCorrect []bool) int {
	if len(previous) == 0 {
		return NeutralConsistency
	}

	var sum float64
	for _, d := range previous {
		sum += depthRank[d]
	}
	avgPrevious := sum / float64(len(previous))
	diff := math.Abs(depthRank[current] - avgPrevious)
	depthScore := math.Max(0, 50-diff*25)

	var correctRate float64
	if len(previousCorrect) > 0 {
		correct := 0
		for _, c := range previousCorrect {
			if c {
				correct++
			}
		}
		correctRate = float64(correct) / float64(len(previousCorrect))
	}
	correctScore := 25.0
	if currentCorrect == (correctRate > 0.5) {
		correctScore = 50
	}

	return calc.RoundInt(depthScore + correctScore)
}

// WithConsistency returns a copy of fs where each entry's ConsistencyScore is
// computed against all earlier entries. correct must be parallel to fs. Missing
// entries count as incorrect.
//
// Extract leaves the score at NeutralConsistency. This batch pass is opt-in.
func WithConsistency(fs []BehavioralFeatures, correct []bool) []BehavioralFeatures {
	out := make([]BehavioralFeatures, len(fs))
	copy(out, fs)

	depths := make([]textsignal.Depth, 0, len(fs))
	outcomes := make([]bool, 0, len(fs))
	for i := range out {
		isCorrect := i < len(correct) && correct[i]
		out[i].ConsistencyScore = ConsistencyScore(out[i].ExplanationDepth, depths, isCorrect, outcomes)
		depths = append(depths, out[i].ExplanationDepth)
		outcomes = append(outcomes, isCorrect)
	}
	return out
}
