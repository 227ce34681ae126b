package features

import "math"

// HighConfidenceThreshold splits self-confidence into high and low buckets.
const HighConfidenceThreshold = 50

// Alignment measures calibration between self-confidence (0-100) and
// correctness. It returns 100 when the confidence bucket matches the outcome.
// Overconfidence costs between -50 and -75. Underconfidence costs between
// -30 and about -13.
func Alignment(selfConfidence float64, isCorrect bool) float64 {
	high := selfConfidence >= HighConfidenceThreshold

	switch {
	case high == isCorrect:
		return 100
	case high:
		return math.Max(-100, -50-(selfConfidence-50)/2)
	default:
		return math.Max(-50, -30+selfConfidence/3)
	}
}
