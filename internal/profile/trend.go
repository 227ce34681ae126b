package profile

import "github.com/abhisek/confidex/internal/features"

// Trend is the direction of concept coverage over a session.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Trend detection parameters.
const (
	MinTrendSamples = 3
	TrendThreshold  = 5.0 // coverage points
)

// TrendOf compares mean concept coverage of the first and second halves of
// the session. The midpoint is floor(n/2), so an odd middle answer lands in
// the second half.
func TrendOf(fs []features.BehavioralFeatures) Trend {
	if len(fs) < MinTrendSamples {
		return TrendStable
	}

	coverage := func(f features.BehavioralFeatures) float64 { return float64(f.ConceptCoverage) }
	mid := len(fs) / 2
	diff := meanOf(fs[mid:], coverage) - meanOf(fs[:mid], coverage)

	switch {
	case diff > TrendThreshold:
		return TrendImproving
	case diff < -TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
