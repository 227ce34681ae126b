package profile

import (
	"github.com/abhisek/confidex/internal/calc"
	"github.com/abhisek/confidex/internal/features"
)

// Profile is the multi-dimensional confidence profile of a session.
type Profile struct {
	OverallScore    int         `json:"overall_score"`
	Dimensions      []Dimension `json:"dimensions"`
	BehaviorSummary string      `json:"behavior_summary"`
	Recommendations []string    `json:"recommendations"`
	Trend           Trend       `json:"confidence_trend"`
}

// Build scores all four dimensions and assembles the profile. correctness
// is the per-question correctness in session order and may be empty.
func Build(fs []features.BehavioralFeatures, correctness []bool) Profile {
	dims := []Dimension{
		Clarity(fs),
		Logic(fs),
		Application(fs, correctness),
		Industry(fs, correctness),
	}

	overall := calc.RoundInt(calc.Weighted(
		float64(dims[0].Score), OverallDimensionWeight,
		float64(dims[1].Score), OverallDimensionWeight,
		float64(dims[2].Score), OverallDimensionWeight,
		float64(dims[3].Score), OverallDimensionWeight,
	))

	return Profile{
		OverallScore:    overall,
		Dimensions:      dims,
		BehaviorSummary: BehaviorSummary(fs),
		Recommendations: Recommendations(dims, fs),
		Trend:           TrendOf(fs),
	}
}

// Dimension returns the named dimension of the profile.
func (p Profile) Dimension(name DimensionName) (Dimension, bool) {
	for _, d := range p.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}
