// Package profile builds the four-dimension confidence profile from a
// session's behavioral features. The weights are hand-tuned constants.
package profile

import (
	"strings"

	"github.com/abhisek/confidex/internal/calc"
)

// DimensionName identifies one of the four profile axes.
type DimensionName string

const (
	ConceptClarity        DimensionName = "Concept Clarity"
	LogicalConfidence     DimensionName = "Logical Confidence"
	ApplicationConfidence DimensionName = "Application Confidence"
	IndustryReadiness     DimensionName = "Industry Readiness"
)

// DimensionNames lists the axes in profile order.
var DimensionNames = []DimensionName{
	ConceptClarity,
	LogicalConfidence,
	ApplicationConfidence,
	IndustryReadiness,
}

// Label is the three-tier reading of a dimension score.
type Label string

const (
	LabelStrong       Label = "Strong"
	LabelModerate     Label = "Moderate"
	LabelNeedsClarity Label = "Needs Clarity"
)

// Label cutoffs on the 0-100 dimension scale.
const (
	StrongLabelCutoff   = 70
	ModerateLabelCutoff = 40
)

// NeutralScore is reported for every dimension when there is no data.
const NeutralScore = 50

// ScoreToLabel maps a dimension score to its label.
func ScoreToLabel(score int) Label {
	switch {
	case score >= StrongLabelCutoff:
		return LabelStrong
	case score >= ModerateLabelCutoff:
		return LabelModerate
	default:
		return LabelNeedsClarity
	}
}

// Dimension is one scored axis of the profile.
type Dimension struct {
	Name        DimensionName `json:"name"`
	Score       int           `json:"score"`
	Label       Label         `json:"label"`
	Explanation string        `json:"explanation"`
}

// explanations holds the strong, moderate and weak explanation per axis.
var explanations = map[DimensionName][3]string{
	ConceptClarity: {
		"You demonstrate clear understanding of core concepts with well-structured explanations.",
		"You show basic understanding but could deepen your explanations with more detail.",
		"Consider reviewing fundamental concepts to improve clarity.",
	},
	LogicalConfidence: {
		"Your reasoning is consistent and well-calibrated with actual performance.",
		"You show some consistency, but could improve alignment between confidence and actual correctness.",
		"Consider being more self-aware about what you know vs. don't know.",
	},
	ApplicationConfidence: {
		"You successfully apply concepts to real-world scenarios and problems.",
		"You can apply concepts in some situations, but could improve with more practice.",
		"Focus on connecting theory to practical applications.",
	},
	IndustryReadiness: {
		"You demonstrate professional-level understanding ready for industry application.",
		"You're developing industry skills but would benefit from more depth and consistency.",
		"Continue building expertise to meet industry standards.",
	},
}

// newDimension labels and explains the raw score, then clamps it to [0,100].
func newDimension(name DimensionName, raw int) Dimension {
	tier := 2
	switch {
	case raw >= StrongLabelCutoff:
		tier = 0
	case raw >= ModerateLabelCutoff:
		tier = 1
	}
	return Dimension{
		Name:        name,
		Score:       calc.ClampInt(raw, 0, 100),
		Label:       ScoreToLabel(raw),
		Explanation: explanations[name][tier],
	}
}

// neutralDimension is the no-data result for an axis.
func neutralDimension(name DimensionName) Dimension {
	return Dimension{
		Name:        name,
		Score:       NeutralScore,
		Label:       LabelModerate,
		Explanation: "Not enough data to assess " + strings.ToLower(string(name)),
	}
}
