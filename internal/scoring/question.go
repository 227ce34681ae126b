// Package scoring implements the rule-based confidence scorer: a four-phase
// per-question transform plus session aggregates, insights and the closing
// adaptive message.
package scoring

import (
	"math"

	"github.com/abhisek/confidex/internal/calc"
)

// Population parameters for response-time normalization, in seconds.
const (
	ReadingTime   = 20.0
	MeanEffective = 45.0
	StdEffective  = 20.0
)

// Base scores and peer multipliers.
const (
	FastThreshold     = 10.0 // effective seconds below which a correct answer earns full credit
	FullCredit        = 1.0
	PartialCredit     = 0.75
	FastOutlierBonus  = 1.05
	SlowOutlierFactor = 0.90
)

// Category is the per-question confidence tier.
type Category string

const (
	CategoryStrong       Category = "Strong Confidence"
	CategoryModerate     Category = "Moderate Confidence"
	CategoryNeedsClarity Category = "Needs Clarity"
)

// Percentage cutoffs shared by question categories and topic labels.
const (
	StrongCutoff   = 85.0
	ModerateCutoff = 65.0
)

// QuestionMetadata is the scorer's input for one answered question.
type QuestionMetadata struct {
	QuestionID     string  `json:"question_id"`
	IsCorrect      bool    `json:"is_correct"`
	TotalTime      float64 `json:"total_time"`      // seconds
	UserConfidence float64 `json:"user_confidence"` // 0-100
	Topic          string  `json:"topic"`
}

// ConfidenceResult is the scored outcome of one question.
type ConfidenceResult struct {
	FinalConfidence float64  `json:"final_confidence"`
	BaseScore       float64  `json:"base_score"`
	AdjustedScore   float64  `json:"adjusted_score"`
	ZScore          float64  `json:"z_score"`
	Category        Category `json:"category"`
}

// EffectiveTime subtracts the reading allowance from the total time and
// floors the result at zero.
func EffectiveTime(totalTime float64) float64 {
	return math.Max(totalTime-ReadingTime, 0)
}

// BaseScore is the rule-based credit: 0 when incorrect, full credit when
// correct and fast, partial credit when correct but slow. Self-reported
// confidence plays no part.
func BaseScore(isCorrect bool, effectiveTime float64) float64 {
	if !isCorrect {
		return 0
	}
	if effectiveTime < FastThreshold {
		return FullCredit
	}
	return PartialCredit
}

// ZScore places an effective time against the population.
func ZScore(effectiveTime float64) float64 {
	return (effectiveTime - MeanEffective) / StdEffective
}

// PeerMultiplier rewards fast outliers (z < -1) and penalizes slow ones (z > 1).
func PeerMultiplier(z float64) float64 {
	switch {
	case z < -1:
		return FastOutlierBonus
	case z > 1:
		return SlowOutlierFactor
	default:
		return 1.0
	}
}

// CategoryFor maps a percentage (0-100) to a question category.
func CategoryFor(percentage float64) Category {
	switch {
	case percentage >= StrongCutoff:
		return CategoryStrong
	case percentage >= ModerateCutoff:
		return CategoryModerate
	default:
		return CategoryNeedsClarity
	}
}

// ScoreQuestion runs the four phases for one question.
func ScoreQuestion(q QuestionMetadata) ConfidenceResult {
	effective := EffectiveTime(q.TotalTime)
	base := BaseScore(q.IsCorrect, effective)
	z := ZScore(effective)
	adjusted := base * PeerMultiplier(z)
	final := calc.RoundTo(calc.Clamp(adjusted, 0, 1), 2)

	return ConfidenceResult{
		FinalConfidence: final,
		BaseScore:       base,
		AdjustedScore:   adjusted,
		ZScore:          calc.RoundTo(z, 2),
		Category:        CategoryFor(final * 100),
	}
}

// ScoreQuestions scores every question in order.
func ScoreQuestions(qs []QuestionMetadata) []ConfidenceResult {
	out := make([]ConfidenceResult, len(qs))
	for i, q := range qs {
		out[i] = ScoreQuestion(q)
	}
	return out
}
