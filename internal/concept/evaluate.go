package concept

import (
	"math"

	"github.com/abhisek/confidex/internal/analysis"
	"github.com/abhisek/confidex/internal/calc"
)

// Status grades a concept.
type Status string

const (
	StatusStrong Status = "Strong"
	StatusMedium Status = "Medium"
	StatusWeak   Status = "Weak"
)

// Score weights and cutoffs.
const (
	CorrectnessWeight = 0.4
	ClarityWeight     = 0.35
	ConfidenceWeight  = 0.15
	ReasoningWeight   = 0.10

	StrongCutoff = 75
	MediumCutoff = 50

	weakCorrectness = 60
	weakClarity     = 60
	weakReasoning   = 60
	weakConfidence  = 50
)

var recommendations = map[Status]string{
	StatusStrong: "Advance to application and interview-style questions.",
	StatusMedium: "Re-explain with step-by-step examples and practice moderate questions.",
	StatusWeak:   "Re-explain with simpler analogies, then scaffold from basic to harder questions.",
}

// InsufficientDataRecommendation accompanies an evaluation with no analyses.
const InsufficientDataRecommendation = "Collect more responses and re-evaluate."

// Evaluation is the graded result for one concept.
type Evaluation struct {
	Concept        string   `json:"concept"`
	Score          int      `json:"confidence_score"` // 0-100
	Status         Status   `json:"status"`
	WeakPoints     []string `json:"weak_points"`
	Recommendation string   `json:"recommendation"`
}

// Evaluate blends the averaged rubric scores into a concept grade.
func Evaluate(concept string, analyses []analysis.Scores) Evaluation {
	if len(analyses) == 0 {
		return Evaluation{
			Concept:        concept,
			Score:          0,
			Status:         StatusWeak,
			WeakPoints:     []string{"insufficient data"},
			Recommendation: InsufficientDataRecommendation,
		}
	}

	avg := average(analyses)
	score := int(math.RoundToEven(calc.Weighted(
		avg.Correctness, CorrectnessWeight,
		avg.Clarity, ClarityWeight,
		avg.Confidence, ConfidenceWeight,
		avg.ReasoningQuality, ReasoningWeight,
	)))
	status := StatusFor(score)

	return Evaluation{
		Concept:        concept,
		Score:          score,
		Status:         status,
		WeakPoints:     weakPoints(avg),
		Recommendation: recommendations[status],
	}
}

// StatusFor maps a 0-100 score to a status.
func StatusFor(score int) Status {
	switch {
	case score >= StrongCutoff:
		return StatusStrong
	case score >= MediumCutoff:
		return StatusMedium
	default:
		return StatusWeak
	}
}

// average returns per-field means rounded to two decimals.
func average(analyses []analysis.Scores) analysis.Scores {
	var sum analysis.Scores
	for _, a := range analyses {
		sum.Clarity += a.Clarity
		sum.Correctness += a.Correctness
		sum.Confidence += a.Confidence
		sum.ReasoningQuality += a.ReasoningQuality
	}
	n := float64(len(analyses))
	return analysis.Scores{
		Clarity:          round2(sum.Clarity / n),
		Correctness:      round2(sum.Correctness / n),
		Confidence:       round2(sum.Confidence / n),
		ReasoningQuality: round2(sum.ReasoningQuality / n),
	}
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

func weakPoints(avg analysis.Scores) []string {
	var points []string
	if avg.Correctness < weakCorrectness {
		points = append(points, "correctness")
	}
	if avg.Clarity < weakClarity {
		points = append(points, "clarity")
	}
	if avg.ReasoningQuality < weakReasoning {
		points = append(points, "reasoning quality")
	}
	if avg.Confidence < weakConfidence {
		points = append(points, "self-confidence alignment")
	}
	if len(points) == 0 {
		return []string{"review fundamentals"}
	}
	return points
}
