package scoring

import (
	"fmt"
	"strings"
)

// Insight thresholds.
const (
	ReflectiveAverageTime = 60.0 // seconds
	QuickAverageTime      = 30.0
	AlignedConsistency    = 80
	MisalignedConsistency = 60
	UnderconfidentCutoff  = 50.0
	FluctuationVariance   = 0.1
	ExtendedThinkingTime  = 30.0 // effective seconds
)

// Insights returns the ordered behavioral findings for a session. Each rule
// is evaluated independently and appends at most one finding. An empty
// session has no findings.
func Insights(questions []QuestionMetadata, agg Summary) []string {
	insights := []string{}
	if len(questions) == 0 {
		return insights
	}

	switch {
	case agg.AverageTime > ReflectiveAverageTime:
		insights = append(insights,
			"You took time to think through answers carefully, indicating reflective reasoning.")
	case agg.AverageTime < QuickAverageTime:
		insights = append(insights,
			"Your quick response times suggest strong intuitive understanding or pattern recognition.")
	}

	if msg, ok := consistencyInsight(questions, agg.ConsistencyScore); ok {
		insights = append(insights, msg)
	}

	if len(agg.TopicScores) > 1 {
		var sum float64
		for _, t := range agg.TopicScores {
			d := t.Score - agg.OverallScore
			sum += d * d
		}
		if sum/float64(len(agg.TopicScores)) > FluctuationVariance {
			insights = append(insights,
				"Your confidence fluctuated across topics. Exploring edge cases could stabilize understanding.")
		}
	}

	var unclear []string
	for _, t := range agg.TopicScores {
		if t.Category == TopicNeedsClarity {
			unclear = append(unclear, t.Topic)
		}
	}
	if len(unclear) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Focus next on the 'Needs Clarity' sections (%s) to strengthen foundational understanding.",
			strings.Join(unclear, ", ")))
	}

	extended := 0
	for _, q := range questions {
		if q.IsCorrect && q.TotalTime-ReadingTime > ExtendedThinkingTime {
			extended++
		}
	}
	if float64(extended) >= float64(len(questions))/3 {
		insights = append(insights,
			"Many correct answers came after extended thinking, validating your methodical problem-solving approach.")
	}

	return insights
}

func consistencyInsight(questions []QuestionMetadata, score int) (string, bool) {
	if score >= AlignedConsistency {
		return fmt.Sprintf("Consistency Score: %d%% - Your self-assessment aligns well with your actual performance.", score), true
	}
	if score >= MisalignedConsistency {
		return "", false
	}

	var over, under int
	for _, q := range questions {
		if q.UserConfidence >= HighConfidenceCutoff && !q.IsCorrect {
			over++
		}
		if q.UserConfidence < UnderconfidentCutoff && q.IsCorrect {
			under++
		}
	}

	var suffix string
	switch {
	case over > under:
		suffix = "High confidence with some incorrect answers indicates areas for calibration."
	case under > over:
		suffix = "Low confidence despite correct answers suggests underestimation of your abilities."
	default:
		suffix = "Varied confidence-correctness alignment indicates room for self-awareness improvement."
	}
	return fmt.Sprintf("Consistency Score: %d%% - %s", score, suffix), true
}
