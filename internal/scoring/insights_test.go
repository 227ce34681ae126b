package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsights_Empty(t *testing.T) {
	got := Insights(nil, Aggregate(nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInsights_MixedSession(t *testing.T) {
	qs := mixedSession()
	got := Insights(qs, Aggregate(qs))

	assert.Equal(t, []string{
		"Consistency Score: 33% - High confidence with some incorrect answers indicates areas for calibration.",
		"Your confidence fluctuated across topics. Exploring edge cases could stabilize understanding.",
		"Focus next on the 'Needs Clarity' sections (graphs) to strengthen foundational understanding.",
		"Many correct answers came after extended thinking, validating your methodical problem-solving approach.",
	}, got)
}

func TestInsights_QuickAndAligned(t *testing.T) {
	qs := []QuestionMetadata{
		{IsCorrect: true, TotalTime: 25, UserConfidence: 90, Topic: "sorting"},
		{IsCorrect: true, TotalTime: 25, UserConfidence: 90, Topic: "sorting"},
	}
	got := Insights(qs, Aggregate(qs))

	assert.Equal(t, []string{
		"Your quick response times suggest strong intuitive understanding or pattern recognition.",
		"Consistency Score: 100% - Your self-assessment aligns well with your actual performance.",
	}, got)
}

func TestInsights_ReflectiveAndUnderconfident(t *testing.T) {
	qs := []QuestionMetadata{
		{IsCorrect: true, TotalTime: 90, UserConfidence: 40, Topic: "heaps"},
		{IsCorrect: true, TotalTime: 90, UserConfidence: 40, Topic: "tries"},
	}
	got := Insights(qs, Aggregate(qs))

	assert.Equal(t, []string{
		"You took time to think through answers carefully, indicating reflective reasoning.",
		"Consistency Score: 0% - Low confidence despite correct answers suggests underestimation of your abilities.",
		"Many correct answers came after extended thinking, validating your methodical problem-solving approach.",
	}, got)
}

func TestInsights_MixedCalibration(t *testing.T) {
	qs := []QuestionMetadata{
		{IsCorrect: true, TotalTime: 40, UserConfidence: 60, Topic: "a"},
		{IsCorrect: false, TotalTime: 40, UserConfidence: 60, Topic: "a"},
	}
	got := Insights(qs, Aggregate(qs))

	assert.Contains(t, got,
		"Consistency Score: 50% - Varied confidence-correctness alignment indicates room for self-awareness improvement.")
}

func TestAdaptiveMessage(t *testing.T) {
	excellent := "Excellent work! Your confidence and accuracy show strong conceptual mastery."
	good := "Good progress. With targeted refinement in a few areas, your confidence will significantly improve."
	building := "You're building understanding. Revisiting core concepts and practicing edge cases will boost clarity."

	assert.Equal(t, excellent, AdaptiveMessage(1))
	assert.Equal(t, excellent, AdaptiveMessage(0.8))
	assert.Equal(t, good, AdaptiveMessage(0.79))
	assert.Equal(t, good, AdaptiveMessage(0.6))
	assert.Equal(t, building, AdaptiveMessage(0.59))
	assert.Equal(t, building, AdaptiveMessage(0))
}
