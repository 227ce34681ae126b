package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/confidex/internal/analysis"
	"github.com/abhisek/confidex/internal/concept"
	"github.com/abhisek/confidex/internal/explain"
	"github.com/abhisek/confidex/internal/session"
)

func sampleReport(t *testing.T) session.Report {
	t.Helper()
	s := session.New("algorithms")
	for _, a := range []session.AnswerInput{
		{QuestionID: "q1", Topic: "arrays", Explanation: "For example, a hash map gives constant-time lookups.", IsCorrect: true, SelfConfidence: 80, TotalTime: 25, InitialAnswerTimeMs: 12500},
		{QuestionID: "q2", Topic: "graphs", Explanation: "idk", SelfConfidence: 90, TotalTime: 40, InitialAnswerTimeMs: 3000},
	} {
		var err error
		s, err = s.Record(a)
		require.NoError(t, err)
	}
	return session.Evaluate(s, session.Options{})
}

func TestReport(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Confidence Report: algorithms")
	assert.Contains(t, out, r.SessionID)
	assert.Contains(t, out, "1/2 correct")
	assert.Contains(t, out, "arrays")
	assert.Contains(t, out, "graphs")
	assert.Contains(t, out, "Strong Confidence")
	assert.Contains(t, out, r.AdaptiveMessage)
	assert.Contains(t, out, "Concept Clarity")
	assert.Contains(t, out, "Industry Readiness")
	for _, insight := range r.Insights {
		assert.Contains(t, out, insight)
	}
	assert.NotContains(t, out, "Answer Review")
}

func TestReport_WithReview(t *testing.T) {
	r := sampleReport(t)
	r.Review = &session.Review{
		Answers: []session.AnswerReview{{QuestionID: "q1", Topic: "arrays", Analysis: analysis.Fallback()}},
		Concepts: []concept.Evaluation{
			concept.Evaluate("arrays", []analysis.Scores{analysis.Fallback().Scores}),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Answer Review")
	assert.Contains(t, out, analysis.FallbackFeedback)
	assert.Contains(t, out, "Medium")
}

func TestReport_Empty(t *testing.T) {
	r := session.Evaluate(session.New(""), session.Options{})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Confidence Report: Assessment")
	assert.NotContains(t, out, "Topics")
	assert.Contains(t, out, "Confidence Profile")
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
		label   string
	}{
		{0, 0, "  0%"},
		{0.5, 5, " 50%"},
		{1, 10, "100%"},
		{1.5, 10, "150%"},
		{-1, 0, "-100%"},
	}
	for _, tt := range tests {
		got := Bar(tt.percent, 10)
		assert.Equal(t, tt.filled, strings.Count(got, "█"), "percent %v", tt.percent)
		assert.Equal(t, 10-tt.filled, strings.Count(got, "░"), "percent %v", tt.percent)
		assert.Contains(t, got, tt.label)
	}
}

func TestLabelStyle(t *testing.T) {
	assert.Equal(t, Strong, LabelStyle("Strong Confidence"))
	assert.Equal(t, Moderate, LabelStyle("Moderate"))
	assert.Equal(t, Moderate, LabelStyle("Medium"))
	assert.Equal(t, Weak, LabelStyle("Needs Clarity"))
	assert.Equal(t, Weak, LabelStyle("Weak"))
}

func TestConcepts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Concepts(&buf, concept.Extract("Binary Search\nIt halves a sorted range.")))
	assert.Contains(t, buf.String(), "Binary Search")
	assert.Contains(t, buf.String(), "It halves a sorted range.")

	buf.Reset()
	require.NoError(t, Concepts(&buf, nil))
	assert.Contains(t, buf.String(), "No concepts found.")
}

func TestExplanation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Explanation(&buf, explain.Fallback("Heaps", "A heap is a tree.")))
	out := buf.String()
	assert.Contains(t, out, "Heaps")
	assert.Contains(t, out, "(offline explanation)")
	assert.Contains(t, out, explain.FallbackExample)
}
