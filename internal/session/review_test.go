package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/confidex/internal/analysis"
	"github.com/abhisek/confidex/internal/concept"
	"github.com/abhisek/confidex/internal/llm"
)

func rubric(clarity, correctness, confidence, reasoning float64) llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"clarity":           clarity,
		"correctness":       correctness,
		"confidence":        confidence,
		"reasoning_quality": reasoning,
		"short_feedback":    "ok",
	})
}

func TestBuildReview(t *testing.T) {
	mock := llm.NewMockProvider(rubric(80, 90, 70, 60), rubric(70, 80, 60, 50))
	a := analysis.New(mock, analysis.Config{MaxTokens: 256, Concurrency: 1}, zaptest.NewLogger(t))

	review := BuildReview(t.Context(), sampleSession(t), a)

	require.Len(t, review.Answers, 3)
	assert.Equal(t, "q1", review.Answers[0].QuestionID)
	assert.Equal(t, analysis.SourceLLM, review.Answers[1].Analysis.Source)
	assert.Equal(t, analysis.SourceFallback, review.Answers[2].Analysis.Source)

	require.Len(t, review.Concepts, 2)
	assert.Equal(t, "arrays", review.Concepts[0].Concept)
	assert.Equal(t, 76, review.Concepts[0].Score)
	assert.Equal(t, concept.StatusStrong, review.Concepts[0].Status)

	assert.Equal(t, "graphs", review.Concepts[1].Concept)
	assert.Equal(t, 54, review.Concepts[1].Score)
	assert.Equal(t, concept.StatusMedium, review.Concepts[1].Status)
	assert.Equal(t, []string{"correctness", "clarity", "reasoning quality"}, review.Concepts[1].WeakPoints)

	calls := mock.Calls()
	require.Len(t, calls, 3)
	assert.Contains(t, calls[2].Messages[0].Content, "What is a topological order?")
	assert.Contains(t, calls[2].Messages[0].Content, "idk")
}

func TestBuildReview_MissingQuestionText(t *testing.T) {
	s, err := New("algorithms").Record(AnswerInput{QuestionID: "q1", Topic: "tries", Explanation: "prefix tree", SelfConfidence: 50, TotalTime: 30})
	require.NoError(t, err)

	mock := llm.NewMockProvider()
	BuildReview(t.Context(), s, analysis.New(mock, analysis.DefaultConfig(), nil))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[0].Content, "Question: Explain your understanding of tries.")
}

func TestBuildReview_Empty(t *testing.T) {
	review := BuildReview(t.Context(), New("x"), analysis.New(nil, analysis.DefaultConfig(), nil))
	assert.Empty(t, review.Answers)
	assert.NotNil(t, review.Concepts)
}
