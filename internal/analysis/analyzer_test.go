package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/confidex/internal/llm"
)

func validAnalysis() llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"clarity":           82,
		"correctness":       90,
		"confidence":        70,
		"reasoning_quality": 75,
		"short_feedback":    "Clear and correct; add a worked example.",
	})
}

func TestAnalyze(t *testing.T) {
	mock := llm.NewMockProvider(validAnalysis())
	a := New(mock, DefaultConfig(), zaptest.NewLogger(t))

	got := a.Analyze(t.Context(), "What is binary search?", "It halves a sorted range each step.")

	assert.Equal(t, SourceLLM, got.Source)
	assert.Equal(t, Scores{Clarity: 82, Correctness: 90, Confidence: 70, ReasoningQuality: 75}, got.Scores)
	assert.Equal(t, "Clear and correct; add a worked example.", got.Feedback)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, AnalysisSchema, calls[0].Schema)
	assert.Contains(t, calls[0].Messages[0].Content, "Question: What is binary search?")
	assert.Contains(t, calls[0].Messages[0].Content, "It halves a sorted range each step.")
}

func TestAnalyze_FallbackOnError(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: errors.New("boom")}},
		{"missing field", llm.MockJSON(map[string]any{"clarity": 10})},
		{"out of range", llm.MockJSON(map[string]any{
			"clarity": 150, "correctness": 1, "confidence": 1, "reasoning_quality": 1, "short_feedback": "x",
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(llm.NewMockProvider(tt.resp), DefaultConfig(), zaptest.NewLogger(t))
			assert.Equal(t, Fallback(), a.Analyze(t.Context(), "q", "a"))
		})
	}
}

func TestAnalyze_NilProvider(t *testing.T) {
	a := New(nil, DefaultConfig(), nil)
	got := a.Analyze(t.Context(), "q", "a")
	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, Scores{Clarity: 55, Correctness: 55, Confidence: 50, ReasoningQuality: 55}, got.Scores)
	assert.Equal(t, FallbackFeedback, got.Feedback)
}

func TestAnalyzeAll_KeepsOrder(t *testing.T) {
	mock := llm.NewMockProvider(validAnalysis(), validAnalysis())
	a := New(mock, Config{MaxTokens: 256, Concurrency: 1}, zaptest.NewLogger(t))

	got := a.AnalyzeAll(t.Context(), []Item{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"}, // queue exhausted
	})

	require.Len(t, got, 3)
	assert.Equal(t, SourceLLM, got[0].Source)
	assert.Equal(t, SourceLLM, got[1].Source)
	assert.Equal(t, SourceFallback, got[2].Source)
	assert.Equal(t, 3, mock.CallCount())
}

func TestBuildUserMessage_EmptyAnswer(t *testing.T) {
	msg := buildUserMessage("  Define a heap. ", "   ")
	assert.True(t, strings.HasPrefix(msg, "Question: Define a heap.\n"))
	assert.Contains(t, msg, "(no answer given)")
}
