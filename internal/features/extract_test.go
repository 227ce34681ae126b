package features

import (
	"testing"

	"github.com/abhisek/confidex/internal/textsignal"
)

func TestExtract(t *testing.T) {
	raw := RawAnswer{
		InitialAnswerTimeMs: 12500,
		EditCount:           2,
		FinalText:           "For example, a hash map gives constant-time lookups.",
		IsCorrect:           true,
		SelfConfidence:      80,
	}
	f := Extract(raw, QuestionContext{Question: "Why use a hash map?"})

	if f.ResponseTime != 13 {
		t.Errorf("ResponseTime = %d, want 13", f.ResponseTime)
	}
	if f.TimeToFirstWord != f.ResponseTime {
		t.Errorf("TimeToFirstWord = %d, want %d", f.TimeToFirstWord, f.ResponseTime)
	}
	if f.Revisions != 2 {
		t.Errorf("Revisions = %d, want 2", f.Revisions)
	}
	if f.ExplanationLength != len(raw.FinalText) {
		t.Errorf("ExplanationLength = %d, want %d", f.ExplanationLength, len(raw.FinalText))
	}
	if f.ExplanationDepth != textsignal.DepthMedium {
		t.Errorf("ExplanationDepth = %q, want medium", f.ExplanationDepth)
	}
	if f.ConceptCoverage != 100 {
		t.Errorf("ConceptCoverage = %d, want 100", f.ConceptCoverage)
	}
	if f.ConsistencyScore != NeutralConsistency {
		t.Errorf("ConsistencyScore = %d, want placeholder %d", f.ConsistencyScore, NeutralConsistency)
	}
	if !f.ApplicationSuccess {
		t.Error("ApplicationSuccess = false, want true for a correct medium answer")
	}
	if f.AnswerConfidenceAlignment != 100 {
		t.Errorf("AnswerConfidenceAlignment = %v, want 100", f.AnswerConfidenceAlignment)
	}
}

func TestExtract_ShallowCorrectIsNotApplication(t *testing.T) {
	f := Extract(RawAnswer{FinalText: "yes", IsCorrect: true}, QuestionContext{})
	if f.ApplicationSuccess {
		t.Error("shallow answers should not count as application success")
	}
	if f.ConceptCoverage != textsignal.NeutralCoverage {
		t.Errorf("ConceptCoverage = %d, want neutral", f.ConceptCoverage)
	}
}

func TestExtract_CuratedKeywords(t *testing.T) {
	f := Extract(
		RawAnswer{FinalText: "Use a mutex."},
		QuestionContext{Question: "How do you avoid races?", Keywords: []string{"mutex", "channel"}},
	)
	if f.ConceptCoverage != 50 {
		t.Errorf("ConceptCoverage = %d, want 50", f.ConceptCoverage)
	}
}

func TestTextLength_UTF16Units(t *testing.T) {
	if got := textLength("héllo"); got != 5 {
		t.Errorf("textLength(héllo) = %d, want 5", got)
	}
	if got := textLength("ok 👍"); got != 5 {
		t.Errorf("textLength(ok 👍) = %d, want 5", got)
	}
}
