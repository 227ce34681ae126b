package features

import (
	"unicode/utf16"

	"github.com/abhisek/confidex/internal/calc"
	"github.com/abhisek/confidex/internal/textsignal"
)

// Extract builds the behavioral features for a single answer.
func Extract(raw RawAnswer, qc QuestionContext) BehavioralFeatures {
	depth := textsignal.EstimateDepth(raw.FinalText)
	seconds := calc.RoundInt(float64(raw.InitialAnswerTimeMs) / 1000)

	return BehavioralFeatures{
		ResponseTime:              seconds,
		Revisions:                 raw.EditCount,
		ExplanationLength:         textLength(raw.FinalText),
		ExplanationDepth:          depth,
		ConceptCoverage:           textsignal.ConceptCoverage(raw.FinalText, qc.Question, qc.Keywords),
		ConsistencyScore:          NeutralConsistency,
		ApplicationSuccess:        raw.IsCorrect && depth != textsignal.DepthShallow,
		TimeToFirstWord:           seconds,
		AnswerConfidenceAlignment: Alignment(raw.SelfConfidence, raw.IsCorrect),
	}
}

// textLength counts UTF-16 code units, so astral characters such as emoji
// count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
