// Package features turns one raw answer event into the behavioral signals
// consumed by the profile builder.
package features

import "github.com/abhisek/confidex/internal/textsignal"

// RawAnswer is what the host captures while a learner answers a question.
type RawAnswer struct {
	InitialAnswerTimeMs int64   `json:"initial_answer_time_ms"`
	EditCount           int     `json:"edit_count"`
	FinalText           string  `json:"final_text"`
	IsCorrect           bool    `json:"is_correct"`
	SelfConfidence      float64 `json:"self_confidence"` // 0-100
}

// QuestionContext carries optional question information used for coverage.
type QuestionContext struct {
	Question string `json:"question"`
	// Keywords is a curated keyword list. Empty means derive from Question.
	Keywords []string `json:"keywords,omitempty"`
}

// BehavioralFeatures is the per-answer signal record.
type BehavioralFeatures struct {
	ResponseTime              int              `json:"response_time"` // seconds
	Revisions                 int              `json:"revisions"`
	ExplanationLength         int              `json:"explanation_length"`
	ExplanationDepth          textsignal.Depth `json:"explanation_depth"`
	ConceptCoverage           int              `json:"concept_coverage"`  // 0-100
	ConsistencyScore          int              `json:"consistency_score"` // 0-100
	ApplicationSuccess        bool             `json:"application_success"`
	TimeToFirstWord           int              `json:"time_to_first_word"`          // seconds
	AnswerConfidenceAlignment float64          `json:"answer_confidence_alignment"` // -100..100
}
