package session

import (
	"github.com/abhisek/confidex/internal/features"
	"github.com/abhisek/confidex/internal/profile"
	"github.com/abhisek/confidex/internal/scoring"
)

// Options tunes Evaluate.
type Options struct {
	// CrossQuestionConsistency replaces the neutral consistency placeholder
	// with a score against each answer's predecessors.
	CrossQuestionConsistency bool
}

// QuestionReport is the scored outcome of one answer.
type QuestionReport struct {
	QuestionID string                      `json:"question_id"`
	Topic      string                      `json:"topic"`
	Result     scoring.ConfidenceResult    `json:"result"`
	Features   features.BehavioralFeatures `json:"features"`
}

// Report is the full evaluation of a session.
type Report struct {
	SessionID       string           `json:"session_id"`
	Subject         string           `json:"subject"`
	Stats           Stats            `json:"stats"`
	Questions       []QuestionReport `json:"questions"`
	Summary         scoring.Summary  `json:"summary"`
	Insights        []string         `json:"insights"`
	AdaptiveMessage string           `json:"adaptive_message"`
	Profile         profile.Profile  `json:"profile"`

	// Review is set only when answers were sent through rubric analysis.
	Review *Review `json:"review,omitempty"`
}

// Evaluate runs both scoring paths over the same snapshot of the session.
// The rule-based path and the profile path are independent.
func Evaluate(s Session, opts Options) Report {
	meta := s.Metadata()
	fs := s.Features()
	correct := s.Correctness()
	if opts.CrossQuestionConsistency {
		fs = features.WithConsistency(fs, correct)
	}

	results := scoring.ScoreQuestions(meta)
	questions := make([]QuestionReport, len(meta))
	for i, q := range meta {
		questions[i] = QuestionReport{
			QuestionID: q.QuestionID,
			Topic:      q.Topic,
			Result:     results[i],
			Features:   fs[i],
		}
	}

	summary := scoring.Aggregate(meta)

	return Report{
		SessionID:       s.ID,
		Subject:         s.Subject,
		Stats:           BuildStats(meta),
		Questions:       questions,
		Summary:         summary,
		Insights:        scoring.Insights(meta, summary),
		AdaptiveMessage: scoring.AdaptiveMessage(summary.OverallScore),
		Profile:         profile.Build(fs, correct),
	}
}
