package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/confidex/internal/features"
	"github.com/abhisek/confidex/internal/scoring"
)

// ErrInvalidAnswer is returned when an answer fails validation.
var ErrInvalidAnswer = errors.New("invalid answer")

// AnswerInput is everything the host captures for one answered question.
type AnswerInput struct {
	QuestionID          string   `json:"question_id"`
	Topic               string   `json:"topic"`
	Question            string   `json:"question,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
	Explanation         string   `json:"explanation"`
	IsCorrect           bool     `json:"is_correct"`
	SelfConfidence      float64  `json:"self_confidence"` // 0-100
	TotalTime           float64  `json:"total_time"`      // seconds
	InitialAnswerTimeMs int64    `json:"initial_answer_time_ms"`
	EditCount           int      `json:"edit_count"`
}

// Validate checks the ranges the scorers rely on.
func (a AnswerInput) Validate() error {
	switch {
	case strings.TrimSpace(a.QuestionID) == "":
		return fmt.Errorf("%w: question_id is required", ErrInvalidAnswer)
	case strings.TrimSpace(a.Topic) == "":
		return fmt.Errorf("%w: %s: topic is required", ErrInvalidAnswer, a.QuestionID)
	case a.SelfConfidence < 0 || a.SelfConfidence > 100:
		return fmt.Errorf("%w: %s: self_confidence %v outside 0..100", ErrInvalidAnswer, a.QuestionID, a.SelfConfidence)
	case a.TotalTime < 0:
		return fmt.Errorf("%w: %s: total_time %v is negative", ErrInvalidAnswer, a.QuestionID, a.TotalTime)
	case a.InitialAnswerTimeMs < 0:
		return fmt.Errorf("%w: %s: initial_answer_time_ms %d is negative", ErrInvalidAnswer, a.QuestionID, a.InitialAnswerTimeMs)
	case a.EditCount < 0:
		return fmt.Errorf("%w: %s: edit_count %d is negative", ErrInvalidAnswer, a.QuestionID, a.EditCount)
	}
	return nil
}

// Metadata is the rule-based scorer's view of the answer.
func (a AnswerInput) Metadata() scoring.QuestionMetadata {
	return scoring.QuestionMetadata{
		QuestionID:     a.QuestionID,
		IsCorrect:      a.IsCorrect,
		TotalTime:      a.TotalTime,
		UserConfidence: a.SelfConfidence,
		Topic:          a.Topic,
	}
}

// Raw is the feature extractor's view of the answer.
func (a AnswerInput) Raw() (features.RawAnswer, features.QuestionContext) {
	return features.RawAnswer{
			InitialAnswerTimeMs: a.InitialAnswerTimeMs,
			EditCount:           a.EditCount,
			FinalText:           a.Explanation,
			IsCorrect:           a.IsCorrect,
			SelfConfidence:      a.SelfConfidence,
		}, features.QuestionContext{
			Question: a.Question,
			Keywords: a.Keywords,
		}
}
