// Package session holds the immutable answered-session aggregate and turns
// it into a full confidence report.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/confidex/internal/features"
	"github.com/abhisek/confidex/internal/scoring"
)

// Session is an ordered, immutable snapshot of answered questions. Record
// returns a new Session and leaves the receiver untouched.
type Session struct {
	ID        string
	Subject   string
	StartedAt time.Time

	answers []AnswerInput
}

// New starts an empty session with a fresh ID.
func New(subject string) Session {
	return Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		StartedAt: time.Now().UTC(),
	}
}

// Restore rebuilds a session from stored answers, validating each one.
func Restore(id, subject string, startedAt time.Time, answers []AnswerInput) (Session, error) {
	s := Session{ID: id, Subject: subject, StartedAt: startedAt}
	for _, a := range answers {
		next, err := s.Record(a)
		if err != nil {
			return Session{}, fmt.Errorf("restore session %s: %w", id, err)
		}
		s = next
	}
	return s, nil
}

// Record validates the answer and returns a session with it appended.
func (s Session) Record(a AnswerInput) (Session, error) {
	if err := a.Validate(); err != nil {
		return s, err
	}
	next := s
	next.answers = make([]AnswerInput, len(s.answers), len(s.answers)+1)
	copy(next.answers, s.answers)
	next.answers = append(next.answers, a)
	return next, nil
}

// Len is the number of recorded answers.
func (s Session) Len() int { return len(s.answers) }

// Answers returns a copy of the recorded answers.
func (s Session) Answers() []AnswerInput {
	out := make([]AnswerInput, len(s.answers))
	copy(out, s.answers)
	return out
}

// Metadata returns the scorer input for every answer in order.
func (s Session) Metadata() []scoring.QuestionMetadata {
	out := make([]scoring.QuestionMetadata, len(s.answers))
	for i, a := range s.answers {
		out[i] = a.Metadata()
	}
	return out
}

// Features extracts behavioral features for every answer in order.
func (s Session) Features() []features.BehavioralFeatures {
	out := make([]features.BehavioralFeatures, len(s.answers))
	for i, a := range s.answers {
		raw, qc := a.Raw()
		out[i] = features.Extract(raw, qc)
	}
	return out
}

// Correctness returns the correctness flag of every answer in order.
func (s Session) Correctness() []bool {
	out := make([]bool, len(s.answers))
	for i, a := range s.answers {
		out[i] = a.IsCorrect
	}
	return out
}
