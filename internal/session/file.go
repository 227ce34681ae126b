package session

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// File is the on-disk form of an answered session.
type File struct {
	ID        string        `json:"id,omitempty"`
	Subject   string        `json:"subject"`
	StartedAt *time.Time    `json:"started_at,omitempty"`
	Answers   []AnswerInput `json:"answers"`
}

// Decode reads a session file and records every answer. A missing id or
// start time is filled in.
func Decode(r io.Reader) (Session, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}

	s := New(f.Subject)
	if f.ID != "" {
		s.ID = f.ID
	}
	if f.StartedAt != nil {
		s.StartedAt = f.StartedAt.UTC()
	}
	for i, a := range f.Answers {
		next, err := s.Record(a)
		if err != nil {
			return Session{}, fmt.Errorf("answer %d: %w", i, err)
		}
		s = next
	}
	return s, nil
}

// Encode writes the session in file form.
func Encode(w io.Writer, s Session) error {
	started := s.StartedAt
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(File{
		ID:        s.ID,
		Subject:   s.Subject,
		StartedAt: &started,
		Answers:   s.Answers(),
	})
}
