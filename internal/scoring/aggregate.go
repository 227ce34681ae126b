package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/abhisek/confidex/internal/calc"
)

// HighConfidenceCutoff is the self-confidence at or above which an answer
// counts as confident when measuring calibration across a session.
const HighConfidenceCutoff = 70.0

// TopicCategory is the tier of a topic's average confidence.
type TopicCategory string

const (
	TopicStrong       TopicCategory = "Strong"
	TopicModerate     TopicCategory = "Moderate"
	TopicNeedsClarity TopicCategory = "Needs Clarity"
)

// TopicCategoryFor maps a percentage (0-100) to a topic tier.
func TopicCategoryFor(percentage float64) TopicCategory {
	switch {
	case percentage >= StrongCutoff:
		return TopicStrong
	case percentage >= ModerateCutoff:
		return TopicModerate
	default:
		return TopicNeedsClarity
	}
}

// TopicScore is the averaged confidence of one topic.
type TopicScore struct {
	Topic    string        `json:"-"`
	Score    float64       `json:"score"`
	Count    int           `json:"count"`
	Category TopicCategory `json:"category"`
}

// TopicScores keeps topics in first-seen order. It serializes as a JSON
// object keyed by topic name.
type TopicScores []TopicScore

// Get returns the score for a topic.
func (ts TopicScores) Get(topic string) (TopicScore, bool) {
	for _, t := range ts {
		if t.Topic == topic {
			return t, true
		}
	}
	return TopicScore{}, false
}

// Names returns the topic names in order.
func (ts TopicScores) Names() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Topic
	}
	return out
}

// MarshalJSON encodes the topics as an object, preserving order.
func (ts TopicScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range ts {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Topic)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by topic, keeping document order.
func (ts *TopicScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*ts = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("topic scores: expected object, got %v", tok)
	}

	out := TopicScores{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("topic scores: expected key, got %v", tok)
		}
		var t TopicScore
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("topic scores: %s: %w", name, err)
		}
		t.Topic = name
		out = append(out, t)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*ts = out
	return nil
}

// Summary is the session-level aggregate of the rule-based scorer.
type Summary struct {
	OverallScore     float64     `json:"overall_score"`
	TopicScores      TopicScores `json:"topic_scores"`
	AverageTime      float64     `json:"average_time"`
	ConsistencyScore int         `json:"consistency_score"`
}

// Aggregate scores every question and rolls the results up per session and
// per topic. An empty session yields the zero summary with no topics.
func Aggregate(questions []QuestionMetadata) Summary {
	if len(questions) == 0 {
		return Summary{TopicScores: TopicScores{}}
	}

	results := ScoreQuestions(questions)
	finals := make([]float64, len(results))
	for i, r := range results {
		finals[i] = r.FinalConfidence
	}
	overall := mean(finals)

	// Sum per topic in first-seen order, then average.
	sums := TopicScores{}
	index := make(map[string]int)
	for i, q := range questions {
		idx, ok := index[q.Topic]
		if !ok {
			idx = len(sums)
			index[q.Topic] = idx
			sums = append(sums, TopicScore{Topic: q.Topic})
		}
		sums[idx].Score += results[i].FinalConfidence
		sums[idx].Count++
	}
	for i := range sums {
		avg := sums[i].Score / float64(sums[i].Count)
		sums[i].Score = calc.RoundTo(avg, 2)
		sums[i].Category = TopicCategoryFor(avg * 100)
	}

	times := make([]float64, len(questions))
	aligned := 0
	for i, q := range questions {
		times[i] = q.TotalTime
		if (q.UserConfidence >= HighConfidenceCutoff) == q.IsCorrect {
			aligned++
		}
	}

	return Summary{
		OverallScore:     calc.RoundTo(overall, 2),
		TopicScores:      sums,
		AverageTime:      calc.RoundTo(mean(times), 1),
		ConsistencyScore: calc.RoundInt(float64(aligned) / float64(len(questions)) * 100),
	}
}

// mean is the arithmetic mean of a non-empty slice, summed left to right.
func mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}
