package session

import (
	"time"

	"github.com/abhisek/confidex/internal/scoring"
)

// Stats holds the plain counts shown at the top of a report.
type Stats struct {
	Duration       time.Duration `json:"duration"`
	TotalQuestions int           `json:"total_questions"`
	TotalCorrect   int           `json:"total_correct"`
	Accuracy       float64       `json:"accuracy"`
	Topics         []TopicResult `json:"topics"`
}

// TopicResult is the per-topic answer count.
type TopicResult struct {
	Topic     string `json:"topic"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
}

// BuildStats counts answers overall and per topic, in first-seen topic order.
// Duration is the sum of answer times.
func BuildStats(qs []scoring.QuestionMetadata) Stats {
	st := Stats{TotalQuestions: len(qs), Topics: []TopicResult{}}
	index := make(map[string]int)
	var seconds float64
	for _, q := range qs {
		seconds += q.TotalTime
		idx, ok := index[q.Topic]
		if !ok {
			idx = len(st.Topics)
			index[q.Topic] = idx
			st.Topics = append(st.Topics, TopicResult{Topic: q.Topic})
		}
		st.Topics[idx].Attempted++
		if q.IsCorrect {
			st.TotalCorrect++
			st.Topics[idx].Correct++
		}
	}
	if st.TotalQuestions > 0 {
		st.Accuracy = float64(st.TotalCorrect) / float64(st.TotalQuestions)
	}
	st.Duration = time.Duration(seconds * float64(time.Second))
	return st
}
