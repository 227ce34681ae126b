package session

import (
	"context"

	"github.com/abhisek/confidex/internal/analysis"
	"github.com/abhisek/confidex/internal/concept"
)

// AnswerAnalyzer scores written answers against the rubric.
type AnswerAnalyzer interface {
	AnalyzeAll(ctx context.Context, items []analysis.Item) []analysis.Analysis
}

// AnswerReview is the rubric analysis of one answer.
type AnswerReview struct {
	QuestionID string            `json:"question_id"`
	Topic      string            `json:"topic"`
	Analysis   analysis.Analysis `json:"analysis"`
}

// Review is the rubric view of a session: every answer analyzed, and every
// topic graded as a concept from its answers' scores.
type Review struct {
	Answers  []AnswerReview       `json:"answers"`
	Concepts []concept.Evaluation `json:"concepts"`
}

// BuildReview analyzes every answer and evaluates each topic, in first-seen
// topic order.
func BuildReview(ctx context.Context, s Session, a AnswerAnalyzer) Review {
	items := make([]analysis.Item, len(s.answers))
	for i, ans := range s.answers {
		q := ans.Question
		if q == "" {
			q = "Explain your understanding of " + ans.Topic + "."
		}
		items[i] = analysis.Item{Question: q, Answer: ans.Explanation}
	}
	results := a.AnalyzeAll(ctx, items)

	review := Review{
		Answers:  make([]AnswerReview, len(s.answers)),
		Concepts: []concept.Evaluation{},
	}
	var topics []string
	byTopic := make(map[string][]analysis.Scores)
	for i, ans := range s.answers {
		review.Answers[i] = AnswerReview{
			QuestionID: ans.QuestionID,
			Topic:      ans.Topic,
			Analysis:   results[i],
		}
		if _, ok := byTopic[ans.Topic]; !ok {
			topics = append(topics, ans.Topic)
		}
		byTopic[ans.Topic] = append(byTopic[ans.Topic], results[i].Scores)
	}
	for _, t := range topics {
		review.Concepts = append(review.Concepts, concept.Evaluate(t, byTopic[t]))
	}
	return review
}
