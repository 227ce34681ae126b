package textsignal

import (
	"strings"

	"github.com/abhisek/confidex/internal/calc"
)

// NeutralCoverage is returned when there are no keywords to measure against.
const NeutralCoverage = 50

// ConceptCoverage estimates the percentage (0-100) of keywords that appear in
// the explanation. With no curated keywords they are derived from the question
// text. The question is part of the searched text, so derived keywords always
// match. That matches the observed behavior.
func ConceptCoverage(explanation, question string, keywords []string) int {
	if len(keywords) == 0 {
		keywords = ExtractKeywords(question)
	}
	if len(keywords) == 0 {
		return NeutralCoverage
	}

	haystack := strings.ToLower(explanation + " " + question)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			matched++
		}
	}

	coverage := float64(matched) / float64(len(keywords)) * 100
	return calc.RoundInt(min(coverage, 100))
}
