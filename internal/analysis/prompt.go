package analysis

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `You are an expert educational evaluator.

Evaluate the student's response on these dimensions, each from 0 to 100:
1. Clarity of explanation
2. Correctness of understanding
3. Self-confidence alignment
4. Quality of reasoning and examples

Give constructive feedback focusing on strengths and areas for improvement.
Respond with JSON only.`

func buildUserMessage(question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", strings.TrimSpace(question))
	b.WriteString("Student's Answer:\n")
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = "(no answer given)"
	}
	b.WriteString(answer)
	return b.String()
}
