package analysis

import "github.com/abhisek/confidex/internal/llm"

func scoreProperty(description string) map[string]any {
	return map[string]any{
		"type":        "number",
		"minimum":     0,
		"maximum":     100,
		"description": description,
	}
}

// AnalysisSchema is the response shape requested from the model.
var AnalysisSchema = &llm.Schema{
	Name:        "answer-analysis",
	Description: "Rubric scores and short feedback for one written answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clarity":           scoreProperty("Clarity of explanation (0-100)"),
			"correctness":       scoreProperty("Correctness of understanding (0-100)"),
			"confidence":        scoreProperty("Self-confidence alignment (0-100)"),
			"reasoning_quality": scoreProperty("Quality of reasoning and examples (0-100)"),
			"short_feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences on strengths and areas to improve",
			},
		},
		"required":             []any{"clarity", "correctness", "confidence", "reasoning_quality", "short_feedback"},
		"additionalProperties": false,
	},
}
