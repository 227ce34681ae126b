// Package explain produces plain-language explanations of a concept with a
// practical example.
package explain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/llm"
)

// Sources of an Explanation.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// FallbackExample is the example used when the model is unavailable.
const FallbackExample = "For example, imagine applying this concept in a small project or daily task."

// fallbackExcerpt is how much of the content the fallback quotes, in runes.
const fallbackExcerpt = 180

// Explanation is a simple-language rendering of one concept.
type Explanation struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	Source      string `json:"source"`
}

// ExplanationSchema is the response shape requested from the model.
var ExplanationSchema = &llm.Schema{
	Name:        "concept-explanation",
	Description: "A simple explanation of a concept with one practical example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "The concept explained in simple language (2-4 sentences)",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "One practical, real-world example",
			},
		},
		"required":             []any{"explanation", "example"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a learning assistant.
Explain the concept you are given in simple language and provide a practical example.
Respond with JSON only.`

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.5}
}

// Explainer explains concepts. A nil provider always yields the fallback.
type Explainer struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates an Explainer.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Explainer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Explainer{provider: provider, cfg: cfg, log: log}
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Explain never fails; model errors are logged and replaced by Fallback.
func (e *Explainer) Explain(ctx context.Context, title, content string) Explanation {
	if e.provider == nil {
		return Fallback(title, content)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)
	req := llm.UserPrompt(systemPrompt, fmt.Sprintf("Title: %s\nContent: %s", title, content))
	req.Schema = ExplanationSchema
	req.MaxTokens = e.cfg.MaxTokens
	req.Temperature = e.cfg.Temperature

	var out explanationOutput
	if _, err := llm.GenerateInto(ctx, e.provider, req, &out); err != nil {
		e.log.Warn("concept explanation failed, using fallback",
			zap.String("concept", title),
			zap.Error(err))
		return Fallback(title, content)
	}

	return Explanation{
		Concept:     title,
		Explanation: out.Explanation,
		Example:     out.Example,
		Source:      SourceLLM,
	}
}

// Fallback rephrases the start of the content without a model.
func Fallback(title, content string) Explanation {
	return Explanation{
		Concept:     title,
		Explanation: fmt.Sprintf("%s: In simple terms, this refers to %s...", title, excerpt(content, fallbackExcerpt)),
		Example:     FallbackExample,
		Source:      SourceFallback,
	}
}

func excerpt(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
