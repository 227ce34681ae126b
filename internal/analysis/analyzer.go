// Package analysis scores a written answer against a rubric with an LLM and
// falls back to fixed neutral scores when the model is unavailable.
package analysis

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/confidex/internal/llm"
)

// Sources of an Analysis.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// FallbackFeedback is returned when no model analysis could be produced.
const FallbackFeedback = "Unable to generate AI analysis. Please try again or check your explanation detail."

// Scores are the four rubric scores, each 0-100.
type Scores struct {
	Clarity          float64 `json:"clarity"`
	Correctness      float64 `json:"correctness"`
	Confidence       float64 `json:"confidence"`
	ReasoningQuality float64 `json:"reasoning_quality"`
}

// Analysis is the rubric result for one answer.
type Analysis struct {
	Scores
	Feedback string `json:"short_feedback"`
	Source   string `json:"source"`
}

// Fallback is the analysis used whenever the model call fails.
func Fallback() Analysis {
	return Analysis{
		Scores: Scores{
			Clarity:          55,
			Correctness:      55,
			Confidence:       50,
			ReasoningQuality: 55,
		},
		Feedback: FallbackFeedback,
		Source:   SourceFallback,
	}
}

// Config holds analysis generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Concurrency int // parallel calls in AnalyzeAll
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
		Concurrency: 4,
	}
}

// Analyzer runs rubric analysis. A nil provider always yields the fallback.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates an Analyzer.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{provider: provider, cfg: cfg, log: log}
}

type analysisOutput struct {
	Clarity          float64 `json:"clarity"`
	Correctness      float64 `json:"correctness"`
	Confidence       float64 `json:"confidence"`
	ReasoningQuality float64 `json:"reasoning_quality"`
	ShortFeedback    string  `json:"short_feedback"`
}

// Analyze scores one answer. It never fails; errors are logged and replaced
// by Fallback.
func (a *Analyzer) Analyze(ctx context.Context, question, answer string) Analysis {
	if a.provider == nil {
		return Fallback()
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAnswerAnalysis)
	req := llm.UserPrompt(analysisSystemPrompt, buildUserMessage(question, answer))
	req.Schema = AnalysisSchema
	req.MaxTokens = a.cfg.MaxTokens
	req.Temperature = a.cfg.Temperature

	var out analysisOutput
	if _, err := llm.GenerateInto(ctx, a.provider, req, &out); err != nil {
		a.log.Warn("answer analysis failed, using fallback",
			zap.String("model", a.provider.ModelID()),
			zap.Error(err))
		return Fallback()
	}

	return Analysis{
		Scores: Scores{
			Clarity:          out.Clarity,
			Correctness:      out.Correctness,
			Confidence:       out.Confidence,
			ReasoningQuality: out.ReasoningQuality,
		},
		Feedback: out.ShortFeedback,
		Source:   SourceLLM,
	}
}

// Item is one question/answer pair for AnalyzeAll.
type Item struct {
	Question string
	Answer   string
}

// AnalyzeAll analyzes items concurrently, keeping input order.
func (a *Analyzer) AnalyzeAll(ctx context.Context, items []Item) []Analysis {
	out := make([]Analysis, len(items))

	var g errgroup.Group
	if a.cfg.Concurrency > 0 {
		g.SetLimit(a.cfg.Concurrency)
	}
	for i, it := range items {
		g.Go(func() error {
			out[i] = a.Analyze(ctx, it.Question, it.Answer)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
