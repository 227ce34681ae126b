package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/analysis"
	"github.com/abhisek/confidex/internal/llm"
	"github.com/abhisek/confidex/internal/session"
	"github.com/abhisek/confidex/internal/store"
)

// newProvider builds the configured LLM provider. It returns a nil provider
// when nothing is configured, and callers fall back to offline output.
func (e *env) newProvider(ctx context.Context, rec llm.Recorder) (llm.Provider, error) {
	cfg, ok := llm.Resolve()
	if !ok {
		e.log.Info("no LLM provider configured, using offline fallbacks")
		return nil, nil
	}
	p, err := llm.New(ctx, cfg, rec, e.log)
	if err != nil {
		return nil, err
	}
	e.log.Debug("llm provider ready",
		zap.String("provider", string(cfg.Provider)),
		zap.String("model", p.ModelID()))
	return p, nil
}

// evaluate scores the session and, when analyze is set, adds the rubric
// review.
func (e *env) evaluate(ctx context.Context, s session.Session, opts session.Options, analyze bool, rec llm.Recorder) (session.Report, error) {
	report := session.Evaluate(s, opts)
	if !analyze {
		return report, nil
	}
	provider, err := e.newProvider(ctx, rec)
	if err != nil {
		return report, fmt.Errorf("llm provider: %w", err)
	}
	review := session.BuildReview(ctx, s, analysis.New(provider, analysis.DefaultConfig(), e.log))
	report.Review = &review
	return report, nil
}

func readSessionFile(path string) (session.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return session.Session{}, err
	}
	defer f.Close()
	s, err := session.Decode(f)
	if err != nil {
		return session.Session{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toRecord(a session.AnswerInput) store.AnswerRecord {
	return store.AnswerRecord{
		QuestionID:          a.QuestionID,
		Topic:               a.Topic,
		Question:            a.Question,
		Keywords:            a.Keywords,
		Explanation:         a.Explanation,
		IsCorrect:           a.IsCorrect,
		SelfConfidence:      a.SelfConfidence,
		TotalTime:           a.TotalTime,
		InitialAnswerTimeMs: a.InitialAnswerTimeMs,
		EditCount:           a.EditCount,
	}
}

func fromRecord(r store.AnswerRecord) session.AnswerInput {
	return session.AnswerInput{
		QuestionID:          r.QuestionID,
		Topic:               r.Topic,
		Question:            r.Question,
		Keywords:            r.Keywords,
		Explanation:         r.Explanation,
		IsCorrect:           r.IsCorrect,
		SelfConfidence:      r.SelfConfidence,
		TotalTime:           r.TotalTime,
		InitialAnswerTimeMs: r.InitialAnswerTimeMs,
		EditCount:           r.EditCount,
	}
}
