package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RequestRecord is one LLM call as written to the request log.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Recorder persists request records.
type Recorder interface {
	RecordLLMRequest(ctx context.Context, rec RequestRecord) error
}

// RecordingProvider writes a RequestRecord for every call. Recorder failures
// are logged and never fail the call.
type RecordingProvider struct {
	inner    Provider
	name     ProviderName
	recorder Recorder
	log      *zap.Logger
}

// WithRecording wraps p so each call is recorded under the provider name.
func WithRecording(p Provider, name ProviderName, rec Recorder, log *zap.Logger) *RecordingProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordingProvider{inner: p, name: name, recorder: rec, log: log}
}

func (l *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Provider:    string(l.name),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: Transcript(req),
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			rec.Model = resp.Model
		}
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		zap.String("provider", rec.Provider),
		zap.String("model", rec.Model),
		zap.String("purpose", rec.Purpose),
		zap.Int64("latency_ms", rec.LatencyMs),
		zap.Int("input_tokens", rec.InputTokens),
		zap.Int("output_tokens", rec.OutputTokens),
		zap.Bool("success", rec.Success))

	if l.recorder != nil {
		// Recording must outlive a cancelled request context.
		if recErr := l.recorder.RecordLLMRequest(context.WithoutCancel(ctx), rec); recErr != nil {
			l.log.Warn("failed to record llm request", zap.Error(recErr))
		}
	}
	return resp, err
}

func (l *RecordingProvider) ModelID() string { return l.inner.ModelID() }

// Transcript renders a request as readable text for the request log.
func Transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
