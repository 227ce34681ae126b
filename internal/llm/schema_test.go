package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

var scoreSchema = &Schema{
	Name: "test-score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":    map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"feedback": map[string]any{"type": "string"},
		},
		"required":             []string{"score", "feedback"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"score":42,"feedback":"ok"}`, false},
		{"not json", `score: 42`, true},
		{"missing field", `{"score":42}`, true},
		{"out of range", `{"score":142,"feedback":"ok"}`, true},
		{"extra field", `{"score":1,"feedback":"ok","x":1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(scoreSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("err = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Errorf("nil schema should accept anything: %v", err)
	}
}

func TestGenerateInto(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"score": 77, "feedback": "fine"}))
	req := UserPrompt("", "grade")
	req.Schema = scoreSchema

	var out struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if _, err := GenerateInto(context.Background(), mock, req, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Score != 77 || out.Feedback != "fine" {
		t.Errorf("decoded = %+v", out)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"score": 500, "feedback": "x"}))
	req := UserPrompt("", "grade")
	req.Schema = scoreSchema

	_, err := mock.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if calls := mock.Calls(); len(calls) != 1 || calls[0].Schema != scoreSchema {
		t.Errorf("calls = %+v", calls)
	}
}
