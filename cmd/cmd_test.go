package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/confidex/internal/explain"
	"github.com/abhisek/confidex/internal/session"
)

const sessionFile = `{
  "id": "s-1",
  "subject": "algorithms",
  "started_at": "2026-01-02T10:00:00Z",
  "answers": [
    {
      "question_id": "q1",
      "topic": "arrays",
      "question": "Why use a hash map?",
      "explanation": "For example, a hash map gives constant-time lookups.",
      "is_correct": true,
      "self_confidence": 80,
      "total_time": 25,
      "initial_answer_time_ms": 12500,
      "edit_count": 2
    },
    {
      "question_id": "q2",
      "topic": "graphs",
      "question": "What is a topological order?",
      "explanation": "idk",
      "is_correct": false,
      "self_confidence": 90,
      "total_time": 40,
      "initial_answer_time_ms": 3000,
      "edit_count": 1
    }
  ]
}`

// offline clears every provider credential so commands use fallbacks.
func offline(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIDEX_LLM_PROVIDER",
		"CONFIDEX_ANTHROPIC_API_KEY", "CONFIDEX_OPENAI_API_KEY",
		"CONFIDEX_GEMINI_API_KEY", "CONFIDEX_OPENROUTER_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScore_JSON(t *testing.T) {
	offline(t)
	path := writeFile(t, "session.json", sessionFile)

	out, err := run(t, "score", path, "--json")
	require.NoError(t, err)

	var report session.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "s-1", report.SessionID)
	assert.Len(t, report.Questions, 2)
	assert.Nil(t, report.Review)
}

func TestScore_AnalyzeOffline(t *testing.T) {
	offline(t)
	path := writeFile(t, "session.json", sessionFile)

	out, err := run(t, "score", path, "--json", "--analyze")
	require.NoError(t, err)

	var report session.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Review)
	assert.Len(t, report.Review.Answers, 2)
	assert.Len(t, report.Review.Concepts, 2)
}

func TestScore_Rendered(t *testing.T) {
	offline(t)
	path := writeFile(t, "session.json", sessionFile)

	out, err := run(t, "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, "algorithms")
	assert.Contains(t, out, "arrays")
}

func TestScore_InvalidFile(t *testing.T) {
	path := writeFile(t, "bad.json", `{"subject": "x", "answers": [{"topic": "t"}]}`)

	_, err := run(t, "score", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrInvalidAnswer)
}

func TestSession_Lifecycle(t *testing.T) {
	offline(t)
	db := filepath.Join(t.TempDir(), "confidex.db")
	path := writeFile(t, "session.json", sessionFile)

	out, err := run(t, "--db", db, "session", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported session s-1 (2 answers)")

	out, err = run(t, "--db", db, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "s-1")
	assert.Contains(t, out, "algorithms")

	out, err = run(t, "--db", db, "session", "report", "s-1", "--json")
	require.NoError(t, err)
	var fresh session.Report
	require.NoError(t, json.Unmarshal([]byte(out), &fresh))
	assert.Equal(t, "s-1", fresh.SessionID)

	out, err = run(t, "--db", db, "session", "report", "s-1", "--latest", "--json")
	require.NoError(t, err)
	var saved session.Report
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	assert.Equal(t, fresh.Summary, saved.Summary)
	assert.Equal(t, fresh.Profile, saved.Profile)

	out, err = run(t, "--db", db, "session", "export", "s-1")
	require.NoError(t, err)
	exported, err := session.Decode(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, "s-1", exported.ID)
	assert.Equal(t, 2, exported.Len())

	_, err = run(t, "--db", db, "session", "delete", "s-1")
	require.NoError(t, err)

	out, err = run(t, "--db", db, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found.")
}

func TestSession_ReportUnknown(t *testing.T) {
	db := filepath.Join(t.TempDir(), "confidex.db")

	_, err := run(t, "--db", db, "session", "report", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session missing not found")

	_, err = run(t, "--db", db, "session", "report", "missing", "--latest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved report")
}

func TestConcepts(t *testing.T) {
	path := writeFile(t, "notes.txt", "this intro has some lowercase words.\n\nBINARY SEARCH\nHalve the range each step. Stop when found.\n")

	out, err := run(t, "concepts", path, "--json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	out, err = run(t, "concepts", writeFile(t, "empty.txt", ""))
	require.NoError(t, err)
	assert.Contains(t, out, "No concepts found.")
}

func TestExplain_Offline(t *testing.T) {
	offline(t)
	db := filepath.Join(t.TempDir(), "confidex.db")

	out, err := run(t, "--db", db, "explain", "--title", "Recursion", "--content", "A function calling itself.", "--json")
	require.NoError(t, err)

	var got explain.Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, explain.Fallback("Recursion", "A function calling itself."), got)

	_, err = run(t, "explain", "--content", "x")
	require.Error(t, err)
}

func TestLLM_EmptyStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "confidex.db")

	out, err := run(t, "--db", db, "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")

	out, err = run(t, "--db", db, "llm", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM usage recorded yet.")

	_, err = run(t, "--db", db, "llm", "view", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event 7 not found")

	_, err = run(t, "--db", db, "llm", "view", "abc")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "confidex")
}
