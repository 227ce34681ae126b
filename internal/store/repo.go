package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/abhisek/confidex/internal/llm"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match
}

// SessionRecord is a persisted assessment session header.
type SessionRecord struct {
	ID        string
	Subject   string
	StartedAt time.Time
	CreatedAt time.Time
}

// SessionListing is a session header plus its answer count.
type SessionListing struct {
	SessionRecord
	AnswerCount int
}

// AnswerRecord is one stored answer. Position is its 0-based order within
// the session.
type AnswerRecord struct {
	Sequence            int64
	Timestamp           time.Time
	Position            int
	QuestionID          string
	Topic               string
	Question            string
	Keywords            []string
	Explanation         string
	IsCorrect           bool
	SelfConfidence      float64
	TotalTime           float64
	InitialAnswerTimeMs int64
	EditCount           int
}

// ReportSnapshot is an evaluated report frozen at a point in the session's
// history. Data holds the report JSON as produced by the caller.
type ReportSnapshot struct {
	ID           int
	SessionID    string
	Sequence     int64
	Timestamp    time.Time
	OverallScore float64
	ProfileScore int
	Data         json.RawMessage
}

// SessionRepo persists sessions, their answers and report snapshots.
type SessionRepo interface {
	// CreateSession stores a session header and its initial answers
	// atomically.
	CreateSession(ctx context.Context, rec SessionRecord, answers []AnswerRecord) error

	// AppendAnswer adds an answer at the end of the session and returns its
	// position.
	AppendAnswer(ctx context.Context, sessionID string, a AnswerRecord) (int, error)

	// GetSession returns the session header or ErrNotFound.
	GetSession(ctx context.Context, id string) (*SessionRecord, error)

	// Answers returns the session's answers in recorded order.
	Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// ListSessions returns the most recently created sessions first.
	ListSessions(ctx context.Context, limit int) ([]SessionListing, error)

	// DeleteSession removes a session with its answers and reports.
	DeleteSession(ctx context.Context, id string) error

	// SaveReport stores a new report snapshot.
	SaveReport(ctx context.Context, snap *ReportSnapshot) error

	// LatestReport returns the newest snapshot for a session or ErrNotFound.
	LatestReport(ctx context.Context, sessionID string) (*ReportSnapshot, error)

	// PruneReports deletes all but the keep most recent snapshots of a session.
	PruneReports(ctx context.Context, sessionID string, keep int) error
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	llm.RequestRecord
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records LLM calls and answers queries over them.
type EventRepo interface {
	llm.Recorder

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose sums usage per purpose, busiest first.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel sums usage per model, busiest first.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
