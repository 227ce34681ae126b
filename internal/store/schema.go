package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionsColumns holds the columns for the "assessment_sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "assessment_sessions" table.
	SessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "assessmentsession_created_at", Unique: false, Columns: []*schema.Column{SessionsColumns[3]}},
		},
	}

	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "self_confidence", Type: field.TypeFloat64},
		{Name: "total_time", Type: field.TypeFloat64},
		{Name: "initial_answer_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "edit_count", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_events_assessment_sessions_answers",
				Columns:    []*schema.Column{AnswerEventsColumns[3]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "answerevent_session_id_position", Unique: true, Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]}},
		},
	}

	// ReportSnapshotsColumns holds the columns for the "report_snapshots" table.
	ReportSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "profile_score", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
	}
	// ReportSnapshotsTable holds the schema information for the "report_snapshots" table.
	ReportSnapshotsTable = &schema.Table{
		Name:       "report_snapshots",
		Columns:    ReportSnapshotsColumns,
		PrimaryKey: []*schema.Column{ReportSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_snapshots_assessment_sessions_reports",
				Columns:    []*schema.Column{ReportSnapshotsColumns[3]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "reportsnapshot_session_id_sequence", Unique: false, Columns: []*schema.Column{ReportSnapshotsColumns[3], ReportSnapshotsColumns[1]}},
		},
	}

	// LLMRequestEventsColumns holds the columns for the "llm_request_events" table.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMRequestEventsTable holds the schema information for the "llm_request_events" table.
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Unique: false, Columns: []*schema.Column{LLMRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Unique: false, Columns: []*schema.Column{LLMRequestEventsColumns[5]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionsTable,
		AnswerEventsTable,
		ReportSnapshotsTable,
		LLMRequestEventsTable,
	}
)

func init() {
	AnswerEventsTable.ForeignKeys[0].RefTable = SessionsTable
	ReportSnapshotsTable.ForeignKeys[0].RefTable = SessionsTable
}
