// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "document_ref", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "syllabus_name", Type: field.TypeString, Default: ""},
		{Name: "stage_count", Type: field.TypeInt, Default: 0},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SyllabusRevisionEventsColumns holds the columns for the "syllabus_revision_events" table.
	SyllabusRevisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "instruction", Type: field.TypeString, Size: 2147483647},
		{Name: "document_ref", Type: field.TypeString, Default: ""},
		{Name: "revision", Type: field.TypeInt},
		{Name: "stage_count", Type: field.TypeInt, Default: 0},
	}
	// SyllabusRevisionEventsTable holds the schema information for the "syllabus_revision_events" table.
	SyllabusRevisionEventsTable = &schema.Table{
		Name:       "syllabus_revision_events",
		Columns:    SyllabusRevisionEventsColumns,
		PrimaryKey: []*schema.Column{SyllabusRevisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syllabusrevisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SyllabusRevisionEventsColumns[1]},
			},
			{
				Name:    "syllabusrevisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SyllabusRevisionEventsColumns[2]},
			},
			{
				Name:    "syllabusrevisionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SyllabusRevisionEventsColumns[3]},
			},
		},
	}
	// SyllabusSnapshotsColumns holds the columns for the "syllabus_snapshots" table.
	SyllabusSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "syllabus_name", Type: field.TypeString},
		{Name: "revision", Type: field.TypeInt, Default: 1},
		{Name: "data", Type: field.TypeJSON},
	}
	// SyllabusSnapshotsTable holds the schema information for the "syllabus_snapshots" table.
	SyllabusSnapshotsTable = &schema.Table{
		Name:       "syllabus_snapshots",
		Columns:    SyllabusSnapshotsColumns,
		PrimaryKey: []*schema.Column{SyllabusSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syllabussnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SyllabusSnapshotsColumns[1]},
			},
			{
				Name:    "syllabussnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SyllabusSnapshotsColumns[2]},
			},
			{
				Name:    "syllabussnapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SyllabusSnapshotsColumns[3]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "outcome", Type: field.TypeString},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_stage_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[4]},
			},
			{
				Name:    "turnevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SessionEventsTable,
		SyllabusRevisionEventsTable,
		SyllabusSnapshotsTable,
		TurnEventsTable,
	}
)

func init() {
}
