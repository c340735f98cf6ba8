package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	DocumentRef  string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionEventData marks a session lifecycle transition.
type SessionEventData struct {
	SessionID    string
	Action       string // start, end
	SyllabusName string
	StageCount   int
	TurnCount    int
}

// TurnEventData records one judged learner answer.
type TurnEventData struct {
	SessionID     string
	StageID       string
	LearnerAnswer string
	Outcome       string
	Rationale     string
}

// SyllabusRevisionEventData records an accepted in-session syllabus edit.
type SyllabusRevisionEventData struct {
	SessionID   string
	Instruction string
	DocumentRef string
	Revision    int
	StageCount  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records a session lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTurnEvent records a judged learner answer.
	AppendTurnEvent(ctx context.Context, data TurnEventData) error

	// AppendSyllabusRevision records an accepted syllabus edit.
	AppendSyllabusRevision(ctx context.Context, data SyllabusRevisionEventData) error

	// QueryLLMEvents returns LLM request events matching opts,
	// newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates request and token counts per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token counts per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// SyllabusSnapshotRecord is a stored syllabus document.
type SyllabusSnapshotRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	SyllabusName string
	Revision     int
	Data         json.RawMessage
}

// SnapshotRepo persists full syllabus documents so they outlive the
// session they were generated or edited in.
type SnapshotRepo interface {
	// Save stores a syllabus document.
	Save(ctx context.Context, snap *SyllabusSnapshotRecord) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*SyllabusSnapshotRecord, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
