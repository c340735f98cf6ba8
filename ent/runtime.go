// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/docent/ent/llmrequestevent"
	"github.com/abhisek/docent/ent/schema"
	"github.com/abhisek/docent/ent/sessionevent"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
	"github.com/abhisek/docent/ent/syllabussnapshot"
	"github.com/abhisek/docent/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescDocumentRef is the schema descriptor for document_ref field.
	llmrequesteventDescDocumentRef := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultDocumentRef holds the default value on creation for the document_ref field.
	llmrequestevent.DefaultDocumentRef = llmrequesteventDescDocumentRef.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSyllabusName is the schema descriptor for syllabus_name field.
	sessioneventDescSyllabusName := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultSyllabusName holds the default value on creation for the syllabus_name field.
	sessionevent.DefaultSyllabusName = sessioneventDescSyllabusName.Default.(string)
	// sessioneventDescStageCount is the schema descriptor for stage_count field.
	sessioneventDescStageCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStageCount holds the default value on creation for the stage_count field.
	sessionevent.DefaultStageCount = sessioneventDescStageCount.Default.(int)
	// sessioneventDescTurnCount is the schema descriptor for turn_count field.
	sessioneventDescTurnCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTurnCount holds the default value on creation for the turn_count field.
	sessionevent.DefaultTurnCount = sessioneventDescTurnCount.Default.(int)
	syllabusrevisioneventMixin := schema.SyllabusRevisionEvent{}.Mixin()
	syllabusrevisioneventMixinFields0 := syllabusrevisioneventMixin[0].Fields()
	_ = syllabusrevisioneventMixinFields0
	syllabusrevisioneventFields := schema.SyllabusRevisionEvent{}.Fields()
	_ = syllabusrevisioneventFields
	// syllabusrevisioneventDescTimestamp is the schema descriptor for timestamp field.
	syllabusrevisioneventDescTimestamp := syllabusrevisioneventMixinFields0[1].Descriptor()
	// syllabusrevisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syllabusrevisionevent.DefaultTimestamp = syllabusrevisioneventDescTimestamp.Default.(func() time.Time)
	// syllabusrevisioneventDescDocumentRef is the schema descriptor for document_ref field.
	syllabusrevisioneventDescDocumentRef := syllabusrevisioneventFields[2].Descriptor()
	// syllabusrevisionevent.DefaultDocumentRef holds the default value on creation for the document_ref field.
	syllabusrevisionevent.DefaultDocumentRef = syllabusrevisioneventDescDocumentRef.Default.(string)
	// syllabusrevisioneventDescStageCount is the schema descriptor for stage_count field.
	syllabusrevisioneventDescStageCount := syllabusrevisioneventFields[4].Descriptor()
	// syllabusrevisionevent.DefaultStageCount holds the default value on creation for the stage_count field.
	syllabusrevisionevent.DefaultStageCount = syllabusrevisioneventDescStageCount.Default.(int)
	syllabussnapshotFields := schema.SyllabusSnapshot{}.Fields()
	_ = syllabussnapshotFields
	// syllabussnapshotDescTimestamp is the schema descriptor for timestamp field.
	syllabussnapshotDescTimestamp := syllabussnapshotFields[1].Descriptor()
	// syllabussnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	syllabussnapshot.DefaultTimestamp = syllabussnapshotDescTimestamp.Default.(func() time.Time)
	// syllabussnapshotDescSessionID is the schema descriptor for session_id field.
	syllabussnapshotDescSessionID := syllabussnapshotFields[2].Descriptor()
	// syllabussnapshot.DefaultSessionID holds the default value on creation for the session_id field.
	syllabussnapshot.DefaultSessionID = syllabussnapshotDescSessionID.Default.(string)
	// syllabussnapshotDescRevision is the schema descriptor for revision field.
	syllabussnapshotDescRevision := syllabussnapshotFields[4].Descriptor()
	// syllabussnapshot.DefaultRevision holds the default value on creation for the revision field.
	syllabussnapshot.DefaultRevision = syllabussnapshotDescRevision.Default.(int)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescRationale is the schema descriptor for rationale field.
	turneventDescRationale := turneventFields[4].Descriptor()
	// turnevent.DefaultRationale holds the default value on creation for the rationale field.
	turnevent.DefaultRationale = turneventDescRationale.Default.(string)
}
