package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func syllabusDoc(name string, revision int) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"syllabus_name":   name,
		"target_audience": "test learners",
		"syllabus": []any{map[string]any{
			"stage_id":            fmt.Sprintf("stage-%d", revision),
			"stage_description":   "a stage",
			"judge_media_allowed": []string{"text"},
			"target":              "a target",
			"teaching_knowledge":  []string{"a fact"},
			"judge_question":      "a question",
			"judge_answer":        "an answer",
		}},
	})
	return raw
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventsShareOneSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; the global sequence must stay monotonic
	// across tables.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", SyllabusName: "Tides", StageCount: 2}); err != nil {
		t.Fatalf("session event: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "judge", Success: true}); err != nil {
		t.Fatalf("llm event: %v", err)
	}
	if err := repo.AppendTurnEvent(ctx, TurnEventData{SessionID: "s1", StageID: "gravity", LearnerAnswer: "the moon", Outcome: "correct", Rationale: "yes"}); err != nil {
		t.Fatalf("turn event: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "judge", Success: true}); err != nil {
		t.Fatalf("llm event: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("llm events = %d, want 2", len(events))
	}
	// Newest first: the second LLM call got sequence 4, the first got 2.
	if events[0].Sequence != 4 || events[1].Sequence != 2 {
		t.Errorf("sequences = %d, %d, want 4, 2", events[0].Sequence, events[1].Sequence)
	}
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"judge", "judge", "teach", "syllabus-gen", "judge"}
	for i, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      p,
			InputTokens:  100 * (i + 1),
			OutputTokens: 10 * (i + 1),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	judged, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "judge"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(judged) != 3 {
		t.Errorf("judge events = %d, want 3", len(judged))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited events = %d, want 2", len(limited))
	}
	if limited[0].Sequence < limited[1].Sequence {
		t.Error("events should be newest first")
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 3})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("events after seq 3 = %d, want 2", len(after))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:    "mock",
		Model:       "mock",
		Purpose:     "teach",
		DocumentRef: "tides.pdf",
		Success:     true,
		RequestBody: `{"messages":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.DocumentRef != "tides.pdf" {
		t.Errorf("document ref = %q", got.DocumentRef)
	}
	if got.RequestBody != `{"messages":[]}` {
		t.Errorf("request body = %q", got.RequestBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "mock", Model: "model-a", Purpose: "judge", InputTokens: 100, OutputTokens: 20, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "model-a", Purpose: "judge", InputTokens: 300, OutputTokens: 40, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "model-b", Purpose: "teach", InputTokens: 50, OutputTokens: 500, LatencyMs: 1000, Success: true},
		{Provider: "mock", Model: "model-a", Purpose: "judge", Success: false, ErrorMessage: "boom"},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: judge before teach.
	judge := byPurpose[0]
	if judge.Purpose != "judge" || judge.Calls != 3 || judge.Failures != 1 {
		t.Errorf("judge stats = %+v", judge)
	}
	if judge.InputTokens != 400 || judge.OutputTokens != 60 {
		t.Errorf("judge tokens = %d in / %d out", judge.InputTokens, judge.OutputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].Calls != 3 {
		t.Errorf("model-a usage = %+v", byModel[0])
	}
	if byModel[1].Model != "model-b" || byModel[1].InputTokens != 50 {
		t.Errorf("model-b usage = %+v", byModel[1])
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, &SyllabusSnapshotRecord{
		SessionID:    "s1",
		SyllabusName: "Tides",
		Revision:     1,
		Data:         syllabusDoc("Tides", 1),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.SyllabusName != "Tides" || snap.Revision != 1 {
		t.Errorf("snapshot = %q rev %d", snap.SyllabusName, snap.Revision)
	}

	// The stored document must round-trip with its wire keys intact.
	var doc map[string]any
	if err := json.Unmarshal(snap.Data, &doc); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if doc["syllabus_name"] != "Tides" {
		t.Errorf("data syllabus_name = %v", doc["syllabus_name"])
	}
	if _, ok := doc["syllabus"].([]any); !ok {
		t.Error("data should carry the stage array")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Save(ctx, &SyllabusSnapshotRecord{
			SessionID:    "s1",
			SyllabusName: "Tides",
			Revision:     i,
			Data:         syllabusDoc("Tides", i),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Revision != 3 {
		t.Errorf("revision = %d, want 3", snap.Revision)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		err := repo.Save(ctx, &SyllabusSnapshotRecord{
			SessionID:    "s1",
			SyllabusName: "Tides",
			Revision:     i,
			Data:         syllabusDoc("Tides", i),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().SyllabusSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Revision != 7 {
		t.Errorf("latest revision = %d, want 7", snap.Revision)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		err := repo.Save(ctx, &SyllabusSnapshotRecord{
			SessionID:    "s1",
			SyllabusName: "Tides",
			Revision:     i,
			Data:         syllabusDoc("Tides", i),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().SyllabusSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"llm_request_events",
		"session_events",
		"turn_events",
		"syllabus_revision_events",
		"syllabus_snapshots",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
