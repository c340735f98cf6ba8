package syllabusgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
)

func validSyllabusJSON(name string, stageIDs ...string) llm.MockResponse {
	stages := make([]map[string]any, 0, len(stageIDs))
	for _, id := range stageIDs {
		stages = append(stages, map[string]any{
			"stage_id":            id,
			"stage_description":   "stage " + id,
			"judge_media_allowed": []string{"text"},
			"target":              "understand " + id,
			"teaching_knowledge":  []string{"fact about " + id},
			"judge_question":      "what is " + id + "?",
			"judge_answer":        "the " + id,
		})
	}
	raw, _ := json.Marshal(map[string]any{
		"syllabus_name":   name,
		"target_audience": "curious adults",
		"syllabus":        stages,
	})
	return llm.MockResponse{Content: raw}
}

func currentSyllabus(t *testing.T) *syllabus.Syllabus {
	t.Helper()
	resp := validSyllabusJSON("Tides", "gravity", "spring-neap")
	syl, err := syllabus.Validate(resp.Content)
	if err != nil {
		t.Fatalf("build current syllabus: %v", err)
	}
	return syl
}

func TestGenerate_ReturnsValidatedSyllabus(t *testing.T) {
	mock := llm.NewMockProvider(validSyllabusJSON("Tides", "gravity", "spring-neap"))
	svc := NewService(mock, DefaultConfig())

	syl, err := svc.Generate(context.Background(), "tides.pdf")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if syl.Name != "Tides" {
		t.Errorf("name = %q", syl.Name)
	}
	if len(syl.Stages) != 2 {
		t.Errorf("stages = %d, want 2", len(syl.Stages))
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].DocumentRef != "tides.pdf" {
		t.Errorf("document ref = %q", mock.Calls[0].DocumentRef)
	}
	if mock.Calls[0].Schema != syllabus.Schema {
		t.Error("request should carry the syllabus schema")
	}
}

func TestGenerate_RepairsInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"syllabus_name":"Tides"}`)},
		validSyllabusJSON("Tides", "gravity"),
	)
	svc := NewService(mock, DefaultConfig())

	syl, err := svc.Generate(context.Background(), "tides.pdf")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if syl.Name != "Tides" {
		t.Errorf("name = %q", syl.Name)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}

	// The retry prompt must name the defect the validator found.
	repairMsg := mock.Calls[1].Messages[0].Content
	if !strings.Contains(repairMsg, "previous output was invalid") {
		t.Error("repair call should explain the previous failure")
	}
	if !strings.Contains(repairMsg, "target_audience") {
		t.Errorf("repair call should name the failing path, got: %s", repairMsg)
	}
}

func TestGenerate_FailsAfterSecondInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"syllabus_name":"Tides"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"syllabus_name":"Tides","target_audience":"adults","syllabus":[]}`)},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), "tides.pdf")
	if err == nil {
		t.Fatal("expected failure after two invalid outputs")
	}
	var repairErr *ErrInvalidAfterRepair
	if !errors.As(err, &repairErr) {
		t.Fatalf("expected *ErrInvalidAfterRepair, got %T", err)
	}
	if repairErr.Path != "syllabus" {
		t.Errorf("path = %q, want syllabus (the second output's defect)", repairErr.Path)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want exactly 2: one attempt, one repair", mock.CallCount())
	}
}

func TestGenerate_ProviderErrorIsNotRepaired(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	_, err := svc.Generate(context.Background(), "tides.pdf")
	if err == nil {
		t.Fatal("expected provider error")
	}
	var provErr *llm.ErrProviderUnavailable
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error to surface, got %T", err)
	}
}

func TestPropose_ReturnsNewDocumentWithoutMutatingCurrent(t *testing.T) {
	current := currentSyllabus(t)
	mock := llm.NewMockProvider(validSyllabusJSON("Tides, Expanded", "gravity", "spring-neap", "tidal-bores"))
	svc := NewService(mock, DefaultConfig())

	proposed, err := svc.Propose(context.Background(), current, "add a stage on tidal bores", "tides.pdf")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if len(proposed.Stages) != 3 {
		t.Errorf("proposed stages = %d, want 3", len(proposed.Stages))
	}
	if current.Name != "Tides" || len(current.Stages) != 2 {
		t.Error("propose must not mutate the current syllabus")
	}
}

func TestPropose_PromptCarriesCurrentAndInstruction(t *testing.T) {
	mock := llm.NewMockProvider(validSyllabusJSON("Tides", "gravity"))
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Propose(context.Background(), currentSyllabus(t), "merge the two stages", "tides.pdf")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, `"spring-neap"`) {
		t.Error("prompt should embed the current syllabus JSON")
	}
	if !strings.Contains(prompt, "merge the two stages") {
		t.Error("prompt should carry the instruction")
	}
	if req.DocumentRef != "tides.pdf" {
		t.Errorf("document ref = %q", req.DocumentRef)
	}
}
