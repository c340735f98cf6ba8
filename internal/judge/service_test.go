package judge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
)

func testStage(allowed ...syllabus.MediaKind) syllabus.Stage {
	if len(allowed) == 0 {
		allowed = []syllabus.MediaKind{syllabus.MediaText}
	}
	return syllabus.Stage{
		ID:                "osmosis",
		Description:       "Water movement across membranes",
		JudgeMediaAllowed: allowed,
		Target:            "Explain osmosis in terms of concentration gradients",
		TeachingKnowledge: []string{"water moves toward higher solute concentration"},
		JudgeQuestion:     "Why does a cell in salt water shrink?",
		JudgeAnswer:       "Water leaves the cell toward the higher solute concentration outside.",
	}
}

func verdictResponse(outcome, rationale string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"outcome": outcome, "rationale": rationale})
	return llm.MockResponse{Content: raw}
}

func TestJudge_ParsesVerdict(t *testing.T) {
	tests := []struct {
		outcome string
		want    Outcome
	}{
		{"correct", OutcomeCorrect},
		{"partial", OutcomePartial},
		{"incorrect", OutcomeIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			mock := llm.NewMockProvider(verdictResponse(tt.outcome, "because gradients"))
			svc := NewService(mock, DefaultConfig())

			verdict, rejected, err := svc.Judge(context.Background(), testStage(), Response{Text: "water leaves"})
			if err != nil {
				t.Fatalf("judge: %v", err)
			}
			if verdict.Outcome != tt.want {
				t.Errorf("outcome = %q, want %q", verdict.Outcome, tt.want)
			}
			if verdict.Rationale != "because gradients" {
				t.Errorf("rationale = %q", verdict.Rationale)
			}
			if len(rejected) != 0 {
				t.Errorf("rejected = %v, want none", rejected)
			}
		})
	}
}

func TestJudge_ProviderFailureIsUnavailable(t *testing.T) {
	// Empty queue: the mock reports the provider as unavailable.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	_, _, err := svc.Judge(context.Background(), testStage(), Response{Text: "anything"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *ErrJudgeUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *ErrJudgeUnavailable, got %T", err)
	}
	var provErr *llm.ErrProviderUnavailable
	if !errors.As(err, &provErr) {
		t.Error("underlying provider error should be reachable via Unwrap")
	}
}

func TestJudge_UnparseableVerdictIsUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`the answer is fine I suppose`)})
	svc := NewService(mock, DefaultConfig())

	_, _, err := svc.Judge(context.Background(), testStage(), Response{Text: "x"})
	var unavailable *ErrJudgeUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *ErrJudgeUnavailable, got %T", err)
	}
}

func TestJudge_UnknownOutcomeIsUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse("mostly-right", "invented category"))
	svc := NewService(mock, DefaultConfig())

	_, _, err := svc.Judge(context.Background(), testStage(), Response{Text: "x"})
	var unavailable *ErrJudgeUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *ErrJudgeUnavailable, got %T", err)
	}
}

func TestJudge_FiltersDisallowedMedia(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse("correct", "good"))
	svc := NewService(mock, DefaultConfig())

	refs := []syllabus.MediaRef{
		{Kind: syllabus.MediaImage, Locator: "diagram.png", Caption: "my sketch"},
		{Kind: syllabus.MediaVideo, Locator: "demo.mp4"},
		{Kind: syllabus.MediaAudio, Locator: "answer.ogg"},
	}
	stage := testStage(syllabus.MediaText, syllabus.MediaImage)

	verdict, rejected, err := svc.Judge(context.Background(), stage, Response{Text: "shown in the diagram", MediaRefs: refs})
	if err != nil {
		t.Fatalf("judge: %v", err)
	}
	if verdict.Outcome != OutcomeCorrect {
		t.Errorf("outcome = %q", verdict.Outcome)
	}

	if len(rejected) != 2 {
		t.Fatalf("rejected = %d, want 2", len(rejected))
	}
	if rejected[0].Kind != syllabus.MediaVideo || rejected[1].Kind != syllabus.MediaAudio {
		t.Errorf("rejected kinds = %v", rejected)
	}

	// The admitted image must appear in the prompt; the rejected media
	// must not reach the model at all.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "diagram.png") {
		t.Error("admitted media missing from prompt")
	}
	if strings.Contains(prompt, "demo.mp4") || strings.Contains(prompt, "answer.ogg") {
		t.Error("rejected media leaked into prompt")
	}
}

func TestJudge_RejectedMediaReturnedOnFailure(t *testing.T) {
	// Even when the provider fails, the caller learns which media was
	// dropped so the notice can still be shown.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	refs := []syllabus.MediaRef{{Kind: syllabus.MediaImage, Locator: "x.png"}}
	_, rejected, err := svc.Judge(context.Background(), testStage(), Response{Text: "x", MediaRefs: refs})
	if err == nil {
		t.Fatal("expected provider failure")
	}
	if len(rejected) != 1 {
		t.Errorf("rejected = %d, want 1", len(rejected))
	}
}

func TestJudge_PromptCarriesRubric(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse("incorrect", "missing the gradient"))
	svc := NewService(mock, DefaultConfig())

	if _, _, err := svc.Judge(context.Background(), testStage(), Response{Text: "it just does"}); err != nil {
		t.Fatalf("judge: %v", err)
	}

	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"Why does a cell in salt water shrink?",
		"Water leaves the cell toward the higher solute concentration outside.",
		"it just does",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if req.Schema != VerdictSchema {
		t.Error("request should carry the verdict schema")
	}
}

func TestJudge_EmptyTextMarked(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse("incorrect", "no answer given"))
	svc := NewService(mock, DefaultConfig())

	refs := []syllabus.MediaRef{{Kind: syllabus.MediaText, Locator: "notes.txt"}}
	if _, _, err := svc.Judge(context.Background(), testStage(), Response{MediaRefs: refs}); err != nil {
		t.Fatalf("judge: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "(no text)") {
		t.Error("empty answers should be marked explicitly in the prompt")
	}
}
