package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/docent/internal/judge"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
	"github.com/abhisek/docent/internal/syllabusgen"
)

func verdictJSON(outcome, rationale string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"outcome": outcome, "rationale": rationale})
	return llm.MockResponse{Content: raw}
}

func syllabusJSON(t *testing.T, syl *syllabus.Syllabus) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(syl)
	if err != nil {
		t.Fatalf("marshal syllabus: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

// newTestController wires a controller with separate mock providers for
// judging and revising, so each test controls exactly one LLM surface.
func newTestController(judgeMock, reviseMock *llm.MockProvider) *Controller {
	return NewController(Options{
		Judge:   judge.NewService(judgeMock, judge.DefaultConfig()),
		Reviser: syllabusgen.NewService(reviseMock, syllabusgen.DefaultConfig()),
	})
}

func startedController(t *testing.T, judgeMock *llm.MockProvider, ids ...string) *Controller {
	t.Helper()
	ctrl := newTestController(judgeMock, llm.NewMockProvider())
	if err := ctrl.Start(context.Background(), makeSyllabus(ids...)); err != nil {
		t.Fatalf("start: %v", err)
	}
	return ctrl
}

func TestController_FullSessionToCompletion(t *testing.T) {
	judgeMock := llm.NewMockProvider(
		verdictJSON("correct", "Exactly right."),
		verdictJSON("correct", "Also right."),
	)
	ctrl := startedController(t, judgeMock, "membranes", "organelles")

	if ctrl.Status() != StatusActive {
		t.Fatalf("status = %s, want active", ctrl.Status())
	}

	first, err := ctrl.SubmitAnswer(context.Background(), "a lipid bilayer", nil)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.Verdict.Outcome != judge.OutcomeCorrect {
		t.Errorf("outcome = %s", first.Verdict.Outcome)
	}
	if !first.Advanced || first.Completed {
		t.Errorf("advanced=%v completed=%v, want advanced only", first.Advanced, first.Completed)
	}

	stage, err := ctrl.CurrentStage()
	if err != nil {
		t.Fatalf("current stage: %v", err)
	}
	if stage.ID != "organelles" {
		t.Errorf("stage = %q, want organelles", stage.ID)
	}

	second, err := ctrl.SubmitAnswer(context.Background(), "mitochondria and friends", nil)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !second.Completed {
		t.Error("passing the final stage should complete the session")
	}
	if ctrl.Status() != StatusEnded {
		t.Errorf("status = %s, want ended", ctrl.Status())
	}

	history := ctrl.History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Role != RoleLearner || history[1].Role != RoleTutor {
		t.Error("turns should alternate learner then tutor")
	}
	if history[1].Verdict == nil || history[1].Verdict.Outcome != judge.OutcomeCorrect {
		t.Error("tutor turn should carry the verdict")
	}
	if history[3].StageIDAtTime != "organelles" {
		t.Errorf("last turn stage = %q", history[3].StageIDAtTime)
	}
}

func TestController_OperationsRequireActiveSession(t *testing.T) {
	ctrl := newTestController(llm.NewMockProvider(), llm.NewMockProvider())

	_, err := ctrl.SubmitAnswer(context.Background(), "too early", nil)
	var stateErr *ErrInvalidSessionState
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected *ErrInvalidSessionState, got %T", err)
	}
	if stateErr.Op != "submitAnswer" || stateErr.State != StatusNotStarted {
		t.Errorf("got op=%q state=%q", stateErr.Op, stateErr.State)
	}

	if _, err := ctrl.Navigate(DirectionNext); !errors.As(err, &stateErr) {
		t.Errorf("navigate before start: got %v", err)
	}
	if _, err := ctrl.Modify(context.Background(), "add a stage"); !errors.As(err, &stateErr) {
		t.Errorf("modify before start: got %v", err)
	}
	if err := ctrl.End(context.Background()); !errors.As(err, &stateErr) {
		t.Errorf("end before start: got %v", err)
	}
}

func TestController_EndedSessionRejectsEverything(t *testing.T) {
	ctrl := startedController(t, llm.NewMockProvider(), "only")
	if err := ctrl.End(context.Background()); err != nil {
		t.Fatalf("end: %v", err)
	}

	var stateErr *ErrInvalidSessionState
	if _, err := ctrl.SubmitAnswer(context.Background(), "late", nil); !errors.As(err, &stateErr) {
		t.Fatalf("expected *ErrInvalidSessionState, got %T", err)
	}
	if stateErr.State != StatusEnded {
		t.Errorf("state = %q, want ended", stateErr.State)
	}

	// Starting again is also invalid: Ended is terminal.
	if err := ctrl.Start(context.Background(), makeSyllabus("x")); !errors.As(err, &stateErr) {
		t.Errorf("restart after end: got %v", err)
	}
}

func TestController_IncorrectAnswerStaysOnStage(t *testing.T) {
	judgeMock := llm.NewMockProvider(
		verdictJSON("incorrect", "Not quite: membranes are lipid, not protein."),
		verdictJSON("partial", "Half of the picture."),
	)
	ctrl := startedController(t, judgeMock, "membranes", "organelles")

	for _, answer := range []string{"protein walls", "some lipids"} {
		result, err := ctrl.SubmitAnswer(context.Background(), answer, nil)
		if err != nil {
			t.Fatalf("submit %q: %v", answer, err)
		}
		if result.Advanced || result.Completed {
			t.Errorf("%q should not advance", answer)
		}
		stage, _ := ctrl.CurrentStage()
		if stage.ID != "membranes" {
			t.Errorf("stage = %q after %q", stage.ID, answer)
		}
	}

	if len(ctrl.History()) != 4 {
		t.Errorf("history length = %d, want 4: failed answers are still recorded", len(ctrl.History()))
	}
}

func TestController_JudgeFailureLeavesSessionUntouched(t *testing.T) {
	// Empty mock: the judge call fails with provider unavailable.
	ctrl := startedController(t, llm.NewMockProvider(), "membranes")

	_, err := ctrl.SubmitAnswer(context.Background(), "an answer", nil)
	if err == nil {
		t.Fatal("expected judge failure")
	}
	var unavailable *judge.ErrJudgeUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *ErrJudgeUnavailable, got %T", err)
	}

	if len(ctrl.History()) != 0 {
		t.Error("no turns should be recorded for a failed judgement")
	}
	if ctrl.Status() != StatusActive {
		t.Errorf("status = %s, session must stay usable", ctrl.Status())
	}
}

func TestController_RejectedMediaBecomesNotice(t *testing.T) {
	judgeMock := llm.NewMockProvider(verdictJSON("correct", "Good sketch description."))
	ctrl := startedController(t, judgeMock, "membranes") // text-only stage

	refs := []syllabus.MediaRef{
		{Kind: syllabus.MediaImage, Locator: "sketch.png"},
	}
	result, err := ctrl.SubmitAnswer(context.Background(), "described in words instead", refs)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(result.Notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(result.Notices))
	}
	if result.Notices[0].Kind != NoticeMediaRejected {
		t.Errorf("notice kind = %q", result.Notices[0].Kind)
	}
	if result.Verdict.Outcome != judge.OutcomeCorrect {
		t.Error("rejected media must not block the evaluation")
	}
}

func TestController_NavigationProducesNoTurns(t *testing.T) {
	ctrl := startedController(t, llm.NewMockProvider(), "a", "b", "c")

	if _, err := ctrl.Navigate(DirectionNext); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := ctrl.JumpTo("c"); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if _, err := ctrl.Navigate(DirectionPrevious); err != nil {
		t.Fatalf("back: %v", err)
	}

	if len(ctrl.History()) != 0 {
		t.Errorf("navigation recorded %d turns, want 0", len(ctrl.History()))
	}

	stage, _ := ctrl.CurrentStage()
	if stage.ID != "b" {
		t.Errorf("stage = %q, want b", stage.ID)
	}
}

func TestController_JumpToUnknownStageFails(t *testing.T) {
	ctrl := startedController(t, llm.NewMockProvider(), "a", "b")

	_, err := ctrl.JumpTo("z")
	var notFound *ErrStageNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ErrStageNotFound, got %T", err)
	}
	stage, _ := ctrl.CurrentStage()
	if stage.ID != "a" {
		t.Errorf("failed jump moved the cursor to %q", stage.ID)
	}
}

func TestController_ModifyReplacesAndRealigns(t *testing.T) {
	revised := makeSyllabus("b", "c")
	reviseMock := llm.NewMockProvider(syllabusJSON(t, revised))
	ctrl := NewController(Options{
		Judge:   judge.NewService(llm.NewMockProvider(), judge.DefaultConfig()),
		Reviser: syllabusgen.NewService(reviseMock, syllabusgen.DefaultConfig()),
	})
	if err := ctrl.Start(context.Background(), makeSyllabus("a", "b")); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Cursor on "a", which the edit removes.
	result, err := ctrl.Modify(context.Background(), "drop the first stage, add a closing one")
	if err != nil {
		t.Fatalf("modify: %v", err)
	}

	if len(result.Notices) != 1 || result.Notices[0].Kind != NoticeStageRealigned {
		t.Fatalf("expected a stage_realigned notice, got %v", result.Notices)
	}
	stage, _ := ctrl.CurrentStage()
	if stage.ID != "b" {
		t.Errorf("cursor should reset to the first stage, got %q", stage.ID)
	}
	if ctrl.Revision() != 2 {
		t.Errorf("revision = %d, want 2", ctrl.Revision())
	}
}

func TestController_ModifyFollowsSurvivingStage(t *testing.T) {
	revised := makeSyllabus("x", "b")
	reviseMock := llm.NewMockProvider(syllabusJSON(t, revised))
	ctrl := NewController(Options{
		Judge:   judge.NewService(llm.NewMockProvider(), judge.DefaultConfig()),
		Reviser: syllabusgen.NewService(reviseMock, syllabusgen.DefaultConfig()),
	})
	if err := ctrl.Start(context.Background(), makeSyllabus("a", "b")); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := ctrl.Navigate(DirectionNext); err != nil {
		t.Fatalf("next: %v", err)
	}

	result, err := ctrl.Modify(context.Background(), "rework the opening stage")
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(result.Notices) != 0 {
		t.Errorf("no notice expected when the current stage survives, got %v", result.Notices)
	}
	stage, _ := ctrl.CurrentStage()
	if stage.ID != "b" {
		t.Errorf("cursor should follow stage b, got %q", stage.ID)
	}
}

func TestController_FailedModifyKeepsOriginalSyllabus(t *testing.T) {
	// Both the first attempt and the repair attempt return garbage.
	reviseMock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"syllabus_name":"broken"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"syllabus_name":"still broken"}`)},
	)
	ctrl := NewController(Options{
		Judge:   judge.NewService(llm.NewMockProvider(), judge.DefaultConfig()),
		Reviser: syllabusgen.NewService(reviseMock, syllabusgen.DefaultConfig()),
	})
	if err := ctrl.Start(context.Background(), makeSyllabus("a", "b")); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := ctrl.Modify(context.Background(), "break everything")
	var repairErr *syllabusgen.ErrInvalidAfterRepair
	if !errors.As(err, &repairErr) {
		t.Fatalf("expected *ErrInvalidAfterRepair, got %T: %v", err, err)
	}
	if reviseMock.CallCount() != 2 {
		t.Errorf("reviser calls = %d, want 2 (one attempt, one repair)", reviseMock.CallCount())
	}

	syl, err := ctrl.Syllabus()
	if err != nil {
		t.Fatalf("syllabus: %v", err)
	}
	if syl.Name != "Cell Biology" || len(syl.Stages) != 2 {
		t.Error("failed modify must leave the original syllabus current")
	}
	if ctrl.Revision() != 1 {
		t.Errorf("revision = %d, want 1", ctrl.Revision())
	}
}

func TestController_TeachCurrentAppendsTutorTurn(t *testing.T) {
	teachMock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"Welcome to membranes. What is a membrane made of?"}`)},
	)
	ctrl := NewController(Options{
		Judge:   judge.NewService(llm.NewMockProvider(), judge.DefaultConfig()),
		Teacher: NewTeacher(teachMock, DefaultTeacherConfig()),
	})
	if err := ctrl.Start(context.Background(), makeSyllabus("membranes")); err != nil {
		t.Fatalf("start: %v", err)
	}

	turn, err := ctrl.TeachCurrent(context.Background())
	if err != nil {
		t.Fatalf("teach: %v", err)
	}
	if turn.Role != RoleTutor {
		t.Errorf("role = %q, want tutor", turn.Role)
	}
	if turn.StageIDAtTime != "membranes" {
		t.Errorf("stage = %q", turn.StageIDAtTime)
	}
	if len(ctrl.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(ctrl.History()))
	}
}

func TestController_TeachFailureIsNonFatal(t *testing.T) {
	ctrl := NewController(Options{
		Judge:   judge.NewService(llm.NewMockProvider(), judge.DefaultConfig()),
		Teacher: NewTeacher(llm.NewMockProvider(), DefaultTeacherConfig()),
	})
	if err := ctrl.Start(context.Background(), makeSyllabus("membranes")); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := ctrl.TeachCurrent(context.Background()); err == nil {
		t.Fatal("expected teach failure from empty mock")
	}
	if ctrl.Status() != StatusActive {
		t.Errorf("status = %s, session must survive a teach failure", ctrl.Status())
	}
	if len(ctrl.History()) != 0 {
		t.Error("failed teaching must not record a turn")
	}
}

func TestController_StartRejectsInvalidSyllabus(t *testing.T) {
	ctrl := newTestController(llm.NewMockProvider(), llm.NewMockProvider())

	bad := makeSyllabus("a", "a") // duplicate stage IDs
	err := ctrl.Start(context.Background(), bad)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var verr *syllabus.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ctrl.Status() != StatusNotStarted {
		t.Errorf("status = %s, want not_started after failed start", ctrl.Status())
	}
}
