package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/docent/internal/syllabus"
)

// makeSyllabus builds a minimal valid syllabus with the given stage IDs.
func makeSyllabus(ids ...string) *syllabus.Syllabus {
	syl := &syllabus.Syllabus{
		Name:           "Cell Biology",
		TargetAudience: "undergraduates",
	}
	for _, id := range ids {
		syl.Stages = append(syl.Stages, syllabus.Stage{
			ID:                id,
			Description:       "stage " + id,
			JudgeMediaAllowed: []syllabus.MediaKind{syllabus.MediaText},
			Target:            "understand " + id,
			TeachingKnowledge: []string{"fact about " + id},
			JudgeQuestion:     fmt.Sprintf("what is %s?", id),
			JudgeAnswer:       "the " + id,
		})
	}
	return syl
}

func TestNavigator_AdvanceThroughAllStages(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b", "c"))

	if nav.Index() != 0 {
		t.Fatalf("start index = %d, want 0", nav.Index())
	}
	if nav.IsFinal() {
		t.Fatal("should not be final at start")
	}

	if complete := nav.Advance(); complete {
		t.Fatal("advance from 0 of 3 should not signal complete")
	}
	if complete := nav.Advance(); complete {
		t.Fatal("advance from 1 of 3 should not signal complete")
	}
	if !nav.IsFinal() {
		t.Fatal("should be final on last stage")
	}
	if nav.Current().ID != "c" {
		t.Errorf("current = %q, want c", nav.Current().ID)
	}
}

func TestNavigator_AdvanceAtFinalSignalsComplete(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b"))
	nav.Advance()

	if complete := nav.Advance(); !complete {
		t.Fatal("advance at final stage should signal complete")
	}
	// The cursor must not move past the end.
	if nav.Index() != 1 {
		t.Errorf("index = %d, want 1", nav.Index())
	}
	if nav.Current().ID != "b" {
		t.Errorf("current = %q, want b", nav.Current().ID)
	}
}

func TestNavigator_RetreatClampsAtFirstStage(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b"))

	nav.Retreat()
	if nav.Index() != 0 {
		t.Errorf("retreat at 0 moved cursor to %d", nav.Index())
	}

	nav.Advance()
	nav.Retreat()
	if nav.Index() != 0 {
		t.Errorf("index = %d, want 0", nav.Index())
	}
	nav.Retreat()
	if nav.Index() != 0 {
		t.Errorf("repeated retreat moved cursor to %d", nav.Index())
	}
}

func TestNavigator_JumpByStageID(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b", "c"))

	if err := nav.Jump("c"); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if nav.Current().ID != "c" {
		t.Errorf("current = %q, want c", nav.Current().ID)
	}
}

func TestNavigator_JumpToMissingStageDoesNotMove(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b"))
	nav.Advance()

	err := nav.Jump("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown stage")
	}
	var notFound *ErrStageNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ErrStageNotFound, got %T", err)
	}
	if notFound.StageID != "nonexistent" {
		t.Errorf("error stage id = %q", notFound.StageID)
	}
	if nav.Current().ID != "b" {
		t.Errorf("cursor moved to %q on failed jump", nav.Current().ID)
	}
}

func TestNavigator_RealignFollowsStageID(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b", "c"))
	nav.Advance() // on "b"

	// "b" moves to the front in the replacement.
	next := makeSyllabus("b", "c", "d")
	if realigned := nav.Realign(next); realigned {
		t.Fatal("cursor should follow a surviving stage_id silently")
	}
	if nav.Index() != 0 || nav.Current().ID != "b" {
		t.Errorf("cursor at %d (%q), want 0 (b)", nav.Index(), nav.Current().ID)
	}
}

func TestNavigator_RealignResetsWhenStageRemoved(t *testing.T) {
	nav := NewNavigator(makeSyllabus("a", "b", "c"))
	nav.Advance()
	nav.Advance() // on "c"

	next := makeSyllabus("a", "b")
	if realigned := nav.Realign(next); !realigned {
		t.Fatal("removing the current stage should report a realign")
	}
	if nav.Index() != 0 || nav.Current().ID != "a" {
		t.Errorf("cursor at %d (%q), want 0 (a)", nav.Index(), nav.Current().ID)
	}
}
