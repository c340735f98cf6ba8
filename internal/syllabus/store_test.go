package syllabus

import (
	"errors"
	"testing"
)

func testSyllabus(t *testing.T) *Syllabus {
	t.Helper()
	syl, err := Validate(mustJSON(t, validDoc()))
	if err != nil {
		t.Fatalf("build test syllabus: %v", err)
	}
	return syl
}

func TestNewStore_RejectsInvalidInitial(t *testing.T) {
	syl := testSyllabus(t)
	syl.Stages = nil

	_, err := NewStore(syl)
	if err == nil {
		t.Fatal("expected error for empty stage list")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestStore_ReplaceSwapsCurrent(t *testing.T) {
	store, err := NewStore(testSyllabus(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	next := testSyllabus(t)
	next.Name = "Photosynthesis, Revised"
	next.Stages = next.Stages[:1]

	if err := store.Replace(next); err != nil {
		t.Fatalf("replace: %v", err)
	}

	current, err := store.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Name != "Photosynthesis, Revised" {
		t.Errorf("current name = %q", current.Name)
	}
	if len(current.Stages) != 1 {
		t.Errorf("current stages = %d, want 1", len(current.Stages))
	}
	if store.Revision() != 2 {
		t.Errorf("revision = %d, want 2", store.Revision())
	}
	if len(store.History()) != 2 {
		t.Errorf("history length = %d, want 2", len(store.History()))
	}
}

func TestStore_FailedReplaceLeavesCurrentIntact(t *testing.T) {
	store, err := NewStore(testSyllabus(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	bad := testSyllabus(t)
	bad.Stages[1].ID = bad.Stages[0].ID // duplicate

	if err := store.Replace(bad); err == nil {
		t.Fatal("expected replace to fail")
	}

	current, err := store.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Name != "Photosynthesis Basics" {
		t.Errorf("current name = %q, original should remain", current.Name)
	}
	if store.Revision() != 1 {
		t.Errorf("revision = %d, want 1", store.Revision())
	}
}

func TestStore_CurrentReturnsIsolatedCopy(t *testing.T) {
	store, err := NewStore(testSyllabus(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, _ := store.Current()
	first.Stages[0].ID = "tampered"
	first.Stages[0].TeachingKnowledge[0] = "tampered"

	second, _ := store.Current()
	if second.Stages[0].ID == "tampered" {
		t.Error("mutating a returned syllabus must not affect the store")
	}
	if second.Stages[0].TeachingKnowledge[0] == "tampered" {
		t.Error("nested slices must be deep-copied")
	}
}

func TestStore_HistoryOrder(t *testing.T) {
	store, err := NewStore(testSyllabus(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"rev two", "rev three"} {
		next := testSyllabus(t)
		next.Name = name
		if err := store.Replace(next); err != nil {
			t.Fatalf("replace %q: %v", name, err)
		}
	}

	history := store.History()
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].Name != "Photosynthesis Basics" || history[2].Name != "rev three" {
		t.Errorf("history out of order: %q ... %q", history[0].Name, history[2].Name)
	}
}
