package session

import "github.com/abhisek/docent/internal/syllabus"

// Navigator is a cursor over a syllabus's stage sequence. The index is
// derived and ephemeral — stage identity (stage_id), not position, is
// authoritative, which is why Realign re-resolves the cursor by ID
// after every syllabus replace.
type Navigator struct {
	syl   *syllabus.Syllabus
	index int
}

// NewNavigator creates a navigator positioned at the first stage.
// The syllabus must already be validated (non-empty stages).
func NewNavigator(syl *syllabus.Syllabus) *Navigator {
	return &Navigator{syl: syl}
}

// Current returns the stage under the cursor.
func (n *Navigator) Current() syllabus.Stage {
	return n.syl.Stages[n.index]
}

// Index returns the current stage position.
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the number of stages in the current syllabus.
func (n *Navigator) Len() int {
	return len(n.syl.Stages)
}

// IsFinal reports whether the cursor is on the last stage.
func (n *Navigator) IsFinal() bool {
	return n.index == len(n.syl.Stages)-1
}

// Advance moves to the next stage. On the last stage it does not move
// and returns true — the "syllabus complete" signal, not an error.
func (n *Navigator) Advance() (complete bool) {
	if n.IsFinal() {
		return true
	}
	n.index++
	return false
}

// Retreat moves to the previous stage, clamped at the first.
// Retreating past stage 0 is a no-op, not a fault.
func (n *Navigator) Retreat() {
	if n.index > 0 {
		n.index--
	}
}

// Jump moves the cursor to the stage with the given ID.
// On a missing ID it fails with ErrStageNotFound and does not move.
func (n *Navigator) Jump(stageID string) error {
	i := n.syl.StageIndex(stageID)
	if i < 0 {
		return &ErrStageNotFound{StageID: stageID}
	}
	n.index = i
	return nil
}

// Realign points the navigator at a replacement syllabus. When the
// current stage_id survives the replace, the cursor follows it to its
// new position; otherwise the cursor resets to the first stage and
// Realign returns true so the caller can surface a StageRealigned
// notice. Silent index reuse across unrelated syllabuses is disallowed.
func (n *Navigator) Realign(next *syllabus.Syllabus) (realigned bool) {
	currentID := n.syl.Stages[n.index].ID
	n.syl = next
	if i := next.StageIndex(currentID); i >= 0 {
		n.index = i
		return false
	}
	n.index = 0
	return true
}
