package session

import "fmt"

// ErrStageNotFound indicates a jump target absent from the current syllabus.
type ErrStageNotFound struct {
	StageID string
}

func (e *ErrStageNotFound) Error() string {
	return fmt.Sprintf("stage %q not found in current syllabus", e.StageID)
}

// ErrInvalidSessionState indicates an operation invoked outside the
// lifecycle state that permits it. There is no implicit state coercion —
// the caller must create a new session to teach again.
type ErrInvalidSessionState struct {
	Op    string
	State Status
}

func (e *ErrInvalidSessionState) Error() string {
	return fmt.Sprintf("operation %q invalid in session state %q", e.Op, e.State)
}
