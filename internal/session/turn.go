package session

import (
	"time"

	"github.com/abhisek/docent/internal/judge"
	"github.com/abhisek/docent/internal/syllabus"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusActive     Status = "active"
	StatusEnded      Status = "ended"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleLearner Role = "learner"
	RoleTutor   Role = "tutor"
)

// Turn is one immutable entry in a session's conversation history —
// the audit trail of what was said, on which stage, and how it was
// judged. Turns are appended by the controller and never mutated.
type Turn struct {
	Role          Role
	Content       string
	MediaRefs     []syllabus.MediaRef
	StageIDAtTime string
	Verdict       *judge.Verdict // set on tutor turns that carry an evaluation
	At            time.Time
}
