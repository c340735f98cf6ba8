package tui

import (
	"github.com/abhisek/docent/internal/session"
	"github.com/abhisek/docent/internal/syllabus"
)

// entry is one rendered line group in the transcript.
type entry struct {
	role    session.Role
	content string
	badge   string // verdict badge, empty for plain messages
	notice  bool
}

// teachReadyMsg delivers the tutor's stage presentation.
type teachReadyMsg struct {
	Turn session.Turn
	Err  error
}

// judgeDoneMsg delivers the outcome of an answer submission.
type judgeDoneMsg struct {
	Result *session.SubmitResult
	Err    error
}

// modifyDoneMsg delivers the outcome of a syllabus edit.
type modifyDoneMsg struct {
	Result *session.ModifyResult
	Err    error
}

// navDoneMsg delivers the stage after a navigation command.
type navDoneMsg struct {
	Stage syllabus.Stage
	Err   error
}

// sessionEndedMsg signals the session reached the Ended state.
type sessionEndedMsg struct {
	Completed bool
}
