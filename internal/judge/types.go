package judge

import (
	"fmt"

	"github.com/abhisek/docent/internal/syllabus"
)

// Outcome is the closed three-way result of evaluating an answer.
// The session controller branches on it deterministically, so it is
// never free text.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomePartial   Outcome = "partial"
	OutcomeIncorrect Outcome = "incorrect"
)

// Verdict is the evaluation of one learner answer.
type Verdict struct {
	Outcome   Outcome
	Rationale string
}

// Response is a learner's answer to the current stage's judge question.
type Response struct {
	Text      string
	MediaRefs []syllabus.MediaRef
}

// ErrJudgeUnavailable indicates the evaluation call failed or returned
// an unparseable verdict. The caller must keep the learner on the
// current stage — a failed judge never advances anyone.
type ErrJudgeUnavailable struct {
	Err error
}

func (e *ErrJudgeUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("answer judge unavailable: %v", e.Err)
	}
	return "answer judge unavailable"
}

func (e *ErrJudgeUnavailable) Unwrap() error { return e.Err }

// Config holds judge generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard judge configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}
