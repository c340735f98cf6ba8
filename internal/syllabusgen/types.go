package syllabusgen

import "fmt"

// Config holds syllabus generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation configuration.
// Low temperature: structural fidelity matters more than creativity.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}

// ErrInvalidAfterRepair indicates the model could not produce a
// structurally valid syllabus even after one explicit repair attempt.
// Path and Reason carry the validator's last finding.
type ErrInvalidAfterRepair struct {
	Path   string
	Reason string
}

func (e *ErrInvalidAfterRepair) Error() string {
	return fmt.Sprintf("syllabus still invalid after repair attempt: %s: %s", e.Path, e.Reason)
}
