// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SyllabusRevisionEvent is the predicate function for syllabusrevisionevent builders.
type SyllabusRevisionEvent func(*sql.Selector)

// SyllabusSnapshot is the predicate function for syllabussnapshot builders.
type SyllabusSnapshot func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
