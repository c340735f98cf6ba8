// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
)

// SyllabusRevisionEvent is the model entity for the SyllabusRevisionEvent schema.
type SyllabusRevisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session the edit happened in
	SessionID string `json:"session_id,omitempty"`
	// Natural-language edit instruction from the admin
	Instruction string `json:"instruction,omitempty"`
	// Source document the revision was grounded in, if any
	DocumentRef string `json:"document_ref,omitempty"`
	// Revision number after the edit (1 = initial syllabus)
	Revision int `json:"revision,omitempty"`
	// Number of stages after the edit
	StageCount   int `json:"stage_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyllabusRevisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syllabusrevisionevent.FieldID, syllabusrevisionevent.FieldSequence, syllabusrevisionevent.FieldRevision, syllabusrevisionevent.FieldStageCount:
			values[i] = new(sql.NullInt64)
		case syllabusrevisionevent.FieldSessionID, syllabusrevisionevent.FieldInstruction, syllabusrevisionevent.FieldDocumentRef:
			values[i] = new(sql.NullString)
		case syllabusrevisionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyllabusRevisionEvent fields.
func (_m *SyllabusRevisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syllabusrevisionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syllabusrevisionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case syllabusrevisionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case syllabusrevisionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case syllabusrevisionevent.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = value.String
			}
		case syllabusrevisionevent.FieldDocumentRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_ref", values[i])
			} else if value.Valid {
				_m.DocumentRef = value.String
			}
		case syllabusrevisionevent.FieldRevision:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = int(value.Int64)
			}
		case syllabusrevisionevent.FieldStageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_count", values[i])
			} else if value.Valid {
				_m.StageCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyllabusRevisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SyllabusRevisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyllabusRevisionEvent.
// Note that you need to call SyllabusRevisionEvent.Unwrap() before calling this method if this SyllabusRevisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyllabusRevisionEvent) Update() *SyllabusRevisionEventUpdateOne {
	return NewSyllabusRevisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyllabusRevisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyllabusRevisionEvent) Unwrap() *SyllabusRevisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyllabusRevisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyllabusRevisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SyllabusRevisionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("instruction=")
	builder.WriteString(_m.Instruction)
	builder.WriteString(", ")
	builder.WriteString("document_ref=")
	builder.WriteString(_m.DocumentRef)
	builder.WriteString(", ")
	builder.WriteString("revision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revision))
	builder.WriteString(", ")
	builder.WriteString("stage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageCount))
	builder.WriteByte(')')
	return builder.String()
}

// SyllabusRevisionEvents is a parsable slice of SyllabusRevisionEvent.
type SyllabusRevisionEvents []*SyllabusRevisionEvent
