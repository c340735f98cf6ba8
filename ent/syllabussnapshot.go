// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/syllabussnapshot"
)

// SyllabusSnapshot is the model entity for the SyllabusSnapshot schema.
type SyllabusSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number at capture time
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time of capture
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session the snapshot was taken in, if any
	SessionID string `json:"session_id,omitempty"`
	// syllabus_name of the stored document
	SyllabusName string `json:"syllabus_name,omitempty"`
	// Revision number within the session
	Revision int `json:"revision,omitempty"`
	// Complete syllabus document in wire format
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyllabusSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syllabussnapshot.FieldData:
			values[i] = new([]byte)
		case syllabussnapshot.FieldID, syllabussnapshot.FieldSequence, syllabussnapshot.FieldRevision:
			values[i] = new(sql.NullInt64)
		case syllabussnapshot.FieldSessionID, syllabussnapshot.FieldSyllabusName:
			values[i] = new(sql.NullString)
		case syllabussnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyllabusSnapshot fields.
func (_m *SyllabusSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syllabussnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syllabussnapshot.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case syllabussnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case syllabussnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case syllabussnapshot.FieldSyllabusName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field syllabus_name", values[i])
			} else if value.Valid {
				_m.SyllabusName = value.String
			}
		case syllabussnapshot.FieldRevision:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = int(value.Int64)
			}
		case syllabussnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyllabusSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *SyllabusSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyllabusSnapshot.
// Note that you need to call SyllabusSnapshot.Unwrap() before calling this method if this SyllabusSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyllabusSnapshot) Update() *SyllabusSnapshotUpdateOne {
	return NewSyllabusSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyllabusSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyllabusSnapshot) Unwrap() *SyllabusSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyllabusSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyllabusSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("SyllabusSnapshot(")
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
	builder.WriteString("syllabus_name=")
	builder.WriteString(_m.SyllabusName)
	builder.WriteString(", ")
	builder.WriteString("revision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revision))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// SyllabusSnapshots is a parsable slice of SyllabusSnapshot.
type SyllabusSnapshots []*SyllabusSnapshot
