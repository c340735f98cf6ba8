// Code generated by ent, DO NOT EDIT.

package syllabussnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SyllabusName applies equality check predicate on the "syllabus_name" field. It's identical to SyllabusNameEQ.
func SyllabusName(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSyllabusName, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldRevision, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// SyllabusNameEQ applies the EQ predicate on the "syllabus_name" field.
func SyllabusNameEQ(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldSyllabusName, v))
}

// SyllabusNameNEQ applies the NEQ predicate on the "syllabus_name" field.
func SyllabusNameNEQ(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldSyllabusName, v))
}

// SyllabusNameIn applies the In predicate on the "syllabus_name" field.
func SyllabusNameIn(vs ...string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldSyllabusName, vs...))
}

// SyllabusNameNotIn applies the NotIn predicate on the "syllabus_name" field.
func SyllabusNameNotIn(vs ...string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldSyllabusName, vs...))
}

// SyllabusNameGT applies the GT predicate on the "syllabus_name" field.
func SyllabusNameGT(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldSyllabusName, v))
}

// SyllabusNameGTE applies the GTE predicate on the "syllabus_name" field.
func SyllabusNameGTE(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldSyllabusName, v))
}

// SyllabusNameLT applies the LT predicate on the "syllabus_name" field.
func SyllabusNameLT(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldSyllabusName, v))
}

// SyllabusNameLTE applies the LTE predicate on the "syllabus_name" field.
func SyllabusNameLTE(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldSyllabusName, v))
}

// SyllabusNameContains applies the Contains predicate on the "syllabus_name" field.
func SyllabusNameContains(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldContains(FieldSyllabusName, v))
}

// SyllabusNameHasPrefix applies the HasPrefix predicate on the "syllabus_name" field.
func SyllabusNameHasPrefix(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldHasPrefix(FieldSyllabusName, v))
}

// SyllabusNameHasSuffix applies the HasSuffix predicate on the "syllabus_name" field.
func SyllabusNameHasSuffix(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldHasSuffix(FieldSyllabusName, v))
}

// SyllabusNameEqualFold applies the EqualFold predicate on the "syllabus_name" field.
func SyllabusNameEqualFold(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEqualFold(FieldSyllabusName, v))
}

// SyllabusNameContainsFold applies the ContainsFold predicate on the "syllabus_name" field.
func SyllabusNameContainsFold(v string) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldContainsFold(FieldSyllabusName, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v int) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.FieldLTE(FieldRevision, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyllabusSnapshot) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyllabusSnapshot) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyllabusSnapshot) predicate.SyllabusSnapshot {
	return predicate.SyllabusSnapshot(sql.NotPredicates(p))
}
