// Code generated by ent, DO NOT EDIT.

package syllabusrevisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldInstruction, v))
}

// DocumentRef applies equality check predicate on the "document_ref" field. It's identical to DocumentRefEQ.
func DocumentRef(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldDocumentRef, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldRevision, v))
}

// StageCount applies equality check predicate on the "stage_count" field. It's identical to StageCountEQ.
func StageCount(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldStageCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContainsFold(FieldInstruction, v))
}

// DocumentRefEQ applies the EQ predicate on the "document_ref" field.
func DocumentRefEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldDocumentRef, v))
}

// DocumentRefNEQ applies the NEQ predicate on the "document_ref" field.
func DocumentRefNEQ(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldDocumentRef, v))
}

// DocumentRefIn applies the In predicate on the "document_ref" field.
func DocumentRefIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldDocumentRef, vs...))
}

// DocumentRefNotIn applies the NotIn predicate on the "document_ref" field.
func DocumentRefNotIn(vs ...string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldDocumentRef, vs...))
}

// DocumentRefGT applies the GT predicate on the "document_ref" field.
func DocumentRefGT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldDocumentRef, v))
}

// DocumentRefGTE applies the GTE predicate on the "document_ref" field.
func DocumentRefGTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldDocumentRef, v))
}

// DocumentRefLT applies the LT predicate on the "document_ref" field.
func DocumentRefLT(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldDocumentRef, v))
}

// DocumentRefLTE applies the LTE predicate on the "document_ref" field.
func DocumentRefLTE(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldDocumentRef, v))
}

// DocumentRefContains applies the Contains predicate on the "document_ref" field.
func DocumentRefContains(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContains(FieldDocumentRef, v))
}

// DocumentRefHasPrefix applies the HasPrefix predicate on the "document_ref" field.
func DocumentRefHasPrefix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasPrefix(FieldDocumentRef, v))
}

// DocumentRefHasSuffix applies the HasSuffix predicate on the "document_ref" field.
func DocumentRefHasSuffix(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldHasSuffix(FieldDocumentRef, v))
}

// DocumentRefEqualFold applies the EqualFold predicate on the "document_ref" field.
func DocumentRefEqualFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEqualFold(FieldDocumentRef, v))
}

// DocumentRefContainsFold applies the ContainsFold predicate on the "document_ref" field.
func DocumentRefContainsFold(v string) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldContainsFold(FieldDocumentRef, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldRevision, v))
}

// StageCountEQ applies the EQ predicate on the "stage_count" field.
func StageCountEQ(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldEQ(FieldStageCount, v))
}

// StageCountNEQ applies the NEQ predicate on the "stage_count" field.
func StageCountNEQ(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNEQ(FieldStageCount, v))
}

// StageCountIn applies the In predicate on the "stage_count" field.
func StageCountIn(vs ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldIn(FieldStageCount, vs...))
}

// StageCountNotIn applies the NotIn predicate on the "stage_count" field.
func StageCountNotIn(vs ...int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldNotIn(FieldStageCount, vs...))
}

// StageCountGT applies the GT predicate on the "stage_count" field.
func StageCountGT(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGT(FieldStageCount, v))
}

// StageCountGTE applies the GTE predicate on the "stage_count" field.
func StageCountGTE(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldGTE(FieldStageCount, v))
}

// StageCountLT applies the LT predicate on the "stage_count" field.
func StageCountLT(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLT(FieldStageCount, v))
}

// StageCountLTE applies the LTE predicate on the "stage_count" field.
func StageCountLTE(v int) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.FieldLTE(FieldStageCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyllabusRevisionEvent) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyllabusRevisionEvent) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyllabusRevisionEvent) predicate.SyllabusRevisionEvent {
	return predicate.SyllabusRevisionEvent(sql.NotPredicates(p))
}
