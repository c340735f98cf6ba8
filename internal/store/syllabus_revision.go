package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSyllabusRevision(ctx context.Context, data SyllabusRevisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyllabusRevisionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetInstruction(data.Instruction).
		SetDocumentRef(data.DocumentRef).
		SetRevision(data.Revision).
		SetStageCount(data.StageCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save syllabus revision event: %w", err)
	}
	return nil
}
