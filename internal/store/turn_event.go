package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStageID(data.StageID).
		SetLearnerAnswer(data.LearnerAnswer).
		SetOutcome(data.Outcome).
		SetRationale(data.Rationale).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}
