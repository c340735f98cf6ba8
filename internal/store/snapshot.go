package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/syllabussnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *SyllabusSnapshotRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var dataMap map[string]any
	if err := json.Unmarshal(snap.Data, &dataMap); err != nil {
		return fmt.Errorf("decode syllabus document: %w", err)
	}

	_, err = r.client.SyllabusSnapshot.Create().
		SetSequence(seqNum).
		SetSessionID(snap.SessionID).
		SetSyllabusName(snap.SyllabusName).
		SetRevision(snap.Revision).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save syllabus snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*SyllabusSnapshotRecord, error) {
	s, err := r.client.SyllabusSnapshot.Query().
		Order(ent.Desc(syllabussnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest syllabus snapshot: %w", err)
	}
	return entSnapshotToRecord(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	snapshots, err := r.client.SyllabusSnapshot.Query().
		Order(ent.Desc(syllabussnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.SyllabusSnapshot.Delete().
		Where(syllabussnapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune syllabus snapshots: %w", err)
	}
	return nil
}

func entSnapshotToRecord(s *ent.SyllabusSnapshot) (*SyllabusSnapshotRecord, error) {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("encode syllabus document: %w", err)
	}
	return &SyllabusSnapshotRecord{
		ID:           s.ID,
		Sequence:     s.Sequence,
		Timestamp:    s.Timestamp,
		SessionID:    s.SessionID,
		SyllabusName: s.SyllabusName,
		Revision:     s.Revision,
		Data:         raw,
	}, nil
}
