package store

import (
	"context"
	"fmt"

	"github.com/nandinis/edudeck/ent"
	"github.com/nandinis/edudeck/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetGameID(data.GameID).
		SetAction(data.Action).
		SetDifficulty(data.Difficulty).
		SetScore(data.Score).
		SetRoundsCompleted(data.RoundsCompleted).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			Sequence:        e.Sequence,
			Timestamp:       e.Timestamp,
			SessionID:       e.SessionID,
			GameID:          e.GameID,
			Action:          e.Action,
			Difficulty:      e.Difficulty,
			Score:           e.Score,
			RoundsCompleted: e.RoundsCompleted,
			DurationSecs:    e.DurationSecs,
		})
	}
	return records, nil
}
