package store

import (
	"context"
	"fmt"

	"github.com/abhisek/odootrail/ent"
	"github.com/abhisek/odootrail/ent/completionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetLessonTitle(data.LessonTitle).
		SetOrigin(data.Origin).
		SetXpAwarded(data.XPAwarded).
		SetTotalXp(data.TotalXP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error) {
	q := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(completionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	out := make([]CompletionEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, CompletionEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			CompletionEventData: CompletionEventData{
				SessionID:   e.SessionID,
				LessonID:    e.LessonID,
				LessonTitle: e.LessonTitle,
				Origin:      e.Origin,
				XPAwarded:   e.XpAwarded,
				TotalXP:     e.TotalXp,
			},
		})
	}
	return out, nil
}
