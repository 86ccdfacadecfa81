package store

import (
	"context"
	"fmt"

	"github.com/abhisek/odootrail/ent"
	"github.com/abhisek/odootrail/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetBadgeID(data.BadgeID).
		SetBadgeTitle(data.BadgeTitle).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEvent, error) {
	q := r.client.BadgeEvent.Query().
		Order(ent.Desc(badgeevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(badgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(badgeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(badgeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(badgeevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	out := make([]BadgeEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, BadgeEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			BadgeEventData: BadgeEventData{
				SessionID:  e.SessionID,
				BadgeID:    e.BadgeID,
				BadgeTitle: e.BadgeTitle,
				Reason:     e.Reason,
			},
		})
	}
	return out, nil
}
