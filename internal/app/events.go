package app

import (
	"context"

	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/store"
)

// eventSink bridges progress events onto the event log.
type eventSink struct {
	repo store.EventRepo
}

// NewEventSink adapts an EventRepo to the progress store's sink contract.
func NewEventSink(repo store.EventRepo) progress.EventSink {
	return &eventSink{repo: repo}
}

func (s *eventSink) RecordCompletion(ctx context.Context, c progress.Completion) error {
	return s.repo.AppendCompletion(ctx, store.CompletionEventData{
		SessionID:   c.SessionID,
		LessonID:    c.LessonID,
		LessonTitle: c.LessonTitle,
		Origin:      string(c.Origin),
		XPAwarded:   c.XPAwarded,
		TotalXP:     c.TotalXP,
	})
}

func (s *eventSink) RecordBadge(ctx context.Context, b progress.BadgeUnlock) error {
	return s.repo.AppendBadge(ctx, store.BadgeEventData{
		SessionID:  b.SessionID,
		BadgeID:    b.BadgeID,
		BadgeTitle: b.BadgeTitle,
		Reason:     b.Reason,
	})
}
