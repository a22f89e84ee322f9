package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"aradamart/internal/domain"
	applog "aradamart/internal/log"
)

// ActivitySink receives every recorded activity, e.g. an archive table or a
// message topic.
type ActivitySink interface {
	Append(ctx context.Context, a domain.Activity) error
}

// ActivityLog is an append-only record of admin actions, newest first.
// When max is positive the oldest entries are evicted beyond it.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []domain.Activity // oldest first
	max     int
	sinks   []ActivitySink
	now     func() time.Time
}

func NewActivityLog(max int, sinks ...ActivitySink) *ActivityLog {
	return &ActivityLog{max: max, sinks: sinks, now: time.Now}
}

// Record stores a new activity and forwards it to the sinks. Sink failures
// are logged and do not fail the call.
func (l *ActivityLog) Record(ctx context.Context, action, typ, details string) domain.Activity {
	l.mu.Lock()
	// Ids are minted under the lock so their order matches insertion order.
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	a := domain.Activity{
		ID:        id.String(),
		Timestamp: l.now().UTC(),
		Action:    action,
		Type:      typ,
		Details:   details,
	}
	l.entries = append(l.entries, a)
	if l.max > 0 && len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	l.mu.Unlock()

	for _, s := range l.sinks {
		if err := s.Append(ctx, a); err != nil {
			applog.Error(nil, "activity.sink.fail", err, map[string]any{"activity_id": a.ID})
		}
	}
	return a
}

// List returns the activities, most recent first.
func (l *ActivityLog) List() []domain.Activity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Activity, len(l.entries))
	for i, a := range l.entries {
		out[len(l.entries)-1-i] = a
	}
	return out
}

func (l *ActivityLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
