package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"aradamart/internal/domain"
)

// ActivityRepo archives activities beyond the in-memory cap. It satisfies
// store.ActivitySink.
type ActivityRepo struct{ db *sqlx.DB }

func NewActivityRepo(db *sqlx.DB) *ActivityRepo { return &ActivityRepo{db: db} }

// activityRow keeps the timestamp as text so the driver never has to guess
// a time layout.
type activityRow struct {
	ID      string `db:"id"`
	TS      string `db:"ts"`
	Action  string `db:"action"`
	Type    string `db:"type"`
	Details string `db:"details"`
}

func (r *ActivityRepo) Append(ctx context.Context, a domain.Activity) error {
	row := activityRow{
		ID:      a.ID,
		TS:      a.Timestamp.UTC().Format(time.RFC3339Nano),
		Action:  a.Action,
		Type:    a.Type,
		Details: a.Details,
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO activities(id, ts, action, type, details)
		VALUES(:id, :ts, :action, :type, :details)
		ON CONFLICT(id) DO NOTHING
	`, row)
	if err != nil {
		return fmt.Errorf("archive activity %s: %w", a.ID, err)
	}
	return nil
}

// List returns up to limit archived activities, newest first. A limit of
// zero or less returns everything.
func (r *ActivityRepo) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	q := `SELECT id, ts, action, type, details FROM activities ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		ts, err := time.Parse(time.RFC3339Nano, row.TS)
		if err != nil {
			return nil, fmt.Errorf("activity %s: bad timestamp %q: %w", row.ID, row.TS, err)
		}
		out = append(out, domain.Activity{ID: row.ID, Timestamp: ts, Action: row.Action, Type: row.Type, Details: row.Details})
	}
	return out, nil
}

func (r *ActivityRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM activities`)
	return n, err
}
