package social

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// ActivityPage is one page of a caller's activity feed. NextCursor is nil on
// the last page; otherwise it is the createdAt of the last returned entry and
// feeds the next call.
type ActivityPage struct {
	Logs       []models.ActivityLogEntry `json:"logs"`
	NextCursor *time.Time                `json:"next_cursor"`
}

// ActivityFeedPaginator reads a caller's activity log with keyset pagination:
// pages are driven by the last-seen createdAt, never a row offset, so inserts
// ahead of the cursor cannot shift later pages.
//
// Entries sharing an identical createdAt at a page boundary can be skipped;
// write paths timestamp entries at sub-millisecond precision, which keeps
// timestamps unique per user in practice.
type ActivityFeedPaginator struct {
	store        ActivityStore
	log          *zap.Logger
	defaultLimit int
	maxLimit     int
}

func NewActivityFeedPaginator(store ActivityStore, log *zap.Logger, defaultLimit, maxLimit int) *ActivityFeedPaginator {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &ActivityFeedPaginator{store: store, log: log, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Logs returns one feed page for the caller. limit <= 0 selects the default
// page size. cursor, when non-nil, restricts the page to entries strictly
// older than it.
func (p *ActivityFeedPaginator) Logs(ctx context.Context, callerID uuid.UUID, limit int, cursor *time.Time) (ActivityPage, error) {
	const op = "activity.page"

	if limit <= 0 {
		limit = p.defaultLimit
	}
	if limit > p.maxLimit {
		limit = p.maxLimit
	}

	// Fetch one extra row to learn whether another page exists.
	entries, err := p.store.LogsBefore(ctx, callerID, cursor, limit+1)
	if err != nil {
		return ActivityPage{Logs: []models.ActivityLogEntry{}}, &Error{Kind: KindStoreRead, Op: op, Err: err}
	}

	page := ActivityPage{Logs: entries}
	if len(entries) > limit {
		page.Logs = entries[:limit]
		last := page.Logs[limit-1].CreatedAt
		page.NextCursor = &last
	}
	if page.Logs == nil {
		page.Logs = []models.ActivityLogEntry{}
	}

	p.log.Debug("fetched activity page",
		zap.String("caller_id", callerID.String()),
		zap.Int("limit", limit),
		zap.Int("returned", len(page.Logs)),
		zap.Bool("has_more", page.NextCursor != nil))

	return page, nil
}
