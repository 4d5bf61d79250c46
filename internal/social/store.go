package social

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// GraphStore is the query surface the aggregation components consume from the
// relational store. Implementations live in internal/store; tests use an
// in-memory fake.
type GraphStore interface {
	// FollowingIDs returns the ids the user follows.
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// FollowerIDsIn returns the subset of candidates that follow userID.
	// The store query is IN-restricted to candidates, never an open scan.
	FollowerIDsIn(ctx context.Context, userID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error)
	// ProfilesByIDs returns profile projections for the given ids.
	ProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error)
	// FinishedEngagementsByUserIDs returns FINISHED engagement rows for the
	// given users.
	FinishedEngagementsByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.EngagementRecord, error)
	// FinishedEngagementsByContentIDs returns FINISHED engagement rows for the
	// given content items.
	FinishedEngagementsByContentIDs(ctx context.Context, contentIDs []string) ([]models.EngagementRecord, error)
	// ActiveCelebIDs returns the subset of ids that are active CELEB profiles.
	// Callers must keep len(ids) at or under the store's IN-list ceiling.
	ActiveCelebIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// ActivityStore is the feed query surface backed by the append-only log.
type ActivityStore interface {
	// LogsBefore returns up to limit entries for the user with
	// createdAt < before (all entries when before is nil), newest first.
	LogsBefore(ctx context.Context, userID uuid.UUID, before *time.Time, limit int) ([]models.ActivityLogEntry, error)
}

// ErrNoGroupedCounts is returned by CountStore.GroupedCounts for dimensions
// the store has no server-side grouped-count procedure for; the gateway then
// falls back to per-category count queries.
var ErrNoGroupedCounts = errors.New("no grouped-count procedure for dimension")

// CountStore is the counting surface consumed by the CountGateway.
type CountStore interface {
	GroupedCounts(ctx context.Context, dimension string) (map[string]int64, error)
	CountCategory(ctx context.Context, dimension, key string) (int64, error)
	CountTotal(ctx context.Context, dimension string) (int64, error)
}
