package social

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EngagementSplit is the celebrity/general-audience split of FINISHED
// engagements on one content item.
type EngagementSplit struct {
	CelebCount int `json:"celeb_count"`
	UserCount  int `json:"user_count"`
}

// CelebCountAggregator computes per-content engagement splits. Engaged users
// are deduplicated before classification so each user is classified exactly
// once no matter how many items they finished, and classification queries are
// chunked at the store's IN-list ceiling.
//
// Any read failure aborts the whole call: a partially classified split would
// be misleading rather than merely incomplete, so no partial map ever leaves
// this component.
type CelebCountAggregator struct {
	store       GraphStore
	log         *zap.Logger
	chunkSize   int
	concurrency int
}

func NewCelebCountAggregator(store GraphStore, log *zap.Logger, chunkSize, concurrency int) *CelebCountAggregator {
	if chunkSize <= 0 {
		chunkSize = 50
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	return &CelebCountAggregator{store: store, log: log, chunkSize: chunkSize, concurrency: concurrency}
}

// CelebCounts returns a map keyed by content id. Content items with no
// FINISHED engagements are absent; callers default missing keys to zero.
func (a *CelebCountAggregator) CelebCounts(ctx context.Context, contentIDs []string) (map[string]EngagementSplit, error) {
	const op = "celebcounts.aggregate"

	if len(contentIDs) == 0 {
		return map[string]EngagementSplit{}, nil
	}

	rows, err := a.store.FinishedEngagementsByContentIDs(ctx, contentIDs)
	if err != nil {
		return nil, &Error{Kind: KindAggregation, Op: op, Err: err}
	}
	if len(rows) == 0 {
		return map[string]EngagementSplit{}, nil
	}

	// Distinct engaged users; classification happens once per user.
	seen := make(map[uuid.UUID]struct{}, len(rows))
	distinct := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}
		distinct = append(distinct, row.UserID)
	}

	celebs, err := a.classify(ctx, distinct)
	if err != nil {
		return nil, &Error{Kind: KindAggregation, Op: op, Err: err}
	}

	counts := make(map[string]EngagementSplit, len(contentIDs))
	for _, row := range rows {
		split := counts[row.ContentID]
		if _, ok := celebs[row.UserID]; ok {
			split.CelebCount++
		} else {
			split.UserCount++
		}
		counts[row.ContentID] = split
	}

	a.log.Debug("aggregated celeb counts",
		zap.Int("contents", len(contentIDs)),
		zap.Int("engagements", len(rows)),
		zap.Int("distinct_users", len(distinct)),
		zap.Int("celebs", len(celebs)))

	return counts, nil
}

// classify partitions ids into chunks at the IN-list ceiling and queries each
// chunk with bounded concurrency. All chunks must succeed; the merged celeb
// set is complete before the counting pass starts.
func (a *CelebCountAggregator) classify(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	celebs := make(map[uuid.UUID]struct{})
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for start := 0; start < len(ids); start += a.chunkSize {
		end := start + a.chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]
		g.Go(func() error {
			matched, err := a.store.ActiveCelebIDs(gctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, id := range matched {
				celebs[id] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return celebs, nil
}
